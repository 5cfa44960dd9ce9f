package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"gorm.io/gorm"
)

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type MembershipCleaner interface {
	RemoveAllMemberships(ctx context.Context, userID uint) error
}

// Registration is the input of Register.
type Registration struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserFields are the profile columns an update may overwrite.
type UserFields struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// fallbackDummyHash is used only if the hasher cannot produce one.
const fallbackDummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

type UserService struct {
	users       UserStore
	memberships MembershipCleaner
	hasher      PasswordHasher
	logger      *slog.Logger

	// dummyHash is compared against when the email is unknown so both
	// failure paths do the same amount of work at the configured cost.
	dummyHash string
}

func NewUserService(users UserStore, memberships MembershipCleaner, hasher PasswordHasher, logger *slog.Logger) *UserService {
	dummy, err := hasher.Hash("dummy-password")
	if err != nil {
		logger.Warn("Dummy hash not generated", "error", err)
		dummy = fallbackDummyHash
	}
	return &UserService{users: users, memberships: memberships, hasher: hasher, logger: logger, dummyHash: dummy}
}

func (s *UserService) Register(ctx context.Context, reg Registration) (*models.User, error) {
	reg.Email = normalizeEmail(reg.Email)
	if err := validateStruct(reg); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Name: reg.Name, Email: reg.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", "userID", user.ID)
	return withoutCredential(user), nil
}

// Login checks the password for email. Every failure, whether the email is
// unknown or the password wrong, is reported as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	log := s.logger.With("context", "Login")

	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		log.Error("User lookup failed", "error", err)
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		_ = s.hasher.Compare(s.dummyHash, password)
		log.Info("Login failed")
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == "" || !s.hasher.Compare(user.PasswordHash, password) {
		log.Info("Login failed")
		return nil, ErrInvalidCredentials
	}

	log.Info("Login successful", "userID", user.ID)
	return withoutCredential(user), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// GetUser returns nil without an error when no user has the id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	return withoutCredential(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, fields UserFields) (*models.User, error) {
	fields.Email = normalizeEmail(fields.Email)
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	if fields.Email != user.Email {
		other, err := s.users.FindByEmail(ctx, fields.Email)
		if err != nil {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
		if other != nil {
			return nil, ErrEmailTaken
		}
	}

	user.Name = fields.Name
	user.Email = fields.Email
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	return withoutCredential(user), nil
}

// DeleteUser removes the user and their trip memberships. Unknown ids are
// not an error.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.memberships.RemoveAllMemberships(ctx, id); err != nil {
		return fmt.Errorf("remove memberships of user %d: %w", id, err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.logger.Info("User deleted", "userID", id)
	return nil
}

// FindOrCreateByEmail links an external sign-in to a user record, creating a
// password-less user on first sign-in.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, name, email, discordID string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, validationError("email is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		user = &models.User{Name: name, Email: email, DiscordID: discordID}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.logger.Info("User created from external sign-in", "userID", user.ID)
		return withoutCredential(user), nil
	}

	if user.DiscordID != discordID {
		user.DiscordID = discordID
		if err := s.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("link user %d: %w", user.ID, err)
		}
	}
	return withoutCredential(user), nil
}

func withoutCredential(user *models.User) *models.User {
	out := *user
	out.PasswordHash = ""
	return &out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
