package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-planner-api/internal/auth"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/service"
)

type UserHandler struct {
	users  *service.UserService
	trips  *service.TripService
	auth   *auth.Authenticator
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, trips *service.TripService, authenticator *auth.Authenticator, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, trips: trips, auth: authenticator, logger: logger}
}

type RegisterInput struct {
	Body struct {
		Name     string `json:"name,omitempty" maxLength:"100" doc:"Display name"`
		Email    string `json:"email" doc:"Login email"`
		Password string `json:"password" doc:"At least 6 characters"`
	}
}

type LoginInput struct {
	Body struct {
		Email    string `json:"email" doc:"Login email"`
		Password string `json:"password" doc:"Account password"`
	}
}

type UserOutput struct {
	Body *models.User
}

type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      *models.User
}

type UserListOutput struct {
	Body []models.User
}

type UpdateUserInput struct {
	ID   uint `path:"id" doc:"User ID"`
	Body struct {
		Name  string `json:"name,omitempty" maxLength:"100" doc:"Display name"`
		Email string `json:"email" doc:"Login email"`
	}
}

type MeInput struct {
	auth.AuthInput
}

func (h *UserHandler) HandleRegister(ctx context.Context, input *RegisterInput) (*UserOutput, error) {
	user, err := h.users.Register(ctx, service.Registration{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, huma.Error400BadRequest("Registration failed: " + err.Error())
		}
		return nil, apiError(h.logger, err)
	}
	return &UserOutput{Body: user}, nil
}

func (h *UserHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := h.users.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, apiError(h.logger, err)
	}

	cookie, err := h.auth.SessionCookie(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}
	return &LoginOutput{SetCookie: *cookie, Body: user}, nil
}

func (h *UserHandler) HandleMe(ctx context.Context, input *MeInput) (*UserOutput, error) {
	userID, err := h.auth.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	if user == nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &UserOutput{Body: user}, nil
}

func (h *UserHandler) HandleMyTrips(ctx context.Context, input *MeInput) (*TripListOutput, error) {
	userID, err := h.auth.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	trips, err := h.trips.GetTripsForUser(ctx, userID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripListOutput{Body: trips}, nil
}

func (h *UserHandler) HandleList(ctx context.Context, _ *struct{}) (*UserListOutput, error) {
	users, err := h.users.ListUsers(ctx)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &UserListOutput{Body: users}, nil
}

func (h *UserHandler) HandleGet(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	user, err := h.users.GetUser(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	if user == nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &UserOutput{Body: user}, nil
}

func (h *UserHandler) HandleUpdate(ctx context.Context, input *UpdateUserInput) (*UserOutput, error) {
	user, err := h.users.UpdateUser(ctx, input.ID, service.UserFields{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	})
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &UserOutput{Body: user}, nil
}

func (h *UserHandler) HandleDelete(ctx context.Context, input *UserIDInput) (*struct{}, error) {
	if err := h.users.DeleteUser(ctx, input.ID); err != nil {
		return nil, apiError(h.logger, err)
	}
	return nil, nil
}
