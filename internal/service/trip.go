package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/notifier"
)

type TripStore interface {
	FindAll(ctx context.Context) ([]models.Trip, error)
	FindByID(ctx context.Context, id uint) (*models.Trip, error)
	FindInDateRange(ctx context.Context, start, end models.Date) ([]models.Trip, error)
	FindByStartDateBetween(ctx context.Context, start, end models.Date) ([]models.Trip, error)
	FindByMember(ctx context.Context, userID uint) ([]models.Trip, error)
	Create(ctx context.Context, trip *models.Trip) error
	UpdateFields(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id uint) error
	AddMember(ctx context.Context, trip *models.Trip, user *models.User) error
	RemoveMember(ctx context.Context, trip *models.Trip, user *models.User) error
}

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// TripService owns trips, their date window and their member set.
type TripService struct {
	trips    TripStore
	users    UserFinder
	notifier notifier.Notifier
	logger   *slog.Logger
}

// NewTripService builds the service. notifier may be nil.
func NewTripService(trips TripStore, users UserFinder, n notifier.Notifier, logger *slog.Logger) *TripService {
	return &TripService{trips: trips, users: users, notifier: n, logger: logger}
}

func (s *TripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.trips.FindAll(ctx)
}

// GetTrip returns nil without an error when no trip has the id.
func (s *TripService) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	return s.trips.FindByID(ctx, id)
}

func (s *TripService) CreateTrip(ctx context.Context, fields models.TripFields) (*models.Trip, error) {
	if err := validateTripFields(fields); err != nil {
		return nil, err
	}

	trip := &models.Trip{TripFields: fields}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.logger.Info("Trip created", "tripID", trip.ID, "title", trip.Title)
	return trip, nil
}

// UpdateTrip overwrites title, dates and budget of an existing trip. The
// member set is left as stored.
func (s *TripService) UpdateTrip(ctx context.Context, id uint, fields models.TripFields) (*models.Trip, error) {
	if err := validateTripFields(fields); err != nil {
		return nil, err
	}

	trip, err := s.mustFindTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	trip.TripFields = fields
	if err := s.trips.UpdateFields(ctx, trip); err != nil {
		return nil, fmt.Errorf("update trip %d: %w", id, err)
	}

	s.logger.Info("Trip updated", "tripID", id)
	return trip, nil
}

// DeleteTrip succeeds whether or not the trip exists.
func (s *TripService) DeleteTrip(ctx context.Context, id uint) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trip %d: %w", id, err)
	}
	s.logger.Info("Trip deleted", "tripID", id)
	return nil
}

// GetTripsByDateRange returns the trips that lie entirely within
// [start, end]. Trips that only overlap the window are excluded.
func (s *TripService) GetTripsByDateRange(ctx context.Context, start, end models.Date) ([]models.Trip, error) {
	if start.IsZero() || end.IsZero() {
		return nil, validationError("startDate and endDate are required")
	}
	return s.trips.FindInDateRange(ctx, start, end)
}

// GetTripsStartingBetween returns the trips whose first day falls within
// [start, end], however long they last.
func (s *TripService) GetTripsStartingBetween(ctx context.Context, start, end models.Date) ([]models.Trip, error) {
	if start.IsZero() || end.IsZero() {
		return nil, validationError("startDate and endDate are required")
	}
	return s.trips.FindByStartDateBetween(ctx, start, end)
}

func (s *TripService) AddUserToTrip(ctx context.Context, tripID, userID uint) (*models.Trip, error) {
	log := s.logger.With("context", "AddUserToTrip", "tripID", tripID, "userID", userID)

	trip, err := s.mustFindTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	user, err := s.mustFindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if trip.HasMember(userID) {
		log.Debug("User already a member")
		return trip, nil
	}

	if err := s.trips.AddMember(ctx, trip, user); err != nil {
		return nil, fmt.Errorf("add user %d to trip %d: %w", userID, tripID, err)
	}
	log.Info("User added to trip")
	s.notify(log, func(n notifier.Notifier) error { return n.NotifyMemberAdded(*trip, *user) })

	return s.mustFindTrip(ctx, tripID)
}

func (s *TripService) RemoveUserFromTrip(ctx context.Context, tripID, userID uint) (*models.Trip, error) {
	log := s.logger.With("context", "RemoveUserFromTrip", "tripID", tripID, "userID", userID)

	trip, err := s.mustFindTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.HasMember(userID) {
		log.Debug("User not a member")
		return trip, nil
	}

	var removed models.User
	for _, u := range trip.Users {
		if u.ID == userID {
			removed = u
			break
		}
	}

	if err := s.trips.RemoveMember(ctx, trip, &removed); err != nil {
		return nil, fmt.Errorf("remove user %d from trip %d: %w", userID, tripID, err)
	}
	log.Info("User removed from trip")
	s.notify(log, func(n notifier.Notifier) error { return n.NotifyMemberRemoved(*trip, removed) })

	return s.mustFindTrip(ctx, tripID)
}

func (s *TripService) GetTripsForUser(ctx context.Context, userID uint) ([]models.Trip, error) {
	return s.trips.FindByMember(ctx, userID)
}

func (s *TripService) mustFindTrip(ctx context.Context, id uint) (*models.Trip, error) {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find trip %d: %w", id, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	return trip, nil
}

func (s *TripService) mustFindUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// notify reports membership changes. Delivery failures are logged only;
// the membership change has already been stored.
func (s *TripService) notify(log *slog.Logger, send func(notifier.Notifier) error) {
	if s.notifier == nil {
		return
	}
	if err := send(s.notifier); err != nil {
		log.Warn("Failed to send membership notification", "error", err)
	}
}

func validateTripFields(fields models.TripFields) error {
	if err := validateStruct(fields); err != nil {
		return err
	}
	if fields.EndDate.Before(fields.StartDate) {
		return validationError("endDate cannot be before startDate")
	}
	return nil
}
