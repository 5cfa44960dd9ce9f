package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdg-garage/travel-planner-api/internal/models"
)

type DestinationStore interface {
	FindAll(ctx context.Context) ([]models.Destination, error)
	FindByID(ctx context.Context, id uint) (*models.Destination, error)
	FindByNameContaining(ctx context.Context, name string) ([]models.Destination, error)
	FindByLocationContaining(ctx context.Context, location string) ([]models.Destination, error)
	Create(ctx context.Context, destination *models.Destination) error
	UpdateFields(ctx context.Context, destination *models.Destination) error
	Delete(ctx context.Context, id uint) error
}

type DestinationService struct {
	destinations DestinationStore
	logger       *slog.Logger
}

func NewDestinationService(destinations DestinationStore, logger *slog.Logger) *DestinationService {
	return &DestinationService{destinations: destinations, logger: logger}
}

func (s *DestinationService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.destinations.FindAll(ctx)
}

// GetDestination returns nil without an error when nothing has the id.
func (s *DestinationService) GetDestination(ctx context.Context, id uint) (*models.Destination, error) {
	return s.destinations.FindByID(ctx, id)
}

func (s *DestinationService) SearchByName(ctx context.Context, name string) ([]models.Destination, error) {
	return s.destinations.FindByNameContaining(ctx, name)
}

func (s *DestinationService) SearchByLocation(ctx context.Context, location string) ([]models.Destination, error) {
	return s.destinations.FindByLocationContaining(ctx, location)
}

// Search matches on name when given, otherwise on location, otherwise
// lists everything.
func (s *DestinationService) Search(ctx context.Context, name, location string) ([]models.Destination, error) {
	switch {
	case name != "":
		return s.SearchByName(ctx, name)
	case location != "":
		return s.SearchByLocation(ctx, location)
	default:
		return s.ListDestinations(ctx)
	}
}

func (s *DestinationService) CreateDestination(ctx context.Context, fields models.DestinationFields) (*models.Destination, error) {
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	destination := &models.Destination{DestinationFields: fields}
	if err := s.destinations.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}

	s.logger.Info("Destination created", "destinationID", destination.ID)
	return destination, nil
}

func (s *DestinationService) UpdateDestination(ctx context.Context, id uint, fields models.DestinationFields) (*models.Destination, error) {
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	destination, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find destination %d: %w", id, err)
	}
	if destination == nil {
		return nil, fmt.Errorf("destination %d: %w", id, ErrNotFound)
	}

	destination.DestinationFields = fields
	if err := s.destinations.UpdateFields(ctx, destination); err != nil {
		return nil, fmt.Errorf("update destination %d: %w", id, err)
	}

	s.logger.Info("Destination updated", "destinationID", id)
	return destination, nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id uint) error {
	if err := s.destinations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete destination %d: %w", id, err)
	}
	return nil
}
