package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/service"
)

type DestinationHandler struct {
	destinations *service.DestinationService
	logger       *slog.Logger
}

func NewDestinationHandler(destinations *service.DestinationService, logger *slog.Logger) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, logger: logger}
}

type DestinationBody struct {
	Name        string `json:"name" maxLength:"100" doc:"Destination name"`
	Location    string `json:"location" maxLength:"200" doc:"Where the destination is"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
}

func (b DestinationBody) fields() models.DestinationFields {
	return models.DestinationFields{
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
	}
}

type DestinationIDInput struct {
	ID uint `path:"id" doc:"Destination ID"`
}

type CreateDestinationInput struct {
	Body DestinationBody
}

type UpdateDestinationInput struct {
	ID   uint `path:"id" doc:"Destination ID"`
	Body DestinationBody
}

type SearchDestinationsInput struct {
	Name     string `query:"name" doc:"Case-insensitive name fragment"`
	Location string `query:"location" doc:"Case-insensitive location fragment, used when name is empty"`
}

type DestinationOutput struct {
	Body *models.Destination
}

type DestinationListOutput struct {
	Body []models.Destination
}

func (h *DestinationHandler) HandleList(ctx context.Context, _ *struct{}) (*DestinationListOutput, error) {
	destinations, err := h.destinations.ListDestinations(ctx)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &DestinationListOutput{Body: destinations}, nil
}

func (h *DestinationHandler) HandleGet(ctx context.Context, input *DestinationIDInput) (*DestinationOutput, error) {
	destination, err := h.destinations.GetDestination(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	if destination == nil {
		return nil, huma.Error404NotFound("Destination not found")
	}
	return &DestinationOutput{Body: destination}, nil
}

func (h *DestinationHandler) HandleSearch(ctx context.Context, input *SearchDestinationsInput) (*DestinationListOutput, error) {
	destinations, err := h.destinations.Search(ctx, input.Name, input.Location)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &DestinationListOutput{Body: destinations}, nil
}

func (h *DestinationHandler) HandleCreate(ctx context.Context, input *CreateDestinationInput) (*DestinationOutput, error) {
	destination, err := h.destinations.CreateDestination(ctx, input.Body.fields())
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &DestinationOutput{Body: destination}, nil
}

func (h *DestinationHandler) HandleUpdate(ctx context.Context, input *UpdateDestinationInput) (*DestinationOutput, error) {
	destination, err := h.destinations.UpdateDestination(ctx, input.ID, input.Body.fields())
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &DestinationOutput{Body: destination}, nil
}

func (h *DestinationHandler) HandleDelete(ctx context.Context, input *DestinationIDInput) (*struct{}, error) {
	if err := h.destinations.DeleteDestination(ctx, input.ID); err != nil {
		return nil, apiError(h.logger, err)
	}
	return nil, nil
}
