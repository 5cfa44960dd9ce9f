package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-planner-api/internal/catalog"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalog catalog.Catalog
	logger  *slog.Logger
}

func NewCatalogHandler(c catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: c, logger: logger}
}

type CatalogIDInput struct {
	ID uint `path:"id"`
}

type ListAccommodationsInput struct {
	Type      string `query:"type" doc:"Exact accommodation type, e.g. Hotel"`
	MinRating int    `query:"minRating" minimum:"0" maximum:"5" doc:"Minimum rating"`
	Name      string `query:"name" doc:"Case-insensitive name fragment"`
}

type AccommodationOutput struct {
	Body *models.Accommodation
}

type AccommodationListOutput struct {
	Body []models.Accommodation
}

func (h *CatalogHandler) HandleListAccommodations(ctx context.Context, input *ListAccommodationsInput) (*AccommodationListOutput, error) {
	list, err := h.catalog.ListAccommodations(ctx, catalog.AccommodationFilter{
		Type:      input.Type,
		MinRating: input.MinRating,
		Name:      input.Name,
	})
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &AccommodationListOutput{Body: list}, nil
}

func (h *CatalogHandler) HandleGetAccommodation(ctx context.Context, input *CatalogIDInput) (*AccommodationOutput, error) {
	a, err := h.catalog.GetAccommodation(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &AccommodationOutput{Body: a}, nil
}

type ListTransportationInput struct {
	Type      string `query:"type" doc:"Exact transport type, e.g. Bus"`
	Provider  string `query:"provider" doc:"Exact provider name"`
	Available string `query:"available" enum:"true,false" doc:"Only available or unavailable options"`
}

type TransportationOutput struct {
	Body *models.Transportation
}

type TransportationListOutput struct {
	Body []models.Transportation
}

func (h *CatalogHandler) HandleListTransportation(ctx context.Context, input *ListTransportationInput) (*TransportationListOutput, error) {
	filter := catalog.TransportationFilter{Type: input.Type, Provider: input.Provider}
	if input.Available != "" {
		available, err := strconv.ParseBool(input.Available)
		if err != nil {
			return nil, huma.Error400BadRequest("available must be true or false")
		}
		filter.Available = &available
	}

	list, err := h.catalog.ListTransportation(ctx, filter)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TransportationListOutput{Body: list}, nil
}

func (h *CatalogHandler) HandleGetTransportation(ctx context.Context, input *CatalogIDInput) (*TransportationOutput, error) {
	t, err := h.catalog.GetTransportation(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TransportationOutput{Body: t}, nil
}

type ListLocalServicesInput struct {
	Type string `query:"type" doc:"Exact service type, e.g. Tour Guide"`
	Name string `query:"name" doc:"Case-insensitive name fragment"`
}

type LocalServiceOutput struct {
	Body *models.LocalService
}

type LocalServiceListOutput struct {
	Body []models.LocalService
}

func (h *CatalogHandler) HandleListLocalServices(ctx context.Context, input *ListLocalServicesInput) (*LocalServiceListOutput, error) {
	list, err := h.catalog.ListLocalServices(ctx, catalog.LocalServiceFilter{Type: input.Type, Name: input.Name})
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &LocalServiceListOutput{Body: list}, nil
}

func (h *CatalogHandler) HandleGetLocalService(ctx context.Context, input *CatalogIDInput) (*LocalServiceOutput, error) {
	s, err := h.catalog.GetLocalService(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &LocalServiceOutput{Body: s}, nil
}

type ListExpensesInput struct {
	TripID    uint    `path:"tripId" doc:"Trip ID"`
	Category  string  `query:"category" doc:"Exact expense category"`
	From      string  `query:"from" format:"date" doc:"Earliest expense date"`
	To        string  `query:"to" format:"date" doc:"Latest expense date"`
	MinAmount float64 `query:"minAmount" minimum:"0" doc:"Only expenses above this amount"`
}

func (in *ListExpensesInput) filter() (catalog.ExpenseFilter, error) {
	f := catalog.ExpenseFilter{Category: in.Category}
	if in.From != "" {
		d, err := models.ParseDate(in.From)
		if err != nil {
			return f, err
		}
		f.From = &d
	}
	if in.To != "" {
		d, err := models.ParseDate(in.To)
		if err != nil {
			return f, err
		}
		f.To = &d
	}
	if in.MinAmount > 0 {
		amount := decimal.NewFromFloat(in.MinAmount)
		f.MinAmount = &amount
	}
	return f, nil
}

type CreateExpenseInput struct {
	Body struct {
		TripID   uint    `json:"tripId,omitempty" doc:"Trip the expense belongs to"`
		Category string  `json:"category" minLength:"1" maxLength:"50" doc:"Expense category"`
		Amount   float64 `json:"amount" exclusiveMinimum:"0" doc:"Amount spent"`
	}
}

type ExpenseOutput struct {
	Body *models.Expense
}

type ExpenseListOutput struct {
	Body []models.Expense
}

func (h *CatalogHandler) HandleListExpenses(ctx context.Context, input *ListExpensesInput) (*ExpenseListOutput, error) {
	filter, err := input.filter()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	list, err := h.catalog.ListExpensesByTrip(ctx, input.TripID, filter)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &ExpenseListOutput{Body: list}, nil
}

func (h *CatalogHandler) HandleGetExpense(ctx context.Context, input *CatalogIDInput) (*ExpenseOutput, error) {
	e, err := h.catalog.GetExpense(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &ExpenseOutput{Body: e}, nil
}

// HandleCreateExpense stamps the expense with today's date. Amounts are
// rounded to cents before the catalog checks them.
func (h *CatalogHandler) HandleCreateExpense(ctx context.Context, input *CreateExpenseInput) (*ExpenseOutput, error) {
	e, err := h.catalog.CreateExpense(ctx, models.Expense{
		TripID:   input.Body.TripID,
		Category: input.Body.Category,
		Amount:   decimal.NewFromFloat(input.Body.Amount).Round(2),
	})
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &ExpenseOutput{Body: e}, nil
}
