package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-planner-api/internal/catalog"
	"github.com/gdg-garage/travel-planner-api/internal/itinerary"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/service"
	"github.com/shopspring/decimal"
)

type TripHandler struct {
	trips    *service.TripService
	expenses catalog.Expenses
	logger   *slog.Logger
}

func NewTripHandler(trips *service.TripService, expenses catalog.Expenses, logger *slog.Logger) *TripHandler {
	return &TripHandler{trips: trips, expenses: expenses, logger: logger}
}

// TripBody is the writable part of a trip. Membership is managed through
// the /trips/{id}/users routes only.
type TripBody struct {
	Title       string      `json:"title" maxLength:"200" doc:"Trip title"`
	StartDate   models.Date `json:"startDate" doc:"First day of the trip"`
	EndDate     models.Date `json:"endDate" doc:"Last day of the trip"`
	TotalBudget *float64    `json:"totalBudget,omitempty" exclusiveMinimum:"0" doc:"Budget for the whole trip"`
}

func (b TripBody) fields() models.TripFields {
	f := models.TripFields{
		Title:     b.Title,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
	if b.TotalBudget != nil {
		budget := decimal.NewFromFloat(*b.TotalBudget).Round(2)
		f.TotalBudget = &budget
	}
	return f
}

type TripIDInput struct {
	ID uint `path:"id" doc:"Trip ID"`
}

type CreateTripInput struct {
	Body TripBody
}

type UpdateTripInput struct {
	ID   uint `path:"id" doc:"Trip ID"`
	Body TripBody
}

type DateRangeInput struct {
	StartDate string `query:"startDate" required:"true" format:"date" doc:"Earliest allowed start date"`
	EndDate   string `query:"endDate" required:"true" format:"date" doc:"Latest allowed end date"`
}

type MembershipInput struct {
	ID     uint `path:"id" doc:"Trip ID"`
	UserID uint `path:"userId" doc:"User ID"`
}

type TripOutput struct {
	Body *models.Trip
}

type TripListOutput struct {
	Body []models.Trip
}

func (h *TripHandler) HandleList(ctx context.Context, _ *struct{}) (*TripListOutput, error) {
	trips, err := h.trips.ListTrips(ctx)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripListOutput{Body: trips}, nil
}

func (h *TripHandler) HandleGet(ctx context.Context, input *TripIDInput) (*TripOutput, error) {
	trip, err := h.trips.GetTrip(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	if trip == nil {
		return nil, huma.Error404NotFound("Trip not found")
	}
	return &TripOutput{Body: trip}, nil
}

func (h *TripHandler) HandleCreate(ctx context.Context, input *CreateTripInput) (*TripOutput, error) {
	trip, err := h.trips.CreateTrip(ctx, input.Body.fields())
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripOutput{Body: trip}, nil
}

func (h *TripHandler) HandleUpdate(ctx context.Context, input *UpdateTripInput) (*TripOutput, error) {
	trip, err := h.trips.UpdateTrip(ctx, input.ID, input.Body.fields())
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripOutput{Body: trip}, nil
}

func (h *TripHandler) HandleDelete(ctx context.Context, input *TripIDInput) (*struct{}, error) {
	if err := h.trips.DeleteTrip(ctx, input.ID); err != nil {
		return nil, apiError(h.logger, err)
	}
	return nil, nil
}

func (in *DateRangeInput) dates() (models.Date, models.Date, error) {
	start, err := models.ParseDate(in.StartDate)
	if err != nil {
		return models.Date{}, models.Date{}, huma.Error400BadRequest(err.Error())
	}
	end, err := models.ParseDate(in.EndDate)
	if err != nil {
		return models.Date{}, models.Date{}, huma.Error400BadRequest(err.Error())
	}
	return start, end, nil
}

// HandleDateRange lists the trips lying entirely inside the window.
func (h *TripHandler) HandleDateRange(ctx context.Context, input *DateRangeInput) (*TripListOutput, error) {
	start, end, err := input.dates()
	if err != nil {
		return nil, err
	}

	trips, err := h.trips.GetTripsByDateRange(ctx, start, end)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripListOutput{Body: trips}, nil
}

// HandleStarting lists the trips that begin inside the window.
func (h *TripHandler) HandleStarting(ctx context.Context, input *DateRangeInput) (*TripListOutput, error) {
	start, end, err := input.dates()
	if err != nil {
		return nil, err
	}

	trips, err := h.trips.GetTripsStartingBetween(ctx, start, end)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripListOutput{Body: trips}, nil
}

func (h *TripHandler) HandleAddUser(ctx context.Context, input *MembershipInput) (*TripOutput, error) {
	trip, err := h.trips.AddUserToTrip(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripOutput{Body: trip}, nil
}

func (h *TripHandler) HandleRemoveUser(ctx context.Context, input *MembershipInput) (*TripOutput, error) {
	trip, err := h.trips.RemoveUserFromTrip(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripOutput{Body: trip}, nil
}

type UserIDInput struct {
	ID uint `path:"id" doc:"User ID"`
}

func (h *TripHandler) HandleUserTrips(ctx context.Context, input *UserIDInput) (*TripListOutput, error) {
	trips, err := h.trips.GetTripsForUser(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	return &TripListOutput{Body: trips}, nil
}

type ItineraryOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// HandleItinerary renders the trip with its members and expenses as a PDF.
func (h *TripHandler) HandleItinerary(ctx context.Context, input *TripIDInput) (*ItineraryOutput, error) {
	trip, err := h.trips.GetTrip(ctx, input.ID)
	if err != nil {
		return nil, apiError(h.logger, err)
	}
	if trip == nil {
		return nil, huma.Error404NotFound("Trip not found")
	}

	expenses, err := h.expenses.ListExpensesByTrip(ctx, trip.ID, catalog.ExpenseFilter{})
	if err != nil {
		return nil, apiError(h.logger, err)
	}

	pdf, err := itinerary.Render(*trip, expenses, time.Now())
	if err != nil {
		return nil, apiError(h.logger, err)
	}

	return &ItineraryOutput{
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf(`inline; filename="%s"`, itinerary.Filename(*trip)),
		Body:               pdf,
	}, nil
}
