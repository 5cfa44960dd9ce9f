// Package itinerary renders a printable trip summary.
package itinerary

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Filename is the download name for a trip's itinerary.
func Filename(trip models.Trip) string {
	return fmt.Sprintf("trip-%d-itinerary.pdf", trip.ID)
}

// Render lays out the trip, its members and its expenses on A4 pages.
func Render(trip models.Trip, expenses []models.Expense, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(trip.Title), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(trip.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	days := int(trip.EndDate.Time().Sub(trip.StartDate.Time()).Hours()/24) + 1
	pdf.Cell(0, 7, fmt.Sprintf("Dates   : %s to %s (%d days)", trip.StartDate, trip.EndDate, days))
	pdf.Ln(7)
	budget := "-"
	if trip.TotalBudget != nil {
		budget = trip.TotalBudget.StringFixed(2)
	}
	pdf.Cell(0, 7, "Budget  : "+budget)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Travellers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(trip.Users) == 0 {
		pdf.Cell(0, 6, "No travellers yet")
		pdf.Ln(6)
	}
	for _, u := range trip.Users {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		pdf.Cell(0, 6, tr("- "+name))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Expenses")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(90, 7, "Category", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	total := decimal.Zero
	for _, e := range expenses {
		pdf.CellFormat(40, 7, e.Date.String(), "1", 0, "", false, 0, "")
		pdf.CellFormat(90, 7, tr(e.Category), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, e.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
		total = total.Add(e.Amount)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 7, "Total", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, total.StringFixed(2), "1", 1, "R", false, 0, "")

	if trip.TotalBudget != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, "Remaining budget: "+trip.TotalBudget.Sub(total).StringFixed(2))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, "Generated "+generatedAt.UTC().Format("2006-01-02 15:04 MST"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary: %w", err)
	}
	return buf.Bytes(), nil
}
