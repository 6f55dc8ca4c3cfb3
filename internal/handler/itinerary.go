// itinerary.go implements GET /api/holidays/{id}/itinerary.
// Encodes the flat day-by-day table built by the itinerary service.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).

package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// itineraryHeaders defines the column names written as the first row of a CSV itinerary.
var itineraryHeaders = []string{
	"holiday_name", "destination", "day_number", "activity_date", "sort_order",
	"start_time", "end_time", "activity_name", "venue_name", "address",
	"estimated_cost", "currency", "notes",
}

// ItineraryRow is one activity of an exported itinerary.
type ItineraryRow struct {
	DayNumber     int      `json:"day_number"`
	ActivityDate  string   `json:"activity_date"`
	SortOrder     int      `json:"sort_order"`
	StartTime     string   `json:"start_time"`
	EndTime       *string  `json:"end_time,omitempty"`
	ActivityName  string   `json:"activity_name"`
	VenueName     string   `json:"venue_name"`
	Address       *string  `json:"address,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// Itinerary is the JSON body of GET /api/holidays/{id}/itinerary.
type Itinerary struct {
	Holiday Holiday        `json:"holiday"`
	Rows    []ItineraryRow `json:"rows"`
}

// GetItinerary handles GET /api/holidays/{id}/itinerary.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badRequest(w, "Invalid holiday ID")
		return
	}
	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		badRequest(w, "Invalid format parameter")
		return
	}
	if format != "" && format != "csv" && format != "json" {
		badRequest(w, "format must be csv or json")
		return
	}

	it, err := s.itinerary.Itinerary(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, ErrorResponse{Error: "Holiday not found"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	if format == "csv" {
		writeItineraryCSV(w, it.Rows)
		return
	}
	rows := make([]ItineraryRow, len(it.Rows))
	for i, row := range it.Rows {
		rows[i] = itineraryRowToResponse(row)
	}
	writeJSON(w, http.StatusOK, Itinerary{Holiday: holidayToResponse(it.Holiday), Rows: rows})
}

// writeItineraryCSV encodes the rows as CSV in the order given.
func writeItineraryCSV(w http.ResponseWriter, rows []domain.ItineraryRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	_ = cw.Write(itineraryHeaders) // bytes.Buffer writes never fail
	for _, row := range rows {
		_ = cw.Write(itineraryRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func itineraryRowToResponse(row domain.ItineraryRow) ItineraryRow {
	return ItineraryRow{
		DayNumber:     row.DayNumber,
		ActivityDate:  row.ActivityDate,
		SortOrder:     row.SortOrder,
		StartTime:     row.StartTime,
		EndTime:       lo.EmptyableToPtr(row.EndTime),
		ActivityName:  row.ActivityName,
		VenueName:     row.VenueName,
		Address:       lo.EmptyableToPtr(row.Address),
		EstimatedCost: row.EstimatedCost,
		Currency:      lo.EmptyableToPtr(row.Currency),
		Notes:         lo.EmptyableToPtr(row.Notes),
	}
}

// itineraryRowToCSVRecord flattens a row. A nil cost is encoded as "".
func itineraryRowToCSVRecord(row domain.ItineraryRow) []string {
	cost := ""
	if row.EstimatedCost != nil {
		cost = strconv.FormatFloat(*row.EstimatedCost, 'f', 2, 64)
	}
	return []string{
		row.HolidayName,
		row.Destination,
		strconv.Itoa(row.DayNumber),
		row.ActivityDate,
		strconv.Itoa(row.SortOrder),
		row.StartTime,
		row.EndTime,
		row.ActivityName,
		row.VenueName,
		row.Address,
		cost,
		row.Currency,
		row.Notes,
	}
}
