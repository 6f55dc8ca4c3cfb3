package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
// Type, Details, Saved and Total are set only by the day plan endpoint.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Type    string   `json:"type,omitempty"`
	Details []string `json:"details,omitempty"`
	Saved   *int     `json:"saved,omitempty"`
	Total   *int     `json:"total,omitempty"`
}

// errBadBody is returned by decodeJSON for anything that is not one JSON
// object of the expected shape.
var errBadBody = errors.New("invalid request body")

// errBadDate is returned by decodeJSON when a date field is not YYYY-MM-DD.
var errBadDate = errors.New("invalid date")

// errBodyTooLarge is returned by decodeJSON when MaxBytesReader trips.
var errBodyTooLarge = errors.New("request body too large")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	writeJSON(w, status, body)
}

// badRequest writes a 400 with message as the error text.
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// internalError logs err and writes an opaque 500.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// decodeJSON reads exactly one JSON value from the body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		var badDate *time.ParseError
		if errors.As(err, &badDate) {
			return errBadDate
		}
		return errBadBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errBadBody
	}
	return nil
}

// writeDecodeError maps a decodeJSON error to 413 or 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return
	}
	if errors.Is(err, errBadDate) {
		badRequest(w, "Invalid date format")
		return
	}
	badRequest(w, "Invalid request body")
}

// pathUUID binds the {name} path parameter as a UUID the same way a
// generated server would.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error.
// e.g. "service.HolidayService.Create: validation error: name is required" → "name is required"
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
