package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors onto the HTTP surface. Validation
// failures carry their field map; invalid tokens look identical to missing
// records except for the message, so a token can't be probed for existence
// versus shape.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, invoice.ErrInvalidToken),
		errors.Is(err, proposal.ErrInvalidToken):
		writeError(w, http.StatusNotFound, "invalid signing link")
	case errors.Is(err, client.ErrClientNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, invoice.ErrInvoiceNotFound),
		errors.Is(err, proposal.ErrProposalNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, client.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, invoice.ErrInvalidStatus),
		errors.Is(err, proposal.ErrInvalidStatus),
		errors.Is(err, appointment.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid status")
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody decodes a JSON request body, rejecting unparsable input with a
// 400 before any service call.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
