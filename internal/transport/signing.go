package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/fieldbook/internal/domain/signing"
)

// resolveSigning looks up the record behind a signing link. Unknown kinds and
// unmatched tokens both come back 404 so a link can't be probed piecewise.
func (s *Server) resolveSigning(w http.ResponseWriter, r *http.Request) {
	kind, ok := signing.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "invalid signing link")
		return
	}
	token := chi.URLParam(r, "token")

	switch kind {
	case signing.KindInvoice:
		inv, err := s.invoices.GetBySigningToken(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "invoice": inv})
	case signing.KindProposal:
		p, err := s.proposals.GetBySigningToken(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "proposal": p})
	}
}

// submitSigning marks the record behind a signing link as signed. Repeat
// submissions return the already-signed record unchanged.
func (s *Server) submitSigning(w http.ResponseWriter, r *http.Request) {
	kind, ok := signing.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "invalid signing link")
		return
	}
	token := chi.URLParam(r, "token")

	switch kind {
	case signing.KindInvoice:
		inv, err := s.invoices.GetBySigningToken(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		signed, err := s.invoices.UpdateSigningStatus(r.Context(), inv.ID, signing.StatusSigned)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "invoice": signed})
	case signing.KindProposal:
		p, err := s.proposals.GetBySigningToken(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		signed, err := s.proposals.UpdateSigningStatus(r.Context(), p.ID, signing.StatusSigned)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "proposal": signed})
	}
}
