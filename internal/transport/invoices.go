package transport

import (
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/normalize"
)

func (s *Server) listInvoices(w http.ResponseWriter, r *http.Request) {
	clientID, ok := queryClientID(w, r)
	if !ok {
		return
	}

	var (
		invoices []invoice.Invoice
		err      error
	)
	if clientID > 0 {
		invoices, err = s.invoices.GetByClient(r.Context(), clientID)
	} else {
		invoices, err = s.invoices.GetAll(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if invoices == nil {
		invoices = []invoice.Invoice{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inv, err := s.invoices.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	inv, err := s.invoices.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (s *Server) updateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req invoice.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	inv, err := s.invoices.Update(r.Context(), id, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (s *Server) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.invoices.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status invoice.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	inv, err := s.invoices.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (s *Server) generateInvoiceLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := s.invoices.GenerateSigningLink(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) importInvoices(w http.ResponseWriter, r *http.Request) {
	var raws []map[string]any
	if !decodeBody(w, r, &raws) {
		return
	}

	records, dropped := normalize.Batch(s.logger, "invoice", raws, normalize.Invoice)
	imported := 0
	for i := range records {
		rec := records[i]
		rec.ID = 0
		if err := s.repos.Invoices.Create(r.Context(), &rec); err != nil {
			s.writeServiceError(w, err)
			return
		}
		imported++
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "dropped": dropped})
}
