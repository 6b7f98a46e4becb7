package transport

import (
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/normalize"
)

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.GetAll(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if clients == nil {
		clients = []client.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := s.clients.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var req client.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.clients.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req client.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.clients.Update(r.Context(), id, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.clients.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateClientStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status client.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.clients.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) importClients(w http.ResponseWriter, r *http.Request) {
	var raws []map[string]any
	if !decodeBody(w, r, &raws) {
		return
	}

	records, dropped := normalize.Batch(s.logger, "client", raws, normalize.Client)
	imported := 0
	for i := range records {
		rec := records[i]
		rec.ID = 0
		if err := s.repos.Clients.Create(r.Context(), &rec); err != nil {
			s.writeServiceError(w, err)
			return
		}
		imported++
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "dropped": dropped})
}
