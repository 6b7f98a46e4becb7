package transport

import (
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/normalize"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	clientID, ok := queryClientID(w, r)
	if !ok {
		return
	}

	var (
		projects []project.Project
		err      error
	)
	if clientID > 0 {
		projects, err = s.projects.GetByClient(r.Context(), clientID)
	} else {
		projects, err = s.projects.GetAll(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.projects.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req project.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.projects.Update(r.Context(), id, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.projects.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status project.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.projects.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) importProjects(w http.ResponseWriter, r *http.Request) {
	var raws []map[string]any
	if !decodeBody(w, r, &raws) {
		return
	}

	records, dropped := normalize.Batch(s.logger, "project", raws, normalize.Project)
	imported := 0
	for i := range records {
		rec := records[i]
		rec.ID = 0
		if err := s.repos.Projects.Create(r.Context(), &rec); err != nil {
			s.writeServiceError(w, err)
			return
		}
		imported++
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "dropped": dropped})
}
