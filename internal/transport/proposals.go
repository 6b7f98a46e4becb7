package transport

import (
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/normalize"
)

func (s *Server) listProposals(w http.ResponseWriter, r *http.Request) {
	clientID, ok := queryClientID(w, r)
	if !ok {
		return
	}

	var (
		proposals []proposal.Proposal
		err       error
	)
	if clientID > 0 {
		proposals, err = s.proposals.GetByClient(r.Context(), clientID)
	} else {
		proposals, err = s.proposals.GetAll(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if proposals == nil {
		proposals = []proposal.Proposal{}
	}
	writeJSON(w, http.StatusOK, proposals)
}

func (s *Server) getProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := s.proposals.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) createProposal(w http.ResponseWriter, r *http.Request) {
	var req proposal.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.proposals.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req proposal.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.proposals.Update(r.Context(), id, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.proposals.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateProposalStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status proposal.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.proposals.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) generateProposalLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := s.proposals.GenerateSigningLink(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) importProposals(w http.ResponseWriter, r *http.Request) {
	var raws []map[string]any
	if !decodeBody(w, r, &raws) {
		return
	}

	records, dropped := normalize.Batch(s.logger, "proposal", raws, normalize.Proposal)
	imported := 0
	for i := range records {
		rec := records[i]
		rec.ID = 0
		if err := s.repos.Proposals.Create(r.Context(), &rec); err != nil {
			s.writeServiceError(w, err)
			return
		}
		imported++
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "dropped": dropped})
}
