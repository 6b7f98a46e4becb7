package transport

import (
	"net/http"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/normalize"
)

func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request) {
	clientID, ok := queryClientID(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")

	var (
		appointments []appointment.Appointment
		err          error
	)
	switch {
	case clientID > 0:
		appointments, err = s.appointments.GetByClient(r.Context(), clientID)
	case date != "":
		appointments, err = s.appointments.GetByDate(r.Context(), date)
	default:
		appointments, err = s.appointments.GetAll(r.Context())
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if appointments == nil {
		appointments = []appointment.Appointment{}
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (s *Server) getAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, err := s.appointments.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointment.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.appointments.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) updateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req appointment.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.appointments.Update(r.Context(), id, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.appointments.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status appointment.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.appointments.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) importAppointments(w http.ResponseWriter, r *http.Request) {
	var raws []map[string]any
	if !decodeBody(w, r, &raws) {
		return
	}

	records, dropped := normalize.Batch(s.logger, "appointment", raws, normalize.Appointment)
	imported := 0
	for i := range records {
		rec := records[i]
		rec.ID = 0
		if err := s.repos.Appointments.Create(r.Context(), &rec); err != nil {
			s.writeServiceError(w, err)
			return
		}
		imported++
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "dropped": dropped})
}
