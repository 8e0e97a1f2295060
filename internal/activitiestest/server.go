// Package activitiestest runs an in-memory activities API for tests.
package activitiestest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/topi314/activity-board/server/activities"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	snapshot *activities.Snapshot

	fetches atomic.Int64
}

// New starts a server seeded with snapshot. Close it when done.
func New(snapshot *activities.Snapshot) *Server {
	if snapshot == nil {
		snapshot = activities.NewSnapshot()
	}
	s := &Server{
		snapshot: snapshot,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", s.getActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", s.signup)
	mux.HandleFunc("DELETE /activities/{activity}/unregister", s.unregister)

	s.Server = httptest.NewServer(mux)
	return s
}

// Fetches returns how often GET /activities was served.
func (s *Server) Fetches() int {
	return int(s.fetches.Load())
}

func (s *Server) Activity(name string) (activities.Activity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Get(name)
}

func (s *Server) getActivities(w http.ResponseWriter, _ *http.Request) {
	s.fetches.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.snapshot)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.snapshot.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}
	if slices.Contains(activity.Participants, email) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Student is already signed up"})
		return
	}
	activity.Participants = append(slices.Clone(activity.Participants), email)
	s.snapshot.Set(name, activity)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name})
}

func (s *Server) unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.snapshot.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}
	i := slices.Index(activity.Participants, email)
	if i < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Student is not signed up for this activity"})
		return
	}
	activity.Participants = slices.Delete(slices.Clone(activity.Participants), i, i+1)
	s.snapshot.Set(name, activity)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Unregistered " + email + " from " + name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ChessClub is the single activity snapshot used across the board tests.
func ChessClub() *activities.Snapshot {
	lat, lng := 42.36, -71.06
	snapshot := activities.NewSnapshot()
	snapshot.Set("Chess Club", activities.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Mon 3pm",
		MaxParticipants: 10,
		Participants:    []string{"a@x.com"},
		Location: &activities.Location{
			Lat:     &lat,
			Lng:     &lng,
			Room:    "Rm1",
			Address: "1 Main St",
		},
	})
	return snapshot
}
