package activities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/"}, srv.Client())
}

func TestFetchActivities(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Chess Club": {"description": "Chess", "schedule": "Mon 3pm", "max_participants": 10, "participants": ["a@x.com"], "location": {"lat": 42.36, "lng": -71.06, "room": "Rm1", "address": "1 Main St"}}, "Art Club": {"description": "Art", "schedule": "Tue", "max_participants": 5, "participants": []}}`))
	})

	snapshot, err := client.FetchActivities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Chess Club", "Art Club"}, snapshot.Names())
	chess, ok := snapshot.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, 9, chess.SpotsLeft())
	assert.True(t, chess.Location.HasCoordinates())

	art, _ := snapshot.Get("Art Club")
	assert.Nil(t, art.Location)
}

func TestFetchActivitiesStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchActivities(context.Background())
	assert.Error(t, err)
}

func TestFetchActivitiesMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Chess Club": `))
	})

	_, err := client.FetchActivities(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnreachable)
}

func TestFetchActivitiesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(Config{BaseURL: srv.URL}, http.DefaultClient)
	_, err := client.FetchActivities(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSignup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/activities/Chess Club/signup", r.URL.Path)
		assert.Equal(t, "b@x.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"message": "Signed up b@x.com for Chess Club"}`))
	})

	message, err := client.Signup(context.Background(), "Chess Club", "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Signed up b@x.com for Chess Club", message)
}

func TestUnregister(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/activities/Chess Club/unregister", r.URL.Path)
		assert.Equal(t, "a@x.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"message": "Unregistered a@x.com from Chess Club"}`))
	})

	message, err := client.Unregister(context.Background(), "Chess Club", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered a@x.com from Chess Club", message)
}

func TestSignupRejected(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "string detail", status: http.StatusBadRequest, body: `{"detail": "Already registered"}`, wantDetail: "Already registered"},
		{name: "missing detail", status: http.StatusNotFound, body: `{}`, wantDetail: ""},
		{name: "list detail", status: http.StatusUnprocessableEntity, body: `{"detail": [{"msg": "field required"}]}`, wantDetail: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Signup(context.Background(), "Chess Club", "a@x.com")
			apiErr, ok := IsRejection(err)
			require.True(t, ok, "expected rejection, got %v", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestSignupUndecodableErrorIsNotRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	})

	_, err := client.Signup(context.Background(), "Chess Club", "a@x.com")
	require.Error(t, err)
	_, ok := IsRejection(err)
	assert.False(t, ok)
}

func TestRegistrationURLEscapes(t *testing.T) {
	got := RegistrationURL("http://api", "Art & Craft/Club", "signup", "a+b@x.com")
	assert.Equal(t, "http://api/activities/Art%20&%20Craft%2FClub/signup?email=a%2Bb%40x.com", got)
}
