package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/textsearch/json" || r.URL.Query().Get("key") != "secret" {
			http.Error(w, "unexpected request", http.StatusBadRequest)
			return
		}

		switch r.URL.Query().Get("query") {
		case "eiffel":
			w.Write([]byte(`{"status":"OK","results":[{"name":"Eiffel Tower","formatted_address":"Paris","rating":4.7,
				"geometry":{"location":{"lat":48.8584,"lng":2.2945}},"photos":[{"photo_reference":"p1"}]}]}`))
		case "nowhere":
			w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		default:
			w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret", server.Client())
	ctx := context.Background()

	got, err := client.Search(ctx, "eiffel")
	require.NoError(t, err)
	require.Equal(t, []Place{{
		Name:      "Eiffel Tower",
		Address:   "Paris",
		Latitude:  48.8584,
		Longitude: 2.2945,
		Rating:    4.7,
		PhotoRefs: []string{"p1"},
	}}, got)

	got, err = client.Search(ctx, "nowhere")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = client.Search(ctx, "denied")
	require.EqualError(t, err, "places search failed: The provided API key is invalid.")
}

func TestSearchWithoutKey(t *testing.T) {
	_, err := NewClient("", "", nil).Search(context.Background(), "x")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSearchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "k", nil).Search(context.Background(), "x")
	require.EqualError(t, err, "places request failed: HTTP 502")
}
