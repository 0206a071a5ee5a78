package analytics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/sales-pulse/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RunQueries(t *testing.T) {
	response := store.QueryResponse{
		HasStructuredData: true,
		Data: []store.Table{
			{
				{Name: "month", Values: []any{"2024-06"}},
				{Name: "total_sales", Values: []any{1200.0}},
			},
		},
		Queries: []string{"SELECT ..."},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req store.QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-01-01", req.StartDate)
		assert.Equal(t, "2024-06-30", req.EndDate)
		assert.Equal(t, []string{"q1", "q2"}, req.Queries)

		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer srv.Close()

	client := NewClient(&Config{Endpoint: srv.URL, Token: "secret"})

	resp, err := client.RunQueries(context.Background(), store.QueryRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		Queries:   []string{"q1", "q2"},
	})
	require.NoError(t, err)

	assert.True(t, resp.HasStructuredData)
	require.Len(t, resp.Data, 1)
	require.Len(t, resp.Data[0], 2)
	assert.Equal(t, "month", resp.Data[0][0].Name)
	assert.Equal(t, "2024-06", resp.Data[0][0].Values[0])
	assert.Equal(t, 1200.0, resp.Data[0][1].Values[0], "JSON numbers arrive as float64")
}

func TestClient_RunQueries_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(&Config{Endpoint: srv.URL})

	_, err := client.RunQueries(context.Background(), store.QueryRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClient_RunQueries_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(&Config{Endpoint: srv.URL})

	_, err := client.RunQueries(context.Background(), store.QueryRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_RunQueries_ContextCancelled(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server watches the connection and cancels
		// r.Context() when the client aborts; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(&Config{Endpoint: srv.URL, Timeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.RunQueries(ctx, store.QueryRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
