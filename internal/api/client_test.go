package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/api"
)

// newTestClient spins up a fake Library Service and returns a client bound to it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 2*time.Second)
}

func TestClientErrorTaxonomy(t *testing.T) {
	t.Run("non-2xx returns a RequestError with the body's message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"Book not found"}`))
		})

		_, err := client.ListBooks(context.Background(), api.BookQuery{})
		require.Error(t, err)

		var reqErr *api.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.Status)
		assert.Equal(t, "Book not found", reqErr.Message)
	})

	t.Run("non-2xx without a structured body gets a generic message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		})

		_, err := client.BookCategories(context.Background())
		var reqErr *api.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Unknown error", reqErr.Message)
	})

	t.Run("200 with success=false is still a failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":"no copies available"}`))
		})

		_, err := client.BorrowBook(context.Background(), "b1", "u1", 14)
		var reqErr *api.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "no copies available", reqErr.Message)
	})

	t.Run("timeout is reported distinctly from connection failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)

		client := api.NewClient(srv.URL, 20*time.Millisecond)
		_, err := client.Health(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, api.ErrTimeout)
		assert.NotErrorIs(t, err, api.ErrUnavailable)
	})

	t.Run("connection refused maps to ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		client := api.NewClient(srv.URL, time.Second)
		_, err := client.Health(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, api.ErrUnavailable)
	})

	t.Run("malformed envelope maps to ErrBadPayload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		})

		_, err := client.ListUsers(context.Background(), api.UserQuery{})
		assert.ErrorIs(t, err, api.ErrBadPayload)
	})
}

func TestClientRequests(t *testing.T) {
	t.Run("list books sends pagination and filters", func(t *testing.T) {
		var gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"b1","title":"Dune","author":"Herbert","availableCopies":2,"totalCopies":3}]}`))
		})

		books, err := client.ListBooks(context.Background(), api.BookQuery{Page: 2, Limit: 25, Search: "dune", Category: "Sci-Fi"})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
		assert.True(t, books[0].Available())
		assert.Contains(t, gotQuery, "page=2")
		assert.Contains(t, gotQuery, "limit=25")
		assert.Contains(t, gotQuery, "search=dune")
		assert.Contains(t, gotQuery, "category=Sci-Fi")
	})

	t.Run("add book posts the full payload once", func(t *testing.T) {
		var calls int
		var got api.NewBook
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/books", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"b9","title":"Dune"}}`))
		})

		created, err := client.AddBook(context.Background(), api.NewBook{
			Title:           "Dune",
			Author:          "Herbert",
			Category:        "Sci-Fi",
			TotalCopies:     3,
			AvailableCopies: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "b9", created.ID)
		assert.Equal(t, 1, calls)
		assert.Equal(t, got.TotalCopies, got.AvailableCopies)
		assert.Nil(t, got.ISBN)
	})

	t.Run("delete book targets the path-escaped id", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodDelete, r.Method)
			_, _ = w.Write([]byte(`{"success":true}`))
		})

		require.NoError(t, client.DeleteBook(context.Background(), "b1"))
		assert.Equal(t, "/books/b1", gotPath)
	})

	t.Run("health decodes the unwrapped probe shape", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status":"OK","database":{"status":"connected","connected":true}}`))
		})

		health, err := client.Health(context.Background())
		require.NoError(t, err)
		assert.True(t, health.OK())
		assert.True(t, health.Database.Connected)
		assert.Equal(t, "connected", health.Database.Status)
	})

	t.Run("return book surfaces the fine notice", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "TXN-1", payload["transactionId"])
			_, _ = w.Write([]byte(`{"success":true,"data":{"transactionId":"TXN-1","status":"returned"},"fine":"Fine of $2.50 applied"}`))
		})

		result, err := client.ReturnBook(context.Background(), "TXN-1")
		require.NoError(t, err)
		assert.Equal(t, "returned", result.Transaction.Status)
		assert.Equal(t, "Fine of $2.50 applied", result.Fine)
	})
}
