package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrendingMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"page":2,"results":[]}`))
	}))
	defer server.Close()

	tmdbClient := NewTmdbClientWith(server.URL, "test-key")
	body, err := tmdbClient.GetTrendingMovies(2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":2,"results":[]}`, string(body))
}

func TestSearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "fight club", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"id":550}]}`))
	}))
	defer server.Close()

	tmdbClient := NewTmdbClientWith(server.URL, "test-key")
	body, err := tmdbClient.SearchMovies("fight club", 1)
	require.NoError(t, err)
	assert.Contains(t, string(body), "550")
}

func TestGetMovieDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tmdbClient := NewTmdbClientWith(server.URL, "test-key")
	_, err := tmdbClient.GetMovieDetails(999999999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetRecommendedMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/recommendations", r.URL.Path)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	tmdbClient := NewTmdbClientWith(server.URL, "test-key")
	body, err := tmdbClient.GetRecommendedMovies(550)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestMakeRequestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tmdbClient := NewTmdbClientWith(server.URL, "test-key")
	_, err := tmdbClient.GetTrendingMovies(1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMovieNotFound)
}
