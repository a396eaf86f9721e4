package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moview/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const inceptionJSON = `{
	"Title": "Inception",
	"Year": "2010",
	"Genre": "Action, Adventure, Sci-Fi",
	"Director": "Christopher Nolan",
	"Plot": "A thief who steals corporate secrets.",
	"Poster": "https://img.example/inception.jpg",
	"imdbRating": "8.8",
	"imdbID": "tt1375666",
	"Response": "True"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(utils.OMDBConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestClient_Search(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"s":      r.URL.Query().Get("s"),
			"apikey": r.URL.Query().Get("apikey"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Search": [
				{"Title": "Harry Potter and the Deathly Hallows: Part 2", "Year": "2011", "imdbID": "tt1201607", "Type": "movie", "Poster": "https://img.example/hp.jpg"},
				{"Title": "Harry Potter and the Sorcerer's Stone", "Year": "2001", "imdbID": "tt0241527", "Type": "movie", "Poster": "https://img.example/hp1.jpg"}
			],
			"totalResults": "2",
			"Response": "True"
		}`))
	})

	movies, err := client.Search(context.Background(), "harry potter")

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "harry potter", gotQuery["s"])
	assert.Equal(t, "test-key", gotQuery["apikey"])
	assert.Equal(t, "tt1201607", movies[0].ImdbID)
	assert.Equal(t, "2001", movies[1].Year)
	assert.Nil(t, movies[0].ImdbRating)
}

func TestClient_SearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "no results", status: http.StatusOK, body: `{"Response":"False","Error":"Movie not found!"}`, wantErr: ErrNotFound},
		{name: "api error", status: http.StatusOK, body: `{"Response":"False","Error":"Invalid API key!"}`, wantErr: ErrUpstream},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrUpstream},
		{name: "malformed json", status: http.StatusOK, body: `{"Search": [`, wantErr: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			movies, err := client.Search(context.Background(), "batman")

			require.Error(t, err)
			assert.Nil(t, movies)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestClient_GetByID(t *testing.T) {
	var gotID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("i")
		w.Write([]byte(inceptionJSON))
	})

	detail, err := client.GetByID(context.Background(), "tt1375666")

	require.NoError(t, err)
	assert.Equal(t, "tt1375666", gotID)
	assert.Equal(t, "Inception", detail.Title)
	assert.Equal(t, "Christopher Nolan", detail.Director)
	assert.Equal(t, "8.8", detail.ImdbRating)
}

func TestClient_GetByIDMissingFieldIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no plot", body: `{"Title":"Inception","Year":"2010","Genre":"Sci-Fi","Director":"Nolan","Poster":"p","imdbRating":"8.8","Response":"True"}`},
		{name: "no rating", body: `{"Title":"Inception","Year":"2010","Genre":"Sci-Fi","Director":"Nolan","Plot":"x","Poster":"p","Response":"True"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			detail, err := client.GetByID(context.Background(), "tt1375666")

			require.Error(t, err)
			assert.Nil(t, detail)
			assert.True(t, errors.Is(err, ErrDecode), "got %v", err)
		})
	}
}

func TestClient_GetByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	})

	_, err := client.GetByID(context.Background(), "tt0000000")

	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestClient_RespectsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.Write([]byte(inceptionJSON))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetByID(ctx, "tt1375666")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream) || errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestRedactDropsAPIKey(t *testing.T) {
	q := map[string][]string{"s": {"matrix"}, "apikey": {"secret"}}

	assert.Equal(t, "s=matrix", redact(q))
}
