package tmdb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Language: "en-US"})
	return client, server
}

func TestSearchMovies(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{
			"page": 1,
			"results": [
				{"id": 550, "title": "Fight Club", "release_date": "1999-10-15"}
			],
			"total_pages": 1,
			"total_results": 1
		}`)
	})

	resp, err := client.SearchMovies("Fight Club", 1999)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 550, resp.Results[0].ID)
	assert.Equal(t, "Fight Club", resp.Results[0].Title)
	assert.Equal(t, "1999-10-15", resp.Results[0].ReleaseDate)

	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"Fight Club"}, gotQuery["query"])
	assert.Equal(t, []string{"1999"}, gotQuery["year"])
	assert.Equal(t, []string{"en-US"}, gotQuery["language"])
	assert.Equal(t, []string{"true"}, gotQuery["include_adult"])
}

func TestSearchMoviesOmitsZeroYear(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"results": []}`)
	})

	_, err := client.SearchMovies("Anything", 0)
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "year")
}

func TestSearchMoviesRejectsNegativeYear(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	_, err := client.SearchMovies("Anything", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestSearchTV(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{
			"results": [
				{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20"}
			]
		}`)
	})

	resp, err := client.SearchTV("Breaking Bad", 2008)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Breaking Bad", resp.Results[0].Name)
	assert.Equal(t, "/search/tv", gotPath)
	assert.Equal(t, []string{"2008"}, gotQuery["first_air_date_year"])
}

func TestSearchMultiCarriesMediaType(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		fmt.Fprint(w, `{
			"results": [
				{"id": 550, "media_type": "movie", "title": "Fight Club", "release_date": "1999-10-15"},
				{"id": 1396, "media_type": "tv", "name": "Breaking Bad", "first_air_date": "2008-01-20"},
				{"id": 819, "media_type": "person", "name": "Edward Norton"}
			]
		}`)
	})

	resp, err := client.SearchMulti("anything")
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, MediaTypeMovie, resp.Results[0].MediaType)
	assert.Equal(t, MediaTypeTV, resp.Results[1].MediaType)
	assert.Equal(t, "person", resp.Results[2].MediaType)
}

func TestGetSeason(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396/season/1", r.URL.Path)
		fmt.Fprint(w, `{
			"id": 3572,
			"name": "Season 1",
			"season_number": 1,
			"air_date": "2008-01-20",
			"episodes": [
				{"episode_number": 1, "name": "Pilot", "air_date": "2008-01-20"},
				{"episode_number": 2, "name": "Cat's in the Bag...", "air_date": "2008-01-27"}
			]
		}`)
	})

	season, err := client.GetSeason(1396, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, season.SeasonNumber)
	assert.Equal(t, "2008", season.AirYear())
	require.Len(t, season.Episodes, 2)
	assert.Equal(t, "Pilot", season.Episodes[0].Name)
}

func TestGetSeasonNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status_code": 34, "status_message": "The resource you requested could not be found."}`)
	})

	_, err := client.GetSeason(1396, 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.Code)
	assert.Contains(t, statusErr.Message, "could not be found")
}

func TestUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status_code": 7, "status_message": "Invalid API key."}`)
	})

	err := client.Ping()
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		fmt.Fprint(w, `{"id": 550, "title": "Fight Club", "release_date": "1999-10-15"}`)
	})

	assert.NoError(t, client.Ping())
}

func TestMissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.SearchMovies("Anything", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key missing")
}

func TestInvalidLanguage(t *testing.T) {
	client := NewClient(Config{APIKey: "k", Language: "english"})
	_, err := client.SearchMulti("Anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xx-XX")
}

func TestStatusErrorWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", &StatusError{Code: 404, Message: "gone"})
	assert.True(t, IsNotFound(err))
}
