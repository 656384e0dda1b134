package tmdb

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

var languageFormat = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// baseParams builds the common query parameters, validating the
// configured language before it is sent. Validation failures are
// programming or configuration mistakes, not remote errors.
func (c *Client) baseParams() (url.Values, error) {
	params := url.Values{}
	if c.language != "" {
		if !languageFormat.MatchString(c.language) {
			return nil, fmt.Errorf("language %q is not in the format xx-XX", c.language)
		}
		params.Set("language", c.language)
	}
	return params, nil
}

func validYear(year int) error {
	if year < 0 {
		return fmt.Errorf("year should not be negative: %d", year)
	}
	return nil
}

// SearchMovies searches movie records. A year > 0 narrows results to that
// release year.
func (c *Client) SearchMovies(query string, year int) (*SearchResponse, error) {
	if err := validYear(year); err != nil {
		return nil, err
	}

	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	params.Set("query", query)
	params.Set("include_adult", "true")
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var resp SearchResponse
	if err := c.get("/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchTV searches TV show records. A year > 0 narrows results to shows
// that first aired in that year.
func (c *Client) SearchTV(query string, firstAirDateYear int) (*SearchResponse, error) {
	if err := validYear(firstAirDateYear); err != nil {
		return nil, err
	}

	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	params.Set("query", query)
	params.Set("include_adult", "true")
	if firstAirDateYear > 0 {
		params.Set("first_air_date_year", strconv.Itoa(firstAirDateYear))
	}

	var resp SearchResponse
	if err := c.get("/search/tv", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchMulti searches movies and TV shows in a single request. Results
// carry MediaType; the endpoint does not support a year filter.
func (c *Client) SearchMulti(query string) (*SearchResponse, error) {
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	params.Set("query", query)
	params.Set("include_adult", "true")

	var resp SearchResponse
	if err := c.get("/search/multi", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSeason fetches a season record with its episode list. A season the
// catalog has not indexed comes back as a 404 StatusError.
func (c *Client) GetSeason(showID, seasonNumber int) (*Season, error) {
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}

	var season Season
	resource := fmt.Sprintf("/tv/%d/season/%d", showID, seasonNumber)
	if err := c.get(resource, params, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// GetMovie fetches a movie detail record by id.
func (c *Client) GetMovie(movieID int) (*Movie, error) {
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}

	var movie Movie
	if err := c.get(fmt.Sprintf("/movie/%d", movieID), params, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
