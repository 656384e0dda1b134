package tmdb

// Supported media types. Search results of any other type (people,
// collections) are not usable for renaming.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// Result is a single search result. Movies carry Title/ReleaseDate, TV
// shows carry Name/FirstAirDate. MediaType is only populated by multi
// search; typed searches leave it empty.
type Result struct {
	ID           int    `json:"id"`
	MediaType    string `json:"media_type"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	FirstAirDate string `json:"first_air_date"`
	ReleaseDate  string `json:"release_date"`
}

// DisplayName returns the title field appropriate for the result's type.
func (r Result) DisplayName(mediaType string) string {
	if mediaType == MediaTypeTV {
		return r.Name
	}
	return r.Title
}

// Date returns the release/first-air date appropriate for the result's type.
func (r Result) Date(mediaType string) string {
	if mediaType == MediaTypeTV {
		return r.FirstAirDate
	}
	return r.ReleaseDate
}

// SearchResponse is a page of search results in catalog order.
type SearchResponse struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Episode is one episode of a season.
type Episode struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	AirDate       string `json:"air_date"`
}

// Season is a TV season record with its ordered episode list.
type Season struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	SeasonNumber int       `json:"season_number"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes"`
}

// AirYear returns the 4-digit year portion of the season's air date,
// or "" when the date is absent.
func (s Season) AirYear() string {
	if len(s.AirDate) < 4 {
		return ""
	}
	return s.AirDate[:4]
}

// Movie is the subset of a movie detail record the client consumes.
type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}
