// Package identify resolves on-disk media items to canonical catalog
// entries through progressive name cleanup, candidate ranking, and
// interactive confirmation.
package identify

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/logging"
	"github.com/Nomadcxx/jellyname/internal/naming"
	"github.com/Nomadcxx/jellyname/internal/tmdb"
)

// Searcher is the slice of the catalog client the engine consumes.
type Searcher interface {
	SearchMovies(query string, year int) (*tmdb.SearchResponse, error)
	SearchTV(query string, firstAirDateYear int) (*tmdb.SearchResponse, error)
	SearchMulti(query string) (*tmdb.SearchResponse, error)
}

// Item is a filesystem path the user wants organized, with optional
// user-supplied overrides. Whether the path is a file or a folder is the
// renamer's concern; it stats the path itself.
type Item struct {
	Path string
	Name string // override, "" = derive from filename
	Year int    // override, 0 = unknown
	Type string // override: "movie", "tv" or ""
}

// Candidate is one catalog search result under consideration. Type is the
// effective media type: the record's own when multi search supplied one,
// otherwise the type the caller requested.
type Candidate struct {
	Result tmdb.Result
	Type   string
}

// Identity is the resolved catalog match for an item. Once resolved
// (non-zero ID) it is never mutated for the remainder of the run.
type Identity struct {
	ID         int
	Name       string
	Year       int
	Type       string
	Record     tmdb.Result
	Candidates []Candidate
}

// Resolved reports whether the identity has been confirmed.
func (id *Identity) Resolved() bool {
	return id != nil && id.ID != 0
}

// Engine states. The engine walks Unresolved -> Searching ->
// CandidatesFound -> Confirming -> Resolved; Confirming loops back to
// Searching when the user rejects every candidate, and ManualEntry is the
// fallback once automated search is exhausted.
type State int

const (
	StateUnresolved State = iota
	StateSearching
	StateCandidatesFound
	StateConfirming
	StateResolved
	StateManualEntry
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateSearching:
		return "searching"
	case StateCandidatesFound:
		return "candidates_found"
	case StateConfirming:
		return "confirming"
	case StateResolved:
		return "resolved"
	case StateManualEntry:
		return "manual_entry"
	default:
		return "unknown"
	}
}

var (
	manualYearFormat    = regexp.MustCompile(`^\d{4}$`)
	supportedMediaTypes = map[string]bool{tmdb.MediaTypeMovie: true, tmdb.MediaTypeTV: true}
)

// Engine resolves items against the catalog.
type Engine struct {
	catalog Searcher
	prompt  Prompter
	log     *logging.Logger
	debug   bool
	state   State
}

// New creates an identification engine.
func New(catalog Searcher, prompt Prompter, log *logging.Logger, debug bool) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		catalog: catalog,
		prompt:  prompt,
		log:     log,
		debug:   debug,
	}
}

func (e *Engine) setState(s State) {
	e.state = s
	e.log.Debug("identify", "state transition", logging.F("state", s))
}

// State returns the engine's state after the last Identify call.
func (e *Engine) State() State {
	return e.state
}

// Identify resolves item to a catalog identity. When current is already
// resolved the user is asked whether to retry; declining returns current
// unchanged. Identify only returns an unresolved identity if the user
// declines a retry; otherwise it prompts until something is confirmed, or
// errors out if the input stream closes before that happens.
func (e *Engine) Identify(item Item, current *Identity) (*Identity, error) {
	if item.Path == "" {
		return nil, errors.New("no item has been specified")
	}

	if current.Resolved() {
		question := fmt.Sprintf("This media is currently identified as %q (%d). Would you like to try to identify again",
			current.Name, current.Year)
		if !e.prompt.Confirm(question) {
			return current, nil
		}
	}

	e.setState(StateUnresolved)

	var ident *Identity
	if item.Name != "" {
		ident = e.searchAndConfirm(item, item.Name, filepath.Base(item.Path))
	} else {
		ident = e.enquire(item)
	}

	for !ident.Resolved() {
		e.setState(StateManualEntry)
		manual, err := e.manualEntry(item)
		if err != nil {
			return nil, fmt.Errorf("unable to identify %s: %w", item.Path, err)
		}
		ident = e.searchAndConfirm(manual, manual.Name, filepath.Base(item.Path))
	}

	e.setState(StateResolved)
	return ident, nil
}

// enquire derives a searchable name from the item's base filename,
// applying cleanup rewrites in priority order and re-searching after each
// until a candidate is confirmed or the rewrites run out.
func (e *Engine) enquire(item Item) *Identity {
	originalName := filepath.Base(item.Path)
	name := originalName

	for _, attempt := range naming.CleanupAttempts {
		name = attempt.Apply(name)
		if ident := e.searchAndConfirm(item, name, originalName); ident.Resolved() {
			return ident
		}
	}

	return nil
}

// searchAndConfirm runs one search pass: query the catalog, filter and
// rank the results, and walk the user through them.
func (e *Engine) searchAndConfirm(item Item, name, originalName string) *Identity {
	e.setState(StateSearching)

	results := e.search(item, name)
	if results == nil || len(results.Results) == 0 {
		return nil
	}

	candidates := e.evaluate(results.Results, originalName, item.Type)
	if len(candidates) == 0 {
		return nil
	}
	e.setState(StateCandidatesFound)

	return e.confirm(item, candidates)
}

func (e *Engine) search(item Item, name string) *tmdb.SearchResponse {
	if e.debug {
		fmt.Printf("Searching for %q\n", name)
	}

	var (
		results *tmdb.SearchResponse
		err     error
	)
	switch item.Type {
	case tmdb.MediaTypeTV:
		results, err = e.catalog.SearchTV(name, item.Year)
	case tmdb.MediaTypeMovie:
		results, err = e.catalog.SearchMovies(name, item.Year)
	default:
		results, err = e.catalog.SearchMulti(name)
	}

	if err != nil {
		// A failed call yields no candidates; the cleanup loop or manual
		// entry carries on.
		e.log.Warn("identify", "catalog search failed", logging.F("query", name), logging.F("error", err))
		return nil
	}
	return results
}

// evaluate filters unusable records and ranks the survivors: records whose
// release year appears in the item's original filename go first, the rest
// keep catalog order.
func (e *Engine) evaluate(results []tmdb.Result, originalName, requestedType string) []Candidate {
	var promoted, rest []Candidate

	for _, result := range results {
		mediaType := result.MediaType
		if mediaType == "" {
			mediaType = requestedType
		}
		if !supportedMediaTypes[mediaType] {
			// e.g. a person sharing a name with a movie or show
			e.log.Debug("identify", "result is not a supported type",
				logging.F("type", result.MediaType), logging.F("id", result.ID))
			continue
		}
		if result.DisplayName(mediaType) == "" {
			e.log.Debug("identify", "no name specified for result", logging.F("id", result.ID))
			continue
		}
		date := result.Date(mediaType)
		if date == "" {
			e.log.Debug("identify", "no release date for result", logging.F("id", result.ID))
			continue
		}

		candidate := Candidate{Result: result, Type: mediaType}
		if year := yearOf(date); year != "" && strings.Contains(originalName, year) {
			promoted = append(promoted, candidate)
		} else {
			rest = append(rest, candidate)
		}
	}

	return append(promoted, rest...)
}

// confirm walks the ranked candidates. Yes resolves immediately, no moves
// to the next candidate, skip abandons the rest of the list.
func (e *Engine) confirm(item Item, candidates []Candidate) *Identity {
	e.setState(StateConfirming)

	for _, candidate := range candidates {
		title := naming.StripProblemUnicode(candidate.Result.DisplayName(candidate.Type))
		date := candidate.Result.Date(candidate.Type)

		switch e.prompt.ConfirmCandidate(item.Path, title, date, candidate.Type) {
		case AnswerNo:
			continue
		case AnswerSkip:
			return nil
		case AnswerYes:
			year, _ := strconv.Atoi(yearOf(date))
			return &Identity{
				ID:         candidate.Result.ID,
				Name:       title,
				Year:       year,
				Type:       candidate.Type,
				Record:     candidate.Result,
				Candidates: candidates,
			}
		}
	}

	return nil
}

// manualEntry collects a title, a 4-digit year, and a media type from the
// user, re-prompting until each is valid. There is no iteration cap; the
// loops rely on the user eventually complying. A closed input stream
// returns an error instead of re-prompting forever.
func (e *Engine) manualEntry(item Item) (Item, error) {
	fmt.Printf("\nNo identity could be located for the following: %s\n", item.Path)
	fmt.Println("So the following information is required:")

	manual := item
	name, err := e.prompt.Ask("What is the title of the media? ")
	if err != nil {
		return Item{}, err
	}
	manual.Name = name

	for {
		answer, err := e.prompt.Ask("What is the year of release? ")
		if err != nil {
			return Item{}, err
		}
		if manualYearFormat.MatchString(answer) {
			manual.Year, _ = strconv.Atoi(answer)
			break
		}
		fmt.Println("Year should be a 4-digit number.")
	}

	for {
		answer, err := e.prompt.Ask("What type of media is it (tv/movie)? ")
		if err != nil {
			return Item{}, err
		}
		answer = strings.ToLower(answer)
		if supportedMediaTypes[answer] {
			manual.Type = answer
			break
		}
		fmt.Println("Type should be one of movie/tv.")
	}

	return manual, nil
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
