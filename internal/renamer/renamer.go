// Package renamer derives canonical destination paths for identified media
// items and applies the moves, with a validate mode that computes and
// prints every step without touching the filesystem.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/logging"
	"github.com/Nomadcxx/jellyname/internal/naming"
	"github.com/Nomadcxx/jellyname/internal/tmdb"
)

// Extensions that are never media files worth renaming.
var defaultExcludedExtensions = []string{"dat", "inf", "pdx", "txt"}

// SeasonFetcher is the slice of the catalog client the renamer consumes.
type SeasonFetcher interface {
	GetSeason(showID, seasonNumber int) (*tmdb.Season, error)
}

// Recorder persists rename outcomes; history.DB satisfies it. A nil
// Recorder disables persistence.
type Recorder interface {
	RecordOutcome(operation, from, to, status, reason string) error
}

// Options configures a Renamer.
type Options struct {
	Validate           bool
	Debug              bool
	Log                *logging.Logger
	Recorder           Recorder
	ExcludedExtensions []string
}

// Renamer plans and executes renames for resolved identities.
type Renamer struct {
	catalog  SeasonFetcher
	log      *logging.Logger
	recorder Recorder
	validate bool
	debug    bool
	excluded map[string]bool
}

// New creates a Renamer. catalog may be nil when only movies are renamed.
func New(catalog SeasonFetcher, opts Options) *Renamer {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	extensions := opts.ExcludedExtensions
	if len(extensions) == 0 {
		extensions = defaultExcludedExtensions
	}
	excluded := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		excluded[strings.ToLower(ext)] = true
	}

	return &Renamer{
		catalog:  catalog,
		log:      log,
		recorder: opts.Recorder,
		validate: opts.Validate,
		debug:    opts.Debug,
		excluded: excluded,
	}
}

// move is the rename primitive shared by the movie and show paths. The
// destination passes through problem-unicode substitution, and a move that
// fails for any reason is logged and reported in the outcome; it never
// aborts the batch.
func (r *Renamer) move(from, to string) Outcome {
	to = naming.StripProblemUnicode(to)
	outcome := Outcome{From: from, To: to}

	if !r.validate {
		if err := os.Rename(from, to); err != nil {
			outcome.Err = err
			fmt.Printf("Unable to rename %s:\n%v\n", from, err)
			r.log.Error("renamer", "rename failed", err,
				logging.F("from", from), logging.F("to", to))
		} else {
			outcome.Applied = true
		}
	}

	r.record(outcome)
	return outcome
}

func (r *Renamer) record(o Outcome) {
	if r.recorder == nil {
		return
	}

	status := "planned"
	reason := ""
	switch {
	case o.Failed():
		status = "failed"
		reason = o.Err.Error()
	case o.Applied:
		status = "applied"
	}

	if err := r.recorder.RecordOutcome("rename", o.From, o.To, status, reason); err != nil {
		// History is best effort; never fail a rename over it.
		r.log.Warn("renamer", "unable to record outcome", logging.F("error", err))
	}
}

// renameBaseFolder renames the item's root folder to "Name (Year)". The
// rename is skipped when the target already exists, but unless in validate
// mode the returned folder is the new path either way: subsequent steps
// operate there and fall back to the original path per file.
func (r *Renamer) renameBaseFolder(folder, name string, year int, outcomes *[]Outcome) (string, string) {
	folderName := fmt.Sprintf("%s (%d)", name, year)
	newPath := filepath.Join(filepath.Dir(folder), folderName)
	fmt.Printf("Renaming:\n%s\nto:\n%s\n", folder, newPath)

	if !pathExists(newPath) {
		*outcomes = append(*outcomes, r.move(folder, newPath))
	}

	if !r.validate {
		folder = newPath
	}
	return folder, folderName
}

// makeDir creates a directory unless in validate mode. Creation is
// idempotent on an already existing directory.
func (r *Renamer) makeDir(path string) {
	if r.validate {
		return
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		fmt.Printf("Unable to create %s:\n%v\n", path, err)
		r.log.Error("renamer", "mkdir failed", err, logging.F("path", path))
	}
}

// resolutionTag extracts a resolution marker from name, falling back to
// the name of the folder's parent directory, and formats it as a
// destination suffix like " [1080p]".
func (r *Renamer) resolutionTag(name, folder string) string {
	resolution := naming.ExtractResolution(name)
	if resolution == "" && folder != "" {
		resolution = naming.ExtractResolution(filepath.Base(filepath.Dir(folder)))
	}
	return naming.ResolutionTag(resolution)
}

// extensionOf returns the segment after the final dot, mirroring how the
// excluded-extension list is matched. A name without dots returns itself.
func extensionOf(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
