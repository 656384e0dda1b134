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

// Show restructures a TV item into
// "Show (Year)/Season N (Year) [res]/SxxExx - Episode Name.ext".
// Season metadata is fetched per season encountered; files without an
// SxxExx marker (extras, samples) are left alone, as are episodes the
// catalog does not know about.
func (r *Renamer) Show(item string, showID int, showName string, year int) []Outcome {
	showName = naming.Sanitize(showName)

	var (
		outcomes       []Outcome
		files          []string
		showFolder     string
		showFolderName string
		originalFolder string
	)

	if isDir(item) {
		// Direct files are renamed in place; one level of season folders
		// is flattened by joining "subdir/file".
		entries, err := os.ReadDir(item)
		if err != nil {
			fmt.Printf("Unable to list %s:\n%v\n", item, err)
			return outcomes
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, entry.Name())
				continue
			}
			subEntries, err := os.ReadDir(filepath.Join(item, entry.Name()))
			if err != nil {
				r.log.Warn("renamer", "unable to list season folder",
					logging.F("path", filepath.Join(item, entry.Name())), logging.F("error", err))
				continue
			}
			for _, sub := range subEntries {
				files = append(files, filepath.Join(entry.Name(), sub.Name()))
			}
		}

		originalFolder = item
		showFolder, showFolderName = r.renameBaseFolder(item, showName, year, &outcomes)
	} else {
		dir := filepath.Dir(item)
		fileName := filepath.Base(item)
		showFolderName = fmt.Sprintf("%s (%d)", showName, year)
		showFolder = filepath.Join(dir, showFolderName)

		if !isDir(showFolder) {
			r.makeDir(showFolder)
		}
		outcomes = append(outcomes, r.move(item, filepath.Join(showFolder, fileName)))

		originalFolder = showFolder
		files = []string{fileName}
	}

	for _, file := range files {
		ext := extensionOf(file)
		if r.excluded[strings.ToLower(ext)] {
			continue
		}

		// Strip the extension so its digits can't be mistaken for markers
		fileName := strings.TrimSuffix(file, "."+ext)

		season, episode, found := naming.ExtractSeasonEpisode(fileName)
		if !found {
			// Only rename files whose season and episode we know
			continue
		}

		resolution := naming.ResolutionTag(naming.ExtractResolution(fileName))

		seasonInfo, err := r.catalog.GetSeason(showID, season)
		if err != nil {
			if tmdb.IsNotFound(err) {
				fmt.Printf("Requested season %d for id %d was not found:\n%v\n", season, showID, err)
			} else {
				fmt.Printf("Unable to fetch season %d for id %d:\n%v\n", season, showID, err)
			}
			r.log.Warn("renamer", "season lookup failed",
				logging.F("show_id", showID), logging.F("season", season), logging.F("error", err))
			continue
		}

		// The catalog may not have indexed the episode yet
		if len(seasonInfo.Episodes) < episode {
			fmt.Printf("Episode %s doesn't appear to exist, so skipping.\n", naming.EpisodeCode(season, episode))
			continue
		}

		episodeName := naming.Sanitize(seasonInfo.Episodes[episode-1].Name)
		seasonName := "Specials"
		if season != 0 {
			seasonName = fmt.Sprintf("Season %d", season)
		}
		seasonName = naming.Sanitize(seasonName)

		seasonFolderName := fmt.Sprintf("%s (%s)%s", seasonName, seasonInfo.AirYear(), resolution)
		newFilename := fmt.Sprintf("%s - %s.%s", naming.EpisodeCode(season, episode), episodeName, ext)

		seasonFolder := filepath.Join(showFolder, seasonFolderName)
		if !isDir(seasonFolder) {
			fmt.Printf("Creating %s\n", seasonFolder)
			r.makeDir(seasonFolder)
		}

		// The base-folder rename may not have happened (validate mode or a
		// pre-existing target), so fall back to the original folder.
		from := filepath.Join(showFolder, file)
		if !pathExists(from) {
			from = filepath.Join(originalFolder, file)
		}
		outcomes = append(outcomes, r.move(from, filepath.Join(seasonFolder, newFilename)))

		if r.debug {
			fmt.Println(showFolderName, seasonFolderName, newFilename)
		}
	}

	return outcomes
}
