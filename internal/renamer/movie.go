package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/naming"
)

// Movie restructures a movie item into "Name (Year)/Name (Year) [res].ext".
// A directory item has its folder renamed and every non-excluded file inside
// renamed to match; a single file gets a sibling folder created (if absent)
// and is moved in.
func (r *Renamer) Movie(item, movieName string, year int) []Outcome {
	movieName = naming.Sanitize(movieName)

	var outcomes []Outcome

	if isDir(item) {
		folder, folderName := r.renameBaseFolder(item, movieName, year, &outcomes)

		entries, err := os.ReadDir(folder)
		if err != nil {
			fmt.Printf("Unable to list %s:\n%v\n", folder, err)
			return outcomes
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			file := entry.Name()
			ext := extensionOf(file)
			if r.excluded[strings.ToLower(ext)] {
				continue
			}

			// Strip the extension so it isn't caught by the resolution scan
			fileName := strings.TrimSuffix(file, "."+ext)
			resolution := r.resolutionTag(fileName, folder)

			movieFileName := folderName + resolution + "." + ext
			fmt.Printf("Renaming %q to %q\n", file, movieFileName)
			outcomes = append(outcomes, r.move(filepath.Join(folder, file), filepath.Join(folder, movieFileName)))
		}

		return outcomes
	}

	baseFolder := filepath.Dir(item)
	originalName := filepath.Base(item)
	ext := extensionOf(originalName)
	resolution := r.resolutionTag(strings.TrimSuffix(originalName, "."+ext), "")

	folderName := fmt.Sprintf("%s (%d)", movieName, year)
	newName := folderName + resolution + "." + ext

	path := filepath.Join(baseFolder, folderName)
	if !pathExists(path) {
		r.makeDir(path)
	}

	to := filepath.Join(path, newName)
	fmt.Printf("Renaming %q to %q\n", item, to)
	outcomes = append(outcomes, r.move(item, to))

	return outcomes
}
