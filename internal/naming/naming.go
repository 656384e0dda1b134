// Package naming provides filename sanitization and the string-processing
// rules used to derive searchable titles and destination names from media
// filenames.
package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Substitutions applied to filesystem-unsafe characters. Order matters for
// nothing except readability; every entry is applied exactly once.
var invalidCharacters = []struct {
	from string
	to   string
}{
	{"<", ""},
	{">", ""},
	{":", " -"},
	{"\"", ""},
	{"/", ""},
	{"\\", ""},
	{"|", ""},
	{"*", ""},
}

// Names Windows reserves for devices. A file can't be called CON even on a
// Linux box if the library is ever exported to a Windows share.
var reservedNames = map[string]bool{
	"AUX": true, "CON": true, "NUL": true, "PRN": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

var (
	dotRunQuestionRegex = regexp.MustCompile(`(\.+)\?`)
	seasonEpisodeRegex  = regexp.MustCompile(`[sS](\d{2})[eE](\d{2})`)
	resolutionRegex     = regexp.MustCompile(`(720p|1080p|2160p)`)
)

// Sanitize maps filesystem-unsafe characters in name to safe substitutes:
// '<' '>' '"' '/' '\' '|' '*' are removed, ':' becomes " -", and '?' is
// removed. A '?' directly after a run of dots is stripped before the
// generic pass so an ellipsis like "Dream On...?" keeps its dots intact.
// If the result is exactly a reserved device name a trailing dot is
// appended to keep it a legal filename. Never fails; may return "".
func Sanitize(name string) string {
	name = dotRunQuestionRegex.ReplaceAllString(name, "$1")
	name = strings.ReplaceAll(name, "?", "")

	for _, sub := range invalidCharacters {
		name = strings.ReplaceAll(name, sub.from, sub.to)
	}

	if reservedNames[name] {
		name += "."
	}

	return name
}

// Problem code points that some filesystems and terminals mangle. This is a
// narrower table than Sanitize: it is applied to prompt text and to full
// destination paths just before the actual rename.
var problemUnicode = []struct {
	from string
	to   string
}{
	{"–", "-"},  // en dash
	{"’", "'"},  // right single quote
	{"ù", "u"},  // ù
	{"ú", "u"},  // ú
	{"û", "u"},  // û
	{"ü", "u"},  // ü
}

// StripProblemUnicode replaces a fixed set of punctuation and accented
// code points with plain ASCII equivalents.
func StripProblemUnicode(text string) string {
	for _, sub := range problemUnicode {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}
	return text
}

// ExtractSeasonEpisode parses an SxxExx marker from name. Returns
// found=false when no marker is present.
func ExtractSeasonEpisode(name string) (season, episode int, found bool) {
	m := seasonEpisodeRegex.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	// Both groups are \d{2}, Atoi can't fail here.
	season, _ = strconv.Atoi(m[1])
	episode, _ = strconv.Atoi(m[2])
	return season, episode, true
}

// ExtractResolution returns the first 720p/1080p/2160p marker in name,
// or "" when none is present.
func ExtractResolution(name string) string {
	return resolutionRegex.FindString(name)
}

// ResolutionTag formats a resolution marker as a destination-name suffix,
// e.g. " [1080p]". Returns "" for an empty resolution.
func ResolutionTag(resolution string) string {
	if resolution == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", resolution)
}

// EpisodeCode renders season and episode numbers as an SxxExx marker.
// Numbers below 10 are zero padded to two digits; the scheme does not
// widen for 3-digit season or episode numbers.
func EpisodeCode(season, episode int) string {
	return fmt.Sprintf("S%sE%s", PadNumber(season), PadNumber(episode))
}

// PadNumber renders a number with a minimum width of two digits.
func PadNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}
