package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/config"
	"github.com/Nomadcxx/jellyname/internal/history"
	"github.com/Nomadcxx/jellyname/internal/identify"
	"github.com/Nomadcxx/jellyname/internal/logging"
	"github.com/Nomadcxx/jellyname/internal/paths"
	"github.com/Nomadcxx/jellyname/internal/renamer"
	"github.com/Nomadcxx/jellyname/internal/tmdb"
	"github.com/Nomadcxx/jellyname/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"

	directoryPath string
	folderPath    string
	itemPath      string
	nameOverride  string
	yearOverride  int
	typeOverride  string
	validateFlag  bool
	debugFlag     bool

	// Set once RunE starts; anything failing before this is a flag
	// parse problem.
	runStarted bool
)

// errPrerequisite marks failures that exit with code 3: a missing
// directory or an invalid flag combination.
var errPrerequisite = errors.New("invalid prerequisite")

func main() {
	if os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}

	if len(os.Args) <= 1 {
		fmt.Println("No arguments supplied")
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "jellyname",
		Short: "Identify and rename media files against TMDB",
		Long: `jellyname identifies movie and TV files against The Movie Database and
renames them into a standard library layout:

  Movie Name (Year)/Movie Name (Year) [1080p].mkv
  Show Name (Year)/Season 1 (Year) [1080p]/S01E01 - Episode Name.mkv

Identification is interactive: candidates are confirmed one at a time, and
anything the search can't place falls back to manual entry.`,
		RunE:          runRename,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&directoryPath, "directory", "d", "", "directory containing multiple media items; incompatible with --name/--year")
	rootCmd.Flags().StringVarP(&folderPath, "folder", "f", "", "a single folder holding one movie or show")
	rootCmd.Flags().StringVarP(&itemPath, "item", "i", "", "a single media file")
	rootCmd.Flags().StringVarP(&nameOverride, "name", "n", "", "name of the movie/show (derived from the filename when omitted)")
	rootCmd.Flags().IntVarP(&yearOverride, "year", "y", 0, "release year, used to narrow the search")
	rootCmd.Flags().StringVarP(&typeOverride, "type", "t", "", "media type: movie or tv")
	rootCmd.Flags().BoolVar(&validateFlag, "validate", false, "show what would happen without making changes")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "verbose debug output")

	rootCmd.MarkFlagsMutuallyExclusive("directory", "folder", "item")

	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		ui.ErrorMsg("%v", err)
		switch {
		case errors.Is(err, errPrerequisite):
			os.Exit(3)
		case !runStarted:
			os.Exit(2)
		default:
			os.Exit(1)
		}
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	runStarted = true

	if directoryPath == "" && folderPath == "" && itemPath == "" {
		return fmt.Errorf("%w: one of --directory, --folder or --item is required", errPrerequisite)
	}

	if typeOverride != "" && typeOverride != tmdb.MediaTypeMovie && typeOverride != tmdb.MediaTypeTV {
		return fmt.Errorf("%w: type must be movie or tv", errPrerequisite)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if debugFlag {
		cfg.Logging.Level = "debug"
		cfg.Logging.Console = true
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	// The credential is checked before any identification work begins;
	// a bad key fails the whole run here.
	if cfg.TMDB.APIKey == "" {
		return fmt.Errorf("no TMDB API key configured: set tmdb.api_key in the config file or the TMDB_API_KEY environment variable")
	}
	client := tmdb.NewClient(tmdb.Config{
		APIKey:   cfg.TMDB.APIKey,
		Language: cfg.TMDB.Language,
	})
	if err := client.Ping(); err != nil {
		if tmdb.IsUnauthorized(err) {
			return fmt.Errorf("TMDB rejected the configured API key: %w", err)
		}
		return fmt.Errorf("unable to reach TMDB: %w", err)
	}

	items, err := collectItems(cfg)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	validate := validateFlag || cfg.Options.Validate
	if validate {
		ui.InfoMsg("validate mode: no changes will be made")
	}

	// Pass 1: identify everything before anything moves.
	engine := identify.New(client, identify.NewConsolePrompter(), logger, debugFlag)
	identities := make([]*identify.Identity, len(items))
	for i, item := range items {
		ident, err := engine.Identify(item, nil)
		if err != nil {
			return err
		}
		identities[i] = ident
	}

	var recorder renamer.Recorder
	if historyPath, err := paths.HistoryPath(); err == nil {
		if hist, err := history.Open(historyPath); err == nil {
			defer hist.Close()
			recorder = hist
		} else {
			logger.Warn("main", "history database unavailable", logging.F("error", err))
		}
	}

	ren := renamer.New(client, renamer.Options{
		Validate:           validate,
		Debug:              debugFlag,
		Log:                logger,
		Recorder:           recorder,
		ExcludedExtensions: cfg.Options.ExcludedExtensions,
	})

	// Pass 2: apply the identities.
	var outcomes []renamer.Outcome
	for i, item := range items {
		ident := identities[i]
		if !ident.Resolved() {
			continue
		}

		switch ident.Type {
		case tmdb.MediaTypeTV:
			outcomes = append(outcomes, ren.Show(item.Path, ident.ID, ident.Name, ident.Year)...)
		case tmdb.MediaTypeMovie:
			outcomes = append(outcomes, ren.Movie(item.Path, ident.Name, ident.Year)...)
		}
	}

	printReport(renamer.Report{Outcomes: outcomes}, validate)
	return nil
}

// collectItems resolves the CLI selection into the batch of items to
// process. Directory mode takes one level of entries; single items must
// carry a supported media extension.
func collectItems(cfg *config.Config) ([]identify.Item, error) {
	supported := make(map[string]bool, len(cfg.Options.SupportedExtensions))
	for _, ext := range cfg.Options.SupportedExtensions {
		supported[strings.ToLower(ext)] = true
	}

	switch {
	case folderPath != "":
		path := standardizePath(folderPath)
		if !isDir(path) {
			return nil, fmt.Errorf("%w: %s doesn't exist", errPrerequisite, path)
		}
		return []identify.Item{{
			Path: path,
			Name: nameOverride,
			Year: yearOverride,
			Type: typeOverride,
		}}, nil

	case itemPath != "":
		path := standardizePath(itemPath)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s does not exist", errPrerequisite, path)
		}
		if !supported[strings.ToLower(extensionOf(path))] {
			ui.WarningMsg("%s is not a supported media extension", extensionOf(path))
			return nil, nil
		}
		return []identify.Item{{
			Path: path,
			Name: nameOverride,
			Year: yearOverride,
			Type: typeOverride,
		}}, nil

	default:
		path := standardizePath(directoryPath)
		if !isDir(path) {
			return nil, fmt.Errorf("%w: %s doesn't exist", errPrerequisite, path)
		}

		var conflicts []string
		if yearOverride > 0 {
			conflicts = append(conflicts, "year")
		}
		if nameOverride != "" {
			conflicts = append(conflicts, "name")
		}
		if len(conflicts) > 0 {
			return nil, fmt.Errorf("%w: cannot supply %s with the directory flag",
				errPrerequisite, strings.Join(conflicts, " and "))
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to list %s: %v", errPrerequisite, path, err)
		}

		var items []identify.Item
		for _, entry := range entries {
			entryPath := filepath.Join(path, entry.Name())
			if entry.IsDir() {
				items = append(items, identify.Item{Path: entryPath, Type: typeOverride})
				continue
			}
			if supported[strings.ToLower(extensionOf(entry.Name()))] {
				items = append(items, identify.Item{Path: entryPath, Type: typeOverride})
			} else if debugFlag {
				fmt.Printf("%s is not a supported media extension\n", entry.Name())
			}
		}
		return items, nil
	}
}

// standardizePath normalizes slashes and strips trailing separators.
func standardizePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, "\\", string(os.PathSeparator))
	path = strings.ReplaceAll(path, "/", string(os.PathSeparator))
	for len(path) > 1 && strings.HasSuffix(path, string(os.PathSeparator)) {
		path = path[:len(path)-1]
	}
	return path
}

func extensionOf(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func printReport(report renamer.Report, validate bool) {
	failures := report.Failures()

	fmt.Println()
	if validate {
		ui.InfoMsg("%d move(s) planned (validate mode, nothing applied)", len(report.Outcomes))
	} else {
		ui.SuccessMsg("%d of %d move(s) applied", report.Applied(), len(report.Outcomes))
	}

	for _, failure := range failures {
		ui.ErrorMsg("%s: %v", ui.Path(failure.From), failure.Err)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			runStarted = true
			fmt.Printf("jellyname %s\n", version)
		},
	}
}
