package main

import (
	"fmt"

	"github.com/Nomadcxx/jellyname/internal/config"
	"github.com/Nomadcxx/jellyname/internal/paths"
	"github.com/Nomadcxx/jellyname/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jellyname configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			runStarted = true

			if config.ConfigExists() && !force {
				configPath, _ := paths.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			configPath, _ := paths.ConfigPath()
			ui.SuccessMsg("wrote %s", configPath)
			ui.InfoMsg("set tmdb.api_key (or the TMDB_API_KEY environment variable) before running")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			runStarted = true

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			configPath, _ := paths.ConfigPath()
			fmt.Printf("# %s\n\n", configPath)

			// Don't echo the credential
			if cfg.TMDB.APIKey != "" {
				cfg.TMDB.APIKey = "********"
			}
			fmt.Print(cfg.ToTOML())
			return nil
		},
	}
}
