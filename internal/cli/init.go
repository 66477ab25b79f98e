package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/tell/internal/config"
	"github.com/rileyhilliard/tell/internal/errors"
	"github.com/rileyhilliard/tell/pkg/tell"
)

var (
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new .tell.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .tell.yaml configuration",
	Long: `Initialize a tell configuration file in the current directory.

Guides you through the output settings with interactive prompts, or
writes defaults with --yes.

Examples:
  tell init
  tell init --yes
  tell init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(initForce, initNonInteractive)
	},
}

func initConfig(force, nonInteractive bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		if nonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	if !nonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Minimum log level").
					Description("Lines below this level are dropped").
					Options(
						huh.NewOption("info (default)", "info"),
						huh.NewOption("debug", "debug"),
						huh.NewOption("trace", "trace"),
						huh.NewOption("warn", "warn"),
						huh.NewOption("error", "error"),
					).
					Value(&cfg.Level),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color output").
					Description("auto detects a terminal; never is safe for logs and CI").
					Options(
						huh.NewOption("auto (default)", "auto"),
						huh.NewOption("always", "always"),
						huh.NewOption("never", "never"),
					).
					Value(&cfg.Color),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Live progress updates?").
					Description("Repaint progress in place when the output is a terminal").
					Value(&cfg.Live),
				huh.NewConfirm().
					Title("Unicode symbols?").
					Description("Falls back to ASCII markers when disabled").
					Value(&cfg.Symbols),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --yes for defaults")
		}
	}

	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	log := tell.Default()
	log.Success(fmt.Sprintf("Wrote %s", configPath))
	log.Step("Run [cyan]tell demo[/] to preview the output")
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVarP(&initNonInteractive, "yes", "y", false, "skip prompts, write defaults")

	rootCmd.AddCommand(initCmd)
}
