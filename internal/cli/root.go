package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/tell/internal/config"
	"github.com/rileyhilliard/tell/pkg/tell"
)

// Global flags available to all subcommands
var (
	configFlag  string
	levelFlag   string
	noColorFlag bool
	plainFlag   bool
	asciiFlag   bool
	traceFlag   bool
)

// rootCmd is the base command for tell.
var rootCmd = &cobra.Command{
	Use:   "tell",
	Short: "Terminal narration logger",
	Long: `Tell narrates program execution to the terminal: leveled messages,
status verbs, nested task scopes, and live progress lines.

The CLI exercises the library. Use "tell demo" to see the full output
vocabulary, and "tell init" to write a .tell.yaml config for your project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyConfig(cmd)
	},
}

// applyConfig loads the config file (if any), applies it to the default
// logger, then layers flag overrides on top. Flags beat file beats defaults.
func applyConfig(cmd *cobra.Command) error {
	cfg := config.Default()

	path, err := config.Find(configFlag)
	if err != nil {
		return err
	}
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("level") {
		cfg.Level = levelFlag
	}
	if traceFlag {
		cfg.Level = "trace"
		cfg.Tracebacks = true
	}
	if noColorFlag {
		cfg.Color = "never"
	}
	if plainFlag {
		cfg.Color = "never"
		cfg.Live = false
	}
	if asciiFlag {
		cfg.Symbols = false
	}

	cfg.Apply(tell.Default())
	return nil
}

// Execute runs the root command and exits non-zero on failure. Errors are
// reported through the logger so they share the narration line format.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tell.Default().ErrorErr(err)
		os.Exit(1)
	}
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion script",
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return fmt.Errorf("unknown shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .tell.yaml, then XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "level", "", "minimum log level (trace|debug|info|warn|error|fatal)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "plain output: no color, no live updates")
	rootCmd.PersistentFlags().BoolVar(&asciiFlag, "ascii", false, "use ASCII symbols instead of unicode")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "verbose", "v", false, "trace-level output with tracebacks")

	rootCmd.AddCommand(completionCmd)
}
