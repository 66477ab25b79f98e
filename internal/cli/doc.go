// Package cli implements the tell command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the library packages for the actual work:
//
//   - Command definitions (cobra.Command instances)
//   - Configuration layering (file, environment, flags)
//   - Narration itself (in pkg/tell and pkg/format)
//
// # Command Structure
//
// The root command is "tell" with subcommands:
//
//	tell demo       - Show the full narration vocabulary
//	tell init       - Create .tell.yaml config
//	tell version    - Print version information
//	tell completion - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --level, --no-color, --plain, --ascii,
// --verbose) are defined on the root command and available to all
// subcommands. PersistentPreRunE resolves the effective configuration
// before any command runs: flag values override the config file, which
// overrides built-in defaults. TELL_* environment variables bind through
// viper in internal/config.
//
// The resolved configuration is applied to the package-level default
// logger, so every command narrates with the same settings.
package cli
