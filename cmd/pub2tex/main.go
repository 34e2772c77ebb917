// Package main provides the pub2tex CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/changgoo/pub2tex/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool

	// cfgFile overrides the global config file
	cfgFile string

	// configErr holds a failure from initConfig until a command needs settings
	configErr error
)

// settings resolves flags, PUB2TEX_* variables, the config file and defaults.
var settings = config.NewViper()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pub2tex",
	Short: "Turn ADS publication records into CV LaTeX fragments",
	Long: `pub2tex turns a fetched list of publication records into the LaTeX
fragments a CV document \input's: refereed papers split by authorship
role, preprints, and citation metrics.

Records are read from <data-dir>/pubs.json (a JSON array or JSONL file).
All commands output JSON by default for easy integration with scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	_ = godotenv.Load()
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	flags.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/pub2tex/config.yml)")
	flags.String("data-dir", config.DefaultDataDir, "Directory holding the records and the generated fragments")
	flags.String("input", config.DefaultInput, "Publication records file, relative to --data-dir")
	flags.String("log-level", config.DefaultLogLevel, "Diagnostics level (debug, info, warn, error, off)")
	flags.String("log-format", config.DefaultLogFormat, "Diagnostics format (console, json)")

	bindFlag(flags.Lookup("data-dir"), config.KeyDataDir)
	bindFlag(flags.Lookup("input"), config.KeyInput)
	bindFlag(flags.Lookup("log-level"), config.KeyLogLevel)
	bindFlag(flags.Lookup("log-format"), config.KeyLogFormat)

	rootCmd.Version = Version
}

// initConfig reads the config file. Errors surface when a command loads
// its settings.
func initConfig() {
	configErr = config.ReadConfigFile(settings, cfgFile)
}
