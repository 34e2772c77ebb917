package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/changgoo/pub2tex/internal/config"
	"github.com/changgoo/pub2tex/internal/cv"
	"github.com/changgoo/pub2tex/internal/logging"
	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
	"github.com/changgoo/pub2tex/internal/storage"
)

// Title truncation length for human-readable listings
const TitleMaxLen = 60

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindFlag ties a flag to a settings key. A key bound twice panics at
// startup.
func bindFlag(flag *pflag.Flag, key string) {
	if err := settings.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

// mustLoadSettings resolves the run settings or exits.
func mustLoadSettings() config.Settings {
	if configErr != nil {
		exitWithError(ExitConfigError, "%v", configErr)
	}
	s, err := config.Load(settings)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return s
}

// newLogger builds the diagnostics logger for the settings.
func newLogger(s config.Settings) zerolog.Logger {
	return logging.New(logging.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
	})
}

// newFormatter builds the pipeline with the built-in rules.
func newFormatter(s config.Settings, log zerolog.Logger) *cv.Formatter {
	r, err := rules.Default()
	if err != nil {
		exitWithError(ExitError, "loading rules: %v", err)
	}
	return cv.New(r, log).WithMaxAuthors(s.MaxAuthors)
}

// mustReadPublications reads the records file or exits.
func mustReadPublications(s config.Settings) []reference.Publication {
	pubs, err := storage.ReadPublications(s.InputPath())
	if err != nil {
		if errors.Is(err, storage.ErrInputNotFound) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitDataError, "%v", err)
	}
	return pubs
}

// truncateString shortens s to maxLen runes with a trailing ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
