package app

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvUsername holds the GitHub login used by the git rules
	EnvUsername = "GITHUB_USERNAME"

	defaultTimeout = 30 * time.Second
)

// Config holds the application configuration
type Config struct {
	Username string        // GitHub login, may be empty
	Verbose  bool          // Enable debug logging
	Terminal bool          // Use terminal dialogs instead of zenity
	DryRun   bool          // Print the action instead of launching it
	Timeout  time.Duration // Bound for the repository lookup (0 = none)
	Query    string        // Query from positional args; empty means ask
}

// ParseConfig parses command-line flags and reads the environment
func ParseConfig(args []string, getenv func(string) string) (*Config, error) {
	flags := flag.NewFlagSet("qlaunch", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	config := &Config{}
	flags.BoolVar(&config.Verbose, "verbose", false, "Enable verbose output")
	flags.BoolVar(&config.Verbose, "v", false, "Enable verbose output (shorthand)")
	flags.BoolVar(&config.Terminal, "tui", false, "Use terminal dialogs instead of zenity")
	flags.BoolVar(&config.DryRun, "dry-run", false, "Print what would be opened without launching anything")
	flags.DurationVar(&config.Timeout, "timeout", defaultTimeout, "Timeout for the repository lookup (0 = no timeout)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Validate timeout
	if config.Timeout < 0 {
		return nil, errors.New("--timeout must be >= 0")
	}

	config.Query = strings.TrimSpace(strings.Join(flags.Args(), " "))
	config.Username = getenv(EnvUsername)

	return config, nil
}

// EnvFilePath returns the optional env file location inside the user config dir
func EnvFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qlaunch", "env"), nil
}

// LoadEnvFile loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
