// Package cli implements the wordfreq command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xhy51/wordfreq/internal/config"
	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/logger"
	"github.com/xhy51/wordfreq/internal/store"
)

var (
	version = "dev"

	cfgPath string
	verbose bool

	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wordfreq",
	Short: "Word frequency distributions for text and web pages",
	Long: `wordfreq splits text on whitespace, drops stopwords and single-character
tokens, counts what is left and prints the tokens by descending frequency.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.wordfreq/config.toml)")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	path := cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no home directory, using built-in config: %v", err)
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c
	logger.Debug("config loaded from %q", path)
	return nil
}

// loadStopwords returns the built-in list or reads the configured file. The
// --stopwords flag, when set, wins over the config file.
func loadStopwords(cmd *cobra.Command, path string, builtin bool) (freq.Stopwords, error) {
	if builtin {
		return freq.DefaultStopwords(), nil
	}
	path = flagOrConfig(cmd, "stopwords", path, cfg.Stopwords)
	logger.Debug("loading stopwords from %s", path)
	stop, err := freq.LoadStopwords(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d stopwords", len(stop))
	return stop, nil
}

// openStore opens the SQLite history at path, or an in-memory store when
// path is empty.
func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	logger.Debug("opening run history %s", path)
	return store.NewSQLite(path)
}

// flagOrConfig returns the flag value if it was set, the config value
// otherwise.
func flagOrConfig[T any](cmd *cobra.Command, name string, flagVal, cfgVal T) T {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}
