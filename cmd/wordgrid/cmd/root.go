package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/corey/wordgrid/internal/app"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	noDB       bool
	logLevel   string
	logFormat  string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "wordgrid",
	Short: "wordgrid: word search grid solver",
	Long: "Counts how often each word of a list occurs in a letter grid, along any of the\n" +
		"eight directions u,d,l,r,w,x,y,z (up, down, left, right, up-right, up-left,\n" +
		"down-right, down-left).",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and prints any error message to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		}
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default .wordgrid.yaml, or $WORDGRID_CONFIG)")
	pf.StringVar(&dbPath, "db", "", "Cache and history database (default .wordgrid/wordgrid.db)")
	pf.BoolVar(&noDB, "no-db", false, "Disable the cache and history database")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text, json")
	pf.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(directionsCmd)
	rootCmd.AddCommand(configCmd)
}

// workDir returns the working directory config and data are resolved against.
func workDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return dir, nil
}

// loadConfig layers defaults, the config file, the environment and the
// persistent flags. The returned path is the config file that was consulted.
func loadConfig(cmd *cobra.Command) (app.Config, string, error) {
	dir, err := workDir()
	if err != nil {
		return app.Config{}, "", err
	}
	cfg := app.DefaultConfig(dir)

	path, required := app.NewPaths(dir).ConfigFile, false
	if env := os.Getenv("WORDGRID_CONFIG"); env != "" {
		path, required = env, true
	}
	if configPath != "" {
		path, required = configPath, true
	}
	if err := app.LoadConfigFile(&cfg, path, required); err != nil {
		return cfg, path, usageError(err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, path, usageError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if noDB {
		cfg.DBPath = ""
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
	return cfg, path, nil
}

// newApp builds the App for a command. mutate applies command-specific flags.
func newApp(cmd *cobra.Command, mutate func(*app.Config)) (*app.App, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError(err)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	a, err := app.New(cfg, logger)
	if err != nil {
		if isDBLockError(err) {
			return nil, exitError{code: exitIO, err: errors.New(diagnoseDBLock(cfg.DBPath))}
		}
		return nil, err
	}
	a.Stdout = cmd.OutOrStdout()
	return a, nil
}

// requestFromArgs maps <words> <grid> [<output>] [directions] to a request.
func requestFromArgs(args []string, withOutput bool) app.Request {
	req := app.Request{WordsPath: args[0], GridPath: args[1]}
	rest := args[2:]
	if withOutput {
		req.OutputPath = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		req.Directions = rest[0]
		req.DirsGiven = true
	}
	return req
}
