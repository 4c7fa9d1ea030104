// Package app wires together adapters and the matching core.
// It owns the search use case: validate the request, load inputs, consult the
// result cache, run an engine, write the output, and record the run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/corey/wordgrid/internal/adapters/ahocorasick"
	"github.com/corey/wordgrid/internal/adapters/bbolt"
	"github.com/corey/wordgrid/internal/adapters/textfile"
	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
)

// Request validation errors. Their messages are shown to the user verbatim.
var (
	ErrWordFileNotFound = errors.New("The word file does not exist")
	ErrGridFileNotFound = errors.New("The matrix file does not exist")
	ErrInvalidDirection = errors.New("The direction string is invalid")
)

// StdoutPath as an output path writes results to App.Stdout.
const StdoutPath = "-"

// Request describes one search.
type Request struct {
	WordsPath  string
	GridPath   string
	OutputPath string // "" skips writing; "-" writes to App.Stdout
	Directions string // direction codes; "" selects Config.Directions
	DirsGiven  bool   // Directions was supplied explicitly, even if empty
}

// Report is the outcome of one search.
type Report struct {
	Run     *ports.Run
	Results []grid.Result
}

// App is the top-level container wiring all components together.
type App struct {
	Config Config
	Logger *slog.Logger
	Store  ports.Store // nil when persistence is disabled
	Stdout io.Writer

	engine   ports.Engine
	fallback ports.Engine
	now      func() time.Time
}

// New builds an App from a validated config. When cfg.DBPath is set, the
// bbolt store is opened and must be released with Close.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	}
	a := &App{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		now:    time.Now,
	}
	a.engine, a.fallback = engines(cfg.Engine, cfg.Workers)

	if cfg.DBPath != "" {
		store, err := bbolt.NewStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		a.Store = store
	}
	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	if c, ok := a.Store.(io.Closer); ok && c != nil {
		return c.Close()
	}
	return nil
}

// Validate checks a request in the order the CLI reports problems: word file,
// grid file, direction string. It returns the parsed direction set.
func (a *App) Validate(req Request) (grid.DirectionSet, error) {
	if !isFile(req.WordsPath) {
		return 0, ErrWordFileNotFound
	}
	if !isFile(req.GridPath) {
		return 0, ErrGridFileNotFound
	}
	codes := req.Directions
	if !req.DirsGiven && codes == "" {
		codes = a.Config.Directions
	}
	dirs, err := grid.ParseDirections(codes)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDirection, err)
	}
	return dirs, nil
}

// Search runs one request end to end.
func (a *App) Search(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := a.now()

	dirs, err := a.Validate(req)
	if err != nil {
		return nil, err
	}
	words, g, err := loadInputs(req)
	if err != nil {
		return nil, err
	}

	run := &ports.Run{
		StartedAt:  started.UTC(),
		WordsPath:  req.WordsPath,
		GridPath:   req.GridPath,
		Directions: dirs.String(),
		IgnoreCase: a.Config.IgnoreCase,
		WordCount:  len(words),
		Rows:       g.Rows(),
		Cols:       g.Cols(),
	}
	run.Fingerprint = Fingerprint(words, g, dirs, a.Config.IgnoreCase)

	log := a.Logger.With("words", req.WordsPath, "grid", req.GridPath, "dirs", run.Directions)
	log.Debug("search start", "word_count", len(words), "rows", g.Rows(), "cols", g.Cols())

	results, cached := a.loadCached(run.Fingerprint, log)
	if cached {
		run.Engine = "cache"
		run.Cached = true
	} else {
		results, run.Engine, err = a.runEngine(words, g, dirs, log)
		if err != nil {
			return nil, err
		}
		a.saveCached(run.Fingerprint, results, log)
	}
	run.Results = results

	if err := a.writeOutput(req.OutputPath, results); err != nil {
		return nil, err
	}

	run.Elapsed = a.now().Sub(started)
	if a.Store != nil {
		if err := a.Store.SaveRun(run); err != nil {
			log.Warn("record run failed", "err", err)
		}
	}
	log.Info("search done", "engine", run.Engine, "results", len(results),
		"occurrences", run.Occurrences(), "elapsed", run.Elapsed)

	return &Report{Run: run, Results: results}, nil
}

// Locate returns every occurrence for a request. It never touches the cache
// or history.
func (a *App) Locate(ctx context.Context, req Request) ([]grid.Occurrence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dirs, err := a.Validate(req)
	if err != nil {
		return nil, err
	}
	words, g, err := loadInputs(req)
	if err != nil {
		return nil, err
	}
	if !a.Config.IgnoreCase {
		return grid.Locate(words, g, dirs)
	}

	// Words that fold alike ("cat", "CAT") each keep their own spelling.
	folded, fg := foldInputs(words, g)
	groups, err := grid.LocateEach(folded, fg, dirs)
	if err != nil {
		return nil, err
	}
	var occ []grid.Occurrence
	for i, group := range groups {
		for _, o := range group {
			o.Word = words[i]
			occ = append(occ, o)
		}
	}
	return occ, nil
}

// Runs lists recorded runs, newest first.
func (a *App) Runs(limit int) ([]*ports.Run, error) {
	if a.Store == nil {
		return nil, errors.New("history is disabled (no db_path)")
	}
	return a.Store.ListRuns(limit)
}

// Run loads one recorded run. Returns nil, nil when it does not exist.
func (a *App) Run(id string) (*ports.Run, error) {
	if a.Store == nil {
		return nil, errors.New("history is disabled (no db_path)")
	}
	return a.Store.LoadRun(id)
}

// Wipe clears the cache and history.
func (a *App) Wipe() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Wipe()
}

func (a *App) runEngine(words []string, g *grid.Grid, dirs grid.DirectionSet, log *slog.Logger) ([]grid.Result, string, error) {
	searchWords, searchGrid := words, g
	if a.Config.IgnoreCase {
		searchWords, searchGrid = foldInputs(words, g)
	}

	engine := a.engine
	results, err := engine.Search(searchWords, searchGrid, dirs)
	if errors.Is(err, ahocorasick.ErrMultiRuneCell) && a.fallback != nil {
		log.Debug("engine fallback", "from", engine.Name(), "to", a.fallback.Name(), "reason", err)
		engine = a.fallback
		results, err = engine.Search(searchWords, searchGrid, dirs)
	}
	if err != nil {
		return nil, engine.Name(), fmt.Errorf("%s engine: %w", engine.Name(), err)
	}

	if a.Config.IgnoreCase {
		results = unfoldResults(words, searchWords, results)
	}
	return results, engine.Name(), nil
}

func (a *App) loadCached(fp string, log *slog.Logger) ([]grid.Result, bool) {
	if a.Store == nil || !a.Config.Cache {
		return nil, false
	}
	results, ok, err := a.Store.LoadCached(fp)
	if err != nil {
		log.Warn("cache read failed", "err", err)
		return nil, false
	}
	if ok {
		log.Debug("cache hit", "fingerprint", fp)
	}
	return results, ok
}

func (a *App) saveCached(fp string, results []grid.Result, log *slog.Logger) {
	if a.Store == nil || !a.Config.Cache {
		return
	}
	if err := a.Store.SaveCached(fp, results); err != nil {
		log.Warn("cache write failed", "err", err)
	}
}

func (a *App) writeOutput(path string, results []grid.Result) error {
	switch path {
	case "":
		return nil
	case StdoutPath:
		return textfile.WriteResults(a.Stdout, results)
	default:
		if err := textfile.WriteResultsFile(path, results); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}

func loadInputs(req Request) ([]string, *grid.Grid, error) {
	words, err := textfile.ReadWordsFile(req.WordsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read words: %w", err)
	}
	if err := grid.ValidateWords(words); err != nil {
		return nil, nil, err
	}
	g, err := textfile.ReadGridFile(req.GridPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read grid: %w", err)
	}
	return words, g, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
