package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corey/wordgrid/internal/adapters/ahocorasick"
	"github.com/corey/wordgrid/internal/app"
	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK        = 0
	exitNoResults = 1 // only with --exit-status
	exitUsage     = 2
	exitIO        = 3
)

var errArgCount = errors.New("There is an incorrect amount of arguments")

// exitError carries a specific exit code. A nil err exits silently.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error { return e.err }

func usageError(err error) error { return exitError{code: exitUsage, err: err} }

// validationErrors are caller mistakes rather than I/O failures.
var validationErrors = []error{
	errArgCount,
	app.ErrWordFileNotFound,
	app.ErrGridFileNotFound,
	app.ErrInvalidDirection,
	grid.ErrUnknownDirection,
	grid.ErrRaggedGrid,
	grid.ErrEmptyWord,
	ahocorasick.ErrMultiRuneCell,
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return exitUsage
		}
	}
	// cobra reports unknown subcommands as plain errors.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return exitUsage
	}
	return exitIO
}

// argRange accepts between min and max positional arguments.
func argRange(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return errArgCount
		}
		return nil
	}
}

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseDBLock returns actionable guidance for a locked database. Only one
// process can hold the bbolt file, so a long-running watch is the usual cause.
func diagnoseDBLock(dbPath string) string {
	return fmt.Sprintf("database %s is locked by another process\n"+
		"  → a running 'wordgrid watch' holds it; stop it first\n"+
		"  → find the process:  ps aux | grep 'wordgrid'\n"+
		"  → or skip persistence for this run:  --no-db", dbPath)
}
