package app

import "path/filepath"

// Paths holds the resolved filesystem paths for a working directory.
type Paths struct {
	DB         string // .wordgrid/wordgrid.db
	ConfigFile string // .wordgrid.yaml (next to .wordgrid/, not inside it)
}

// NewPaths constructs all resolved paths from a working directory.
func NewPaths(workDir string) *Paths {
	return &Paths{
		DB:         filepath.Join(workDir, ".wordgrid", "wordgrid.db"),
		ConfigFile: filepath.Join(workDir, ".wordgrid.yaml"),
	}
}
