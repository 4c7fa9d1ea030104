package app

import (
	"github.com/corey/wordgrid/internal/adapters/ahocorasick"
	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
)

// engines resolves a configured engine name to a primary engine and an
// optional fallback used when the primary rejects the grid.
func engines(name string, workers int) (primary, fallback ports.Engine) {
	stride := grid.Searcher{Workers: workers}
	switch name {
	case EngineAutomaton:
		return ahocorasick.Engine{}, nil
	case EngineAuto:
		return ahocorasick.Engine{}, stride
	default:
		return stride, nil
	}
}
