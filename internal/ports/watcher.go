package ports

// Watcher monitors a fixed set of input files and reports changes.
// Editors often replace a file on save (write temp, rename over), so the
// adapter watches parent directories and filters by path. Only one Watch call
// should be active at a time.
type Watcher interface {
	// Watch starts monitoring paths. onChange is called with the absolute path
	// of a changed file, at most once per debounce interval per file. The
	// callback may be invoked from any goroutine. Returns an error if a parent
	// directory cannot be watched.
	Watch(paths []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
