package domain

// Config is the resolved tool configuration for a build.
type Config struct {
	// Engine is the interpreter command line that evaluates snippet source
	// read from stdin (e.g. ["Rscript", "-"] or ["sh"]).
	Engine []string

	// CacheDir is the root directory of the document-scoped cache namespaces.
	CacheDir string

	// OutputDir is the directory rendered artifacts are written to.
	OutputDir string
}

// DefaultConfig returns the configuration used when no weave.yaml is present.
func DefaultConfig() *Config {
	return &Config{
		Engine:    []string{"sh"},
		CacheDir:  ".weave/cache",
		OutputDir: ".",
	}
}
