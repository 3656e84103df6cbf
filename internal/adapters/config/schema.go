package config

// Weavefile represents the structure of the weave.yaml configuration file.
type Weavefile struct {
	Version   string   `yaml:"version"`
	Engine    []string `yaml:"engine"`
	CacheDir  string   `yaml:"cache_dir"`
	OutputDir string   `yaml:"output_dir"`
}
