package config

// Projectfile represents the structure of the fileslist.yaml configuration file.
type Projectfile struct {
	Version   string            `yaml:"version"`
	Generator string            `yaml:"generator"`
	Command   []string          `yaml:"command"`
	Watch     WatchDTO          `yaml:"watch"`
	Jobs      map[string]JobDTO `yaml:"jobs"`
}

// WatchDTO represents the watch mode settings.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}

// JobDTO represents a generation job definition in the configuration.
type JobDTO struct {
	Base        string   `yaml:"base"`
	Pattern     string   `yaml:"pattern"`
	Patterns    []string `yaml:"patterns"`
	Ignore      []string `yaml:"ignore"`
	Output      string   `yaml:"output"`
	Generator   string   `yaml:"generator"`
	Description string   `yaml:"description"`
	Export      string   `yaml:"export"`
	Format      *bool    `yaml:"format"`
}
