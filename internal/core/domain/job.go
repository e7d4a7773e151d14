package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Job describes one generated artifact: where to scan, what to match and where to write.
// A Job is immutable once loaded.
type Job struct {
	Name        string
	BaseDir     string
	Patterns    []string
	Ignores     []string
	Output      string
	Generator   string
	Description string
	ExportName  string
	Format      bool
}

// FileList is an ordered sequence of slash-separated paths relative to a job's base directory.
type FileList []string

// Project is the loaded configuration: every job plus the optional consumer build step.
type Project struct {
	// Root is the directory containing the configuration file.
	Root     string
	Jobs     []Job
	Command  []string
	Debounce time.Duration
}

// DefaultDebounce is the watch debounce window used when the config does not set one.
const DefaultDebounce = 100 * time.Millisecond

// Select returns the jobs with the given names, or all jobs when names is empty.
func (p *Project) Select(names []string) ([]Job, error) {
	if len(names) == 0 {
		return p.Jobs, nil
	}

	byName := make(map[string]Job, len(p.Jobs))
	for _, job := range p.Jobs {
		byName[job.Name] = job
	}

	selected := make([]Job, 0, len(names))
	for _, name := range names {
		job, ok := byName[name]
		if !ok {
			return nil, zerr.With(ErrJobNotFound, "job", name)
		}
		selected = append(selected, job)
	}
	return selected, nil
}
