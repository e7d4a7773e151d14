// Package app implements the application layer for fileslist.
package app

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"

	"go.trai.ch/fileslist/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/fileslist/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.FileScanner
	store        ports.ArtifactStore
	styles       ports.StyleResolver
	executor     ports.CommandExecutor
	watchers     ports.WatcherFactory
	logger       ports.Logger
	workDir      string

	// statesMu guards states, the watch phase of each project root.
	statesMu sync.Mutex
	states   map[string]*generator.WatchState
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.FileScanner,
	store ports.ArtifactStore,
	styles ports.StyleResolver,
	executor ports.CommandExecutor,
	watchers ports.WatcherFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		store:        store,
		styles:       styles,
		executor:     executor,
		watchers:     watchers,
		logger:       log,
		states:       make(map[string]*generator.WatchState),
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Options selects the configuration file and the jobs a command acts on.
type Options struct {
	// ConfigPath is the configuration file; empty discovers fileslist.yaml.
	ConfigPath string
	// Jobs restricts the command to the named jobs; empty selects all.
	Jobs []string
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	Options
	// NoCommand skips the configured build command.
	NoCommand bool
}

// CheckResult reports the status of one job's artifact.
type CheckResult struct {
	Job    string
	Output string
	Status domain.ArtifactStatus
}

// SetLogFormat switches the logger between pretty and JSON output.
func (a *App) SetLogFormat(format string) error {
	f := logger.Format(format)
	if f != logger.FormatPretty && f != logger.FormatJSON {
		return zerr.With(domain.ErrInvalidLogFormat, "format", format)
	}
	if l, ok := a.logger.(interface{ SetFormat(logger.Format) }); ok {
		l.SetFormat(f)
	}
	return nil
}

// Generate runs a one-shot build: every selected artifact is regenerated, then the build command runs.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	project, lifecycle, err := a.load(opts.Options)
	if err != nil {
		return err
	}

	results, err := lifecycle.BeforeRun(ctx)
	if err != nil {
		return err
	}
	if results == nil && lifecycle.Phase() == domain.PhaseWatchActive {
		a.logger.Info("watch session is active, skipping generation")
	}
	a.reportUnchanged(results)

	if opts.NoCommand {
		return nil
	}
	return a.runCommand(ctx, project)
}

// Check compares every selected artifact with a fresh rendering without writing.
// It returns ErrArtifactOutOfDate if any artifact is missing, stale or tampered.
func (a *App) Check(ctx context.Context, opts Options) ([]CheckResult, error) {
	_, lifecycle, err := a.load(opts)
	if err != nil {
		return nil, err
	}

	statuses, err := lifecycle.Check(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]string, 0, len(statuses))
	for job := range statuses {
		jobs = append(jobs, job)
	}
	slices.Sort(jobs)

	outputs := make(map[string]string, len(jobs))
	for _, job := range lifecycle.Jobs() {
		outputs[job.Name] = job.Output
	}

	results := make([]CheckResult, 0, len(jobs))
	var outdated []string
	for _, job := range jobs {
		status := statuses[job]
		results = append(results, CheckResult{Job: job, Output: outputs[job], Status: status})
		if status != domain.StatusUpToDate {
			outdated = append(outdated, job)
		}
	}

	if len(outdated) > 0 {
		return results, errors.Join(domain.ErrArtifactOutOfDate, zerr.With(zerr.New("outdated jobs"), "jobs", outdated))
	}
	return results, nil
}

func (a *App) load(opts Options) (*domain.Project, *generator.Lifecycle, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}

	project, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	jobs, err := project.Select(opts.Jobs)
	if err != nil {
		return nil, nil, err
	}

	generators := make([]*generator.Generator, len(jobs))
	for i, job := range jobs {
		generators[i] = generator.Configure(job, a.scanner, a.store, a.styles, a.logger)
	}

	return project, generator.NewSharedLifecycle(a.watchState(project.Root), generators...), nil
}

// watchState returns the phase shared by every command run against the project at root.
func (a *App) watchState(root string) *generator.WatchState {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	state, ok := a.states[root]
	if !ok {
		state = generator.NewWatchState()
		a.states[root] = state
	}
	return state
}

func (a *App) reportUnchanged(results []domain.Result) {
	for _, result := range results {
		if result.Written {
			return
		}
	}
	if len(results) > 0 {
		a.logger.Info("nothing to regenerate, all artifacts are up to date")
	}
}

func (a *App) runCommand(ctx context.Context, project *domain.Project) error {
	if len(project.Command) == 0 {
		return nil
	}
	return a.executor.Execute(ctx, project.Command, project.Root)
}
