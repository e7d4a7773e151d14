package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fileslist/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/fileslist/internal/engine/generator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Options
	// NoCommand skips the configured build command after each rebuild.
	NoCommand bool
}

// Watch regenerates every selected artifact, then again after each debounced batch
// of file changes, until ctx is done. A failing rebuild is logged and the session continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	project, lifecycle, err := a.load(opts.Options)
	if err != nil {
		return err
	}
	defer lifecycle.WatchClose()

	w, err := a.watchers.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	session := &watchSession{
		app:       a,
		project:   project,
		lifecycle: lifecycle,
		noCommand: opts.NoCommand,
		filter:    newOutputFilter(lifecycle.Jobs()),
	}

	roots := watchRoots(lifecycle.Jobs())
	if err := w.Start(ctx, roots...); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	session.rebuild(ctx)
	a.logger.Info(fmt.Sprintf("watching %s for changes", strings.Join(roots, ", ")))

	return session.run(ctx, w)
}

type watchSession struct {
	app       *App
	project   *domain.Project
	lifecycle *generator.Lifecycle
	noCommand bool
	filter    outputFilter
}

func (s *watchSession) run(ctx context.Context, w ports.Watcher) error {
	g, gctx := errgroup.WithContext(ctx)

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(s.project.Debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-gctx.Done():
		}
	})
	defer debouncer.Stop()

	// Event Routine
	g.Go(func() error {
		for event := range w.Events() {
			if s.filter.ignored(event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
		if ctx.Err() != nil {
			return nil
		}
		return domain.ErrWatchStreamClosed
	})

	// Rebuild Routine
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-batches:
				s.app.logger.Info(fmt.Sprintf("%d files changed, regenerating", len(paths)))
				s.rebuild(gctx)
			}
		}
	})

	return g.Wait()
}

// rebuild runs one watch pass and the build command, logging failures.
func (s *watchSession) rebuild(ctx context.Context) {
	if _, err := s.lifecycle.WatchRun(ctx); err != nil {
		if ctx.Err() == nil {
			s.app.logger.Error(err)
		}
		return
	}
	if s.noCommand {
		return
	}
	if err := s.app.runCommand(ctx, s.project); err != nil && ctx.Err() == nil {
		s.app.logger.Error(err)
	}
}

// watchRoots returns the distinct base directories, dropping any nested in another.
func watchRoots(jobs []domain.Job) []string {
	dirs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		dirs = append(dirs, filepath.Clean(job.BaseDir))
	}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	roots := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		nested := slices.ContainsFunc(roots, func(root string) bool {
			return isWithin(root, dir)
		})
		if !nested {
			roots = append(roots, dir)
		}
	}
	return roots
}

func isWithin(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// outputFilter drops events caused by writing the artifacts themselves.
type outputFilter struct {
	outputs map[string]bool
	// staging maps an output directory to the temp-file prefixes staged in it.
	staging map[string][]string
}

func newOutputFilter(jobs []domain.Job) outputFilter {
	f := outputFilter{
		outputs: make(map[string]bool, len(jobs)),
		staging: make(map[string][]string, len(jobs)),
	}
	tempSuffix := strings.TrimSuffix(domain.TempFilePattern, "*")
	for _, job := range jobs {
		output := filepath.Clean(job.Output)
		f.outputs[output] = true
		dir := filepath.Dir(output)
		f.staging[dir] = append(f.staging[dir], filepath.Base(output)+tempSuffix)
	}
	return f
}

func (f outputFilter) ignored(path string) bool {
	path = filepath.Clean(path)
	if f.outputs[path] {
		return true
	}
	name := filepath.Base(path)
	for _, prefix := range f.staging[filepath.Dir(path)] {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
