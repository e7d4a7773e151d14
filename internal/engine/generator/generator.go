// Package generator renders, signs and writes the file-list artifact of each job.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/fileslist/internal/core/signedsource"
	"go.trai.ch/zerr"
)

// Generator binds one job to the adapters it scans, formats and writes with.
// A Generator holds no state between runs.
type Generator struct {
	job     domain.Job
	scanner ports.FileScanner
	store   ports.ArtifactStore
	styles  ports.StyleResolver
	logger  ports.Logger
}

// Configure binds job to its adapters. It performs no I/O.
// A nil styles resolver disables formatting.
func Configure(
	job domain.Job,
	scanner ports.FileScanner,
	store ports.ArtifactStore,
	styles ports.StyleResolver,
	logger ports.Logger,
) *Generator {
	return &Generator{
		job:     job,
		scanner: scanner,
		store:   store,
		styles:  styles,
		logger:  logger,
	}
}

// Job returns the job the generator was configured with.
func (g *Generator) Job() domain.Job {
	return g.job
}

// Render scans the base directory and returns the signed artifact and the files it lists.
func (g *Generator) Render(ctx context.Context) ([]byte, domain.FileList, error) {
	files, err := g.scanner.Scan(ctx, g.job.BaseDir, g.job.Patterns, g.job.Ignores)
	if err != nil {
		return nil, nil, err
	}
	files = g.withoutOutput(files)

	content, err := g.render(files)
	if err != nil {
		return nil, nil, err
	}

	signed, err := signedsource.Sign(content)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrSignFailed.Error())
	}

	return []byte(signed), files, nil
}

// withoutOutput drops the job's own artifact and its staging files, so that an output
// inside the base directory never lists itself.
func (g *Generator) withoutOutput(files domain.FileList) domain.FileList {
	rel, err := filepath.Rel(g.job.BaseDir, g.job.Output)
	if err != nil {
		return files
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return files
	}

	dir := path.Dir(rel)
	staging := path.Base(rel) + strings.TrimSuffix(domain.TempFilePattern, "*")
	return slices.DeleteFunc(files, func(p string) bool {
		return p == rel || (path.Dir(p) == dir && strings.HasPrefix(path.Base(p), staging))
	})
}

// render produces the unsigned module, formatted when a style applies.
func (g *Generator) render(files domain.FileList) (string, error) {
	tmpl := templateFor(&g.job)

	if style := g.resolveStyle(); style != nil {
		content, err := renderStyled(tmpl, files, style)
		if err == nil {
			return content, nil
		}
		g.logger.Warn(fmt.Sprintf("formatting %s failed, writing it unformatted: %v", g.job.Name, err))
	}

	return renderRaw(tmpl, files)
}

func (g *Generator) resolveStyle() *domain.Style {
	if !g.job.Format || g.styles == nil {
		return nil
	}

	style, err := g.styles.Resolve(g.job.Output)
	if err != nil {
		g.logger.Warn(fmt.Sprintf("ignoring style configuration for %s: %v", g.job.Name, err))
		return nil
	}
	return style
}

// Run regenerates the artifact and writes it only when its content changed.
func (g *Generator) Run(ctx context.Context) (domain.Result, error) {
	content, files, err := g.Render(ctx)
	if err != nil {
		return domain.Result{}, zerr.With(err, "job", g.job.Name)
	}

	result := domain.Result{
		Job:    g.job.Name,
		Output: g.job.Output,
		Files:  len(files),
	}
	result.Signature, _ = signedsource.Signature(string(content))

	// An unreadable artifact counts as changed.
	if current, readErr := g.store.Read(g.job.Output); readErr == nil && bytes.Equal(current, content) {
		return result, nil
	}

	if err := g.store.Write(g.job.Output, content); err != nil {
		return domain.Result{}, zerr.With(err, "job", g.job.Name)
	}

	result.Written = true
	g.logger.Info(fmt.Sprintf("wrote %s (%d files)", g.job.Name, len(files)))
	return result, nil
}

// Check classifies the on-disk artifact against a fresh rendering without writing.
func (g *Generator) Check(ctx context.Context) (domain.ArtifactStatus, error) {
	content, _, err := g.Render(ctx)
	if err != nil {
		return domain.StatusMissing, zerr.With(err, "job", g.job.Name)
	}

	current, err := g.store.Read(g.job.Output)
	if err != nil {
		return domain.StatusMissing, nil //nolint:nilerr // an unreadable artifact is reported as missing
	}

	if bytes.Equal(current, content) {
		return domain.StatusUpToDate, nil
	}

	// Unsigned or mis-signed content was edited by hand.
	if ok, verifyErr := signedsource.Verify(string(current)); verifyErr == nil && ok {
		return domain.StatusStale, nil
	}
	return domain.StatusTampered, nil
}
