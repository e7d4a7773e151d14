// Package config provides the configuration loader for fileslist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SupportedVersion is the only configuration schema version understood by the loader.
const SupportedVersion = "1"

var validExportNameRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, or discovers it from cwd when path is empty.
func (l *Loader) Load(cwd, path string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}

	var projectfile Projectfile
	if err := readAndUnmarshalYAML(configPath, &projectfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if projectfile.Version != "" && projectfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, reading it as version %s",
			projectfile.Version, configPath, SupportedVersion))
	}

	return buildProject(filepath.Dir(configPath), &projectfile)
}

func (l *Loader) findConfiguration(cwd, path string) (string, error) {
	if path != "" {
		return resolvePath(cwd, path), nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildProject(root string, projectfile *Projectfile) (*domain.Project, error) {
	if len(projectfile.Jobs) == 0 {
		return nil, domain.ErrNoJobsDefined
	}

	debounce, err := parseDebounce(projectfile.Watch.Debounce)
	if err != nil {
		return nil, err
	}

	generator := projectfile.Generator
	if generator == "" {
		generator = domain.DefaultGeneratorName
	}

	project := &domain.Project{
		Root:     filepath.Clean(root),
		Command:  projectfile.Command,
		Debounce: debounce,
		Jobs:     make([]domain.Job, 0, len(projectfile.Jobs)),
	}

	// Map iteration order is random, so jobs are processed in name order
	names := make([]string, 0, len(projectfile.Jobs))
	for name := range projectfile.Jobs {
		names = append(names, name)
	}
	slices.Sort(names)

	outputs := make(map[string]string, len(names))
	for _, name := range names {
		dto := projectfile.Jobs[name]
		job, err := buildJob(project.Root, name, &dto, generator)
		if err != nil {
			return nil, zerr.With(err, "job", name)
		}

		if other, ok := outputs[job.Output]; ok {
			err := zerr.With(domain.ErrDuplicateOutput, "output", job.Output)
			return nil, zerr.With(zerr.With(err, "job", name), "conflicts_with", other)
		}
		outputs[job.Output] = name

		project.Jobs = append(project.Jobs, job)
	}

	return project, nil
}

func buildJob(root, name string, dto *JobDTO, generator string) (domain.Job, error) {
	if strings.TrimSpace(dto.Output) == "" {
		return domain.Job{}, domain.ErrMissingOutput
	}

	patterns := dto.Patterns
	if dto.Pattern != "" {
		patterns = append([]string{dto.Pattern}, patterns...)
	}
	if len(patterns) == 0 {
		return domain.Job{}, domain.ErrMissingPattern
	}
	if err := validatePatterns(patterns); err != nil {
		return domain.Job{}, err
	}
	if err := validatePatterns(dto.Ignore); err != nil {
		return domain.Job{}, err
	}

	exportName := dto.Export
	if exportName == "" {
		exportName = domain.DefaultExportName
	}
	if !validExportNameRegex.MatchString(exportName) {
		return domain.Job{}, zerr.With(domain.ErrInvalidExportName, "export", exportName)
	}

	if dto.Generator != "" {
		generator = dto.Generator
	}

	description := strings.TrimSpace(dto.Description)
	if description == "" {
		description = domain.DefaultDescription
	}

	format := true
	if dto.Format != nil {
		format = *dto.Format
	}

	return domain.Job{
		Name:        name,
		BaseDir:     resolvePath(root, dto.Base),
		Patterns:    canonicalizeStrings(patterns),
		Ignores:     canonicalizeStrings(dto.Ignore),
		Output:      resolvePath(root, dto.Output),
		Generator:   generator,
		Description: description,
		ExportName:  exportName,
		Format:      format,
	}, nil
}

func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		normalized := filepath.ToSlash(pattern)
		if strings.TrimSpace(normalized) == "" || strings.HasPrefix(normalized, "/") ||
			!doublestar.ValidatePattern(normalized) {
			return zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
		}
	}
	return nil
}

func parseDebounce(value string) (time.Duration, error) {
	if value == "" {
		return domain.DefaultDebounce, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidDebounce.Error()), "debounce", value)
	}
	if d < 0 {
		return 0, zerr.With(domain.ErrInvalidDebounce, "debounce", value)
	}
	return d, nil
}

// resolvePath resolves a configured path against base.
// An empty path resolves to base; an absolute path is used as is.
func resolvePath(base, configured string) string {
	if configured == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
