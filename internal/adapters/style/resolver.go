// Package style resolves the project formatting configuration that applies to generated files.
//
// The resolver understands the prettier configuration files most front-end projects
// already carry (.prettierrc in JSON or YAML form, or a "prettier" key in package.json),
// so generated artifacts are printed the way the project's own formatter would print them.
package style

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.StyleResolver = (*Resolver)(nil)

// configFiles are searched in order in every directory from the output upwards.
var configFiles = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
}

const packageJSON = "package.json"

// Resolver implements ports.StyleResolver.
type Resolver struct {
	readFile func(path string) ([]byte, error)
}

// NewResolver creates a new Resolver reading from the local file system.
func NewResolver() *Resolver {
	return &Resolver{readFile: os.ReadFile}
}

// Resolve walks up from the directory of path and returns the first style configuration found.
func (r *Resolver) Resolve(path string) (*domain.Style, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", path)
	}

	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		style, found, err := r.resolveIn(dir, abs)
		if err != nil || found {
			return style, err
		}
		if parent := filepath.Dir(dir); parent == dir {
			return nil, nil
		}
	}
}

func (r *Resolver) resolveIn(dir, target string) (*domain.Style, bool, error) {
	for _, name := range configFiles {
		configPath := filepath.Join(dir, name)
		data, err := r.readFile(configPath)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", configPath)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", configPath)
		}
		style, err := cfg.resolve(dir, target, configPath)
		return style, true, err
	}

	return r.resolvePackageJSON(dir, target)
}

func (r *Resolver) resolvePackageJSON(dir, target string) (*domain.Style, bool, error) {
	configPath := filepath.Join(dir, packageJSON)
	data, err := r.readFile(configPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", configPath)
	}

	var pkg struct {
		Prettier yaml.Node `yaml:"prettier"`
	}
	if err := yaml.Unmarshal(data, &pkg); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", configPath)
	}

	switch pkg.Prettier.Kind {
	case 0:
		return nil, false, nil
	case yaml.MappingNode:
		var cfg Config
		if err := pkg.Prettier.Decode(&cfg); err != nil {
			return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStyleParseFailed.Error()), "path", configPath)
		}
		style, err := cfg.resolve(dir, target, configPath)
		return style, true, err
	default:
		// A shared config reference; its options are not resolvable here.
		style := domain.DefaultStyle()
		style.Source = configPath
		return &style, true, nil
	}
}

// Config is the subset of prettier options that affect generated artifacts.
type Config struct {
	Options   `yaml:",inline"`
	Overrides []Override `yaml:"overrides"`
}

// Options holds formatting options; nil fields keep the defaults.
type Options struct {
	PrintWidth     *int    `yaml:"printWidth"`
	TabWidth       *int    `yaml:"tabWidth"`
	UseTabs        *bool   `yaml:"useTabs"`
	Semi           *bool   `yaml:"semi"`
	SingleQuote    *bool   `yaml:"singleQuote"`
	BracketSpacing *bool   `yaml:"bracketSpacing"`
	TrailingComma  *string `yaml:"trailingComma"`
	EndOfLine      *string `yaml:"endOfLine"`
}

// Override applies Options to files matching Files and not ExcludeFiles.
type Override struct {
	Files        StringList `yaml:"files"`
	ExcludeFiles StringList `yaml:"excludeFiles"`
	Options      Options    `yaml:"options"`
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = StringList{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

func (c *Config) resolve(dir, target, source string) (*domain.Style, error) {
	style := domain.DefaultStyle()
	style.Source = source

	if err := c.Options.apply(&style); err != nil {
		return nil, zerr.With(err, "path", source)
	}

	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return &style, nil //nolint:nilerr // Overrides cannot match a file outside dir
	}
	rel = filepath.ToSlash(rel)

	for _, override := range c.Overrides {
		if !matchesAny(override.Files, rel) || matchesAny(override.ExcludeFiles, rel) {
			continue
		}
		if err := override.Options.apply(&style); err != nil {
			return nil, zerr.With(err, "path", source)
		}
	}

	return &style, nil
}

// matchesAny matches patterns the way prettier does: patterns without a slash match the base name.
func matchesAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		candidate := rel
		if !strings.Contains(pattern, "/") {
			candidate = base
		}
		if ok, _ := doublestar.Match(pattern, candidate); ok {
			return true
		}
	}
	return false
}

func (o *Options) apply(style *domain.Style) error {
	if o.PrintWidth != nil {
		style.PrintWidth = *o.PrintWidth
	}
	if o.TabWidth != nil {
		style.TabWidth = *o.TabWidth
	}
	if o.UseTabs != nil {
		style.UseTabs = *o.UseTabs
	}
	if o.Semi != nil {
		style.Semi = *o.Semi
	}
	if o.SingleQuote != nil {
		style.SingleQuote = *o.SingleQuote
	}
	if o.BracketSpacing != nil {
		style.BracketSpacing = *o.BracketSpacing
	}
	if o.TrailingComma != nil {
		switch tc := domain.TrailingComma(*o.TrailingComma); tc {
		case domain.TrailingCommaAll, domain.TrailingCommaES5, domain.TrailingCommaNone:
			style.TrailingComma = tc
		default:
			return zerr.With(domain.ErrStyleParseFailed, "trailingComma", *o.TrailingComma)
		}
	}
	if o.EndOfLine != nil {
		switch *o.EndOfLine {
		case "lf", "auto":
			style.EndOfLine = "\n"
		case "crlf":
			style.EndOfLine = "\r\n"
		default:
			return zerr.With(domain.ErrStyleParseFailed, "endOfLine", *o.EndOfLine)
		}
	}
	return nil
}
