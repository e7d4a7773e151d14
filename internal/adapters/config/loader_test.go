package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fileslist/internal/adapters/config"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm)
	require.NoError(t, err)
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
generator: catalog
command: ["npm", "run", "build"]
watch:
  debounce: 250ms
jobs:
  stories:
    base: static/app
    patterns: ["**/*.stories.tsx", "**/*.stories.tsx"]
    ignore: ["**/__fixtures__/**"]
    output: static/app/stories/filelist.generated.ts
    description: Stories listed in the component catalog.
  icons:
    pattern: "icons/*.svg"
    output: gen/icons.ts
    export: IconFiles
    format: false
`)

	project, err := newLoader(t).Load(rootDir, "")
	require.NoError(t, err)

	assert.Equal(t, rootDir, project.Root)
	assert.Equal(t, []string{"npm", "run", "build"}, project.Command)
	assert.Equal(t, 250*time.Millisecond, project.Debounce)
	require.Len(t, project.Jobs, 2)

	icons := project.Jobs[0]
	assert.Equal(t, "icons", icons.Name, "jobs are sorted by name")
	assert.Equal(t, rootDir, icons.BaseDir)
	assert.Equal(t, []string{"icons/*.svg"}, icons.Patterns)
	assert.Equal(t, filepath.Join(rootDir, "gen", "icons.ts"), icons.Output)
	assert.Equal(t, "IconFiles", icons.ExportName)
	assert.Equal(t, domain.DefaultDescription, icons.Description)
	assert.False(t, icons.Format)

	stories := project.Jobs[1]
	assert.Equal(t, filepath.Join(rootDir, "static", "app"), stories.BaseDir)
	assert.Equal(t, []string{"**/*.stories.tsx"}, stories.Patterns, "patterns are deduplicated")
	assert.Equal(t, []string{"**/__fixtures__/**"}, stories.Ignores)
	assert.Equal(t, "catalog", stories.Generator)
	assert.Equal(t, domain.DefaultExportName, stories.ExportName)
	assert.Equal(t, "Stories listed in the component catalog.", stories.Description)
	assert.True(t, stories.Format, "format defaults to true")
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
jobs:
  all:
    pattern: "**/*.txt"
    output: list.ts
`)

	project, err := newLoader(t).Load(rootDir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDebounce, project.Debounce)
	assert.Empty(t, project.Command)
	require.Len(t, project.Jobs, 1)
	assert.Equal(t, domain.DefaultGeneratorName, project.Jobs[0].Generator)
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "2"
jobs:
  all:
    pattern: "*.txt"
    output: list.ts
`)

	_, err := config.NewLoader(mockLogger).Load(rootDir, "")
	require.NoError(t, err)
}

func TestLoader_Load_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no jobs",
			content: "version: \"1\"\n",
			wantErr: domain.ErrNoJobsDefined,
		},
		{
			name:    "missing output",
			content: "jobs:\n  a:\n    pattern: \"*.txt\"\n",
			wantErr: domain.ErrMissingOutput,
		},
		{
			name:    "missing pattern",
			content: "jobs:\n  a:\n    output: a.ts\n",
			wantErr: domain.ErrMissingPattern,
		},
		{
			name:    "malformed pattern",
			content: "jobs:\n  a:\n    pattern: \"[a-\"\n    output: a.ts\n",
			wantErr: domain.ErrInvalidPattern,
		},
		{
			name:    "absolute pattern",
			content: "jobs:\n  a:\n    pattern: \"/etc/*\"\n    output: a.ts\n",
			wantErr: domain.ErrInvalidPattern,
		},
		{
			name:    "malformed ignore",
			content: "jobs:\n  a:\n    pattern: \"*\"\n    ignore: [\"[\"]\n    output: a.ts\n",
			wantErr: domain.ErrInvalidPattern,
		},
		{
			name:    "invalid export",
			content: "jobs:\n  a:\n    pattern: \"*\"\n    output: a.ts\n    export: 1files\n",
			wantErr: domain.ErrInvalidExportName,
		},
		{
			name: "duplicate output",
			content: "jobs:\n  a:\n    pattern: \"*\"\n    output: gen/a.ts\n" +
				"  b:\n    pattern: \"*\"\n    output: ./gen/../gen/a.ts\n",
			wantErr: domain.ErrDuplicateOutput,
		},
		{
			name:    "invalid debounce",
			content: "watch:\n  debounce: soon\njobs:\n  a:\n    pattern: \"*\"\n    output: a.ts\n",
			wantErr: domain.ErrInvalidDebounce,
		},
		{
			name:    "negative debounce",
			content: "watch:\n  debounce: -1s\njobs:\n  a:\n    pattern: \"*\"\n    output: a.ts\n",
			wantErr: domain.ErrInvalidDebounce,
		},
		{
			name:    "malformed yaml",
			content: "jobs: [\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(rootDir, "")
			require.Error(t, err)
			// Use ErrorContains because zerr.With may not preserve errors.Is
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
