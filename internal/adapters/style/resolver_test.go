package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fileslist/internal/adapters/style"
	"go.trai.ch/fileslist/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestResolver_NoConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	got, err := style.NewResolver().Resolve(filepath.Join(root, "out", "list.generated.ts"))
	require.NoError(t, err)

	// A config somewhere above the temp dir would make this flaky; only assert the source is not ours.
	if got != nil {
		assert.NotContains(t, got.Source, root)
	}
}

func TestResolver_JSON(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".prettierrc.json"), `{
  "printWidth": 100,
  "singleQuote": true,
  "semi": false,
  "trailingComma": "none",
  "tabWidth": 4
}`)

	got, err := style.NewResolver().Resolve(filepath.Join(root, "src", "deep", "list.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 100, got.PrintWidth)
	assert.Equal(t, 4, got.TabWidth)
	assert.True(t, got.SingleQuote)
	assert.False(t, got.Semi)
	assert.True(t, got.BracketSpacing, "unset options keep defaults")
	assert.Equal(t, domain.TrailingCommaNone, got.TrailingComma)
	assert.Equal(t, filepath.Join(root, ".prettierrc.json"), got.Source)
}

func TestResolver_YAMLWithOverrides(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".prettierrc"), `useTabs: true
endOfLine: crlf
overrides:
  - files: "*.generated.ts"
    options:
      printWidth: 120
  - files: ["legacy/**"]
    options:
      semi: false
`)

	resolver := style.NewResolver()

	got, err := resolver.Resolve(filepath.Join(root, "app", "list.generated.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.UseTabs)
	assert.Equal(t, "\r\n", got.EndOfLine)
	assert.Equal(t, 120, got.PrintWidth)
	assert.True(t, got.Semi)

	got, err = resolver.Resolve(filepath.Join(root, "legacy", "list.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 80, got.PrintWidth)
	assert.False(t, got.Semi)
}

func TestResolver_NearestWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".prettierrc.yaml"), "printWidth: 40\n")
	writeFile(t, filepath.Join(root, "pkg", ".prettierrc.yml"), "printWidth: 60\n")

	got, err := style.NewResolver().Resolve(filepath.Join(root, "pkg", "gen", "list.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 60, got.PrintWidth)
}

func TestResolver_PackageJSON(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "app", "prettier": {"singleQuote": true}}`)

	got, err := style.NewResolver().Resolve(filepath.Join(root, "list.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.SingleQuote)
	assert.Equal(t, filepath.Join(root, "package.json"), got.Source)
}

func TestResolver_PackageJSONWithoutPrettierIsSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".prettierrc"), "printWidth: 70\n")
	writeFile(t, filepath.Join(root, "app", "package.json"), `{"name": "app"}`)

	got, err := style.NewResolver().Resolve(filepath.Join(root, "app", "list.ts"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 70, got.PrintWidth)
}

func TestResolver_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "printWidth: [\n"},
		{name: "wrong type", content: "printWidth: wide\n"},
		{name: "unknown trailing comma", content: "trailingComma: sometimes\n"},
		{name: "unknown end of line", content: "endOfLine: cr\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeFile(t, filepath.Join(root, ".prettierrc"), tt.content)

			_, err := style.NewResolver().Resolve(filepath.Join(root, "list.ts"))
			require.Error(t, err)
		})
	}
}
