package techstack

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(extra ...Rule) *Detector {
	return New(hclog.NewNullLogger(), extra...)
}

func TestDetectFromFilesPackageManagers(t *testing.T) {
	d := newTestDetector()

	stack := d.DetectFromFiles([]string{"package-lock.json"})

	assert.True(t, stack.Has(CategoryPackageManager, "npm"))
	assert.False(t, stack.Has(CategoryPackageManager, "yarn"))
	assert.False(t, stack.Has(CategoryPackageManager, "pnpm"))
}

func TestDetectFromFilesOrderIndependent(t *testing.T) {
	d := newTestDetector()

	paths := []string{
		"src/main.go",
		"go.mod",
		"yarn.lock",
		"Makefile",
		".github/workflows/ci.yml",
		"deploy/main.tf",
	}
	reversed := make([]string, len(paths))
	for i, p := range paths {
		reversed[len(paths)-1-i] = p
	}

	assert.Equal(t, d.DetectFromFiles(paths).ToMap(), d.DetectFromFiles(reversed).ToMap())
}

func TestDetectFromFilesNestedPaths(t *testing.T) {
	d := newTestDetector()

	stack := d.DetectFromFiles([]string{
		"backend/internal/server.go",
		"frontend/src/app.tsx",
		".github/workflows/release.yaml",
		"infra/network.tf",
	})

	assert.True(t, stack.Has(CategoryLanguage, "go"))
	assert.True(t, stack.Has(CategoryLanguage, "typescript"))
	assert.True(t, stack.Has(CategoryCICD, "github-actions"))
	assert.True(t, stack.Has(CategoryCloud, "terraform"))
}

func TestDetectFromFilesTestingConfigFiles(t *testing.T) {
	d := newTestDetector()

	// a framework's own config file proves it without reading any content
	stack := d.DetectFromFiles([]string{"jest.config.js", "pytest.ini", ".mocharc.yml", ".rspec"})

	assert.True(t, stack.Has(CategoryTesting, "jest"))
	assert.True(t, stack.Has(CategoryTesting, "pytest"))
	assert.True(t, stack.Has(CategoryTesting, "mocha"))
	assert.True(t, stack.Has(CategoryTesting, "rspec"))
}

func TestDetectFromFilesSkipsContentRules(t *testing.T) {
	d := newTestDetector()

	// package.json alone cannot prove a framework without its content
	stack := d.DetectFromFiles([]string{"package.json"})
	assert.Empty(t, stack.Technologies(CategoryFramework))
}

func TestToMapAllCategoriesPresent(t *testing.T) {
	stack := NewStack()
	stack.add(CategoryLanguage, "Go")
	stack.add(CategoryLanguage, "go")

	m := stack.ToMap()
	require.Len(t, m, len(Categories))
	for _, cat := range Categories {
		_, ok := m[string(cat)]
		assert.True(t, ok, "missing category %q", cat)
	}
	// lowercased and deduplicated
	assert.Equal(t, []string{"go"}, m["languages"])
	assert.Equal(t, []string{}, m["frameworks"])
}

func TestDetectWalksRepository(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "package.json", `{"dependencies": {"react": "^18.2.0"}, "devDependencies": {"jest": "^29.0.0"}}`)
	writeRepoFile(t, root, "package-lock.json", "{}")
	writeRepoFile(t, root, "src/index.jsx", "export default 1;\n")
	writeRepoFile(t, root, ".github/workflows/ci.yml", "on: push\n")

	d := newTestDetector()
	stack, err := d.Detect(context.Background(), root)
	require.NoError(t, err)

	assert.True(t, stack.Has(CategoryFramework, "react"))
	assert.True(t, stack.Has(CategoryTesting, "jest"))
	assert.True(t, stack.Has(CategoryPackageManager, "npm"))
	assert.True(t, stack.Has(CategoryLanguage, "javascript"))
	assert.True(t, stack.Has(CategoryCICD, "github-actions"))
	assert.False(t, stack.Has(CategoryFramework, "vue"))
}

func TestDetectSkipsBinaryManifest(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "package.json", "react\x00react")

	d := newTestDetector()
	stack, err := d.Detect(context.Background(), root)
	require.NoError(t, err)

	assert.False(t, stack.Has(CategoryFramework, "react"))
}

func TestDetectMissingRoot(t *testing.T) {
	d := newTestDetector()
	_, err := d.Detect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDetectCanceledContext(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "go.mod", "module example.com/x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newTestDetector()
	_, err := d.Detect(ctx, root)
	assert.Error(t, err)
}

func TestDetectWithCustomRule(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "BUILD.bazel", `go_library(name = "lib")`)

	d := newTestDetector(Rule{
		Name:     "bazel",
		Category: CategoryBuildTool,
		Globs:    []string{"BUILD.bazel", "WORKSPACE"},
	})
	stack, err := d.Detect(context.Background(), root)
	require.NoError(t, err)

	assert.True(t, stack.Has(CategoryBuildTool, "bazel"))
}

func writeRepoFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
