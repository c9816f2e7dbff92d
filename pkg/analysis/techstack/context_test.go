package techstack

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewContextKnownTechnologies(t *testing.T) {
	stack := NewStack()
	stack.add(CategoryLanguage, "go")
	stack.add(CategoryFramework, "react")
	stack.add(CategoryPackageManager, "npm")

	ctx := ReviewContext(stack)

	assert.Contains(t, ctx, "go")
	assert.Contains(t, ctx, "react")
	// npm has no guidelines and must be omitted, not mapped to nil
	assert.NotContains(t, ctx, "npm")
	assert.NotEmpty(t, ctx["go"])
}

func TestReviewContextEmptyStack(t *testing.T) {
	assert.Empty(t, ReviewContext(NewStack()))
}

func TestReviewFocusAreasSortedDeduplicated(t *testing.T) {
	stack := NewStack()
	stack.add(CategoryLanguage, "go")
	stack.add(CategoryLanguage, "python")
	stack.add(CategoryCICD, "github-actions")

	areas := ReviewFocusAreas(stack)

	assert.True(t, sort.StringsAreSorted(areas))
	seen := make(map[string]struct{}, len(areas))
	for _, a := range areas {
		_, dup := seen[a]
		assert.False(t, dup, "duplicate focus area %q", a)
		seen[a] = struct{}{}
	}
	assert.Contains(t, areas, "pin third-party actions to a commit SHA")
}
