package coverage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/agentkit-io/agentkit/pkg/shared/errors"
)

func TestParseLCOVSingleFile(t *testing.T) {
	input := `TN:
SF:src/app.js
FN:1,main
FN:12,helper
FNDA:3,main
FNDA:0,helper
DA:1,1
DA:2,1
DA:3,0
DA:4,1
DA:5,0
DA:6,1
DA:7,1
DA:8,0
DA:9,1
DA:10,1
end_of_record
`
	report, err := parseLCOV(strings.NewReader(input), "test.info")
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	f := report.Files[0]
	assert.Equal(t, "src/app.js", f.Path)
	assert.Equal(t, 10, f.LinesFound)
	assert.Equal(t, 7, f.LinesHit)
	assert.Equal(t, []int{3, 5, 8}, f.UncoveredLines)
	assert.Equal(t, 2, f.FunctionsFound)
	assert.Equal(t, 1, f.FunctionsHit)
	assert.InDelta(t, 70.0, f.LineCoverage(), 0.001)

	assert.Equal(t, 10, report.LinesFound)
	assert.Equal(t, 7, report.LinesHit)
}

func TestParseLCOVBranches(t *testing.T) {
	input := `SF:src/branchy.c
DA:5,2
BRDA:5,0,0,2
BRDA:5,0,1,0
BRDA:9,1,0,-
end_of_record
`
	report, err := parseLCOV(strings.NewReader(input), "test.info")
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	f := report.Files[0]
	assert.Equal(t, 3, f.BranchesFound)
	assert.Equal(t, 1, f.BranchesHit)
}

func TestParseLCOVMultipleSections(t *testing.T) {
	input := `SF:a.go
DA:1,1
end_of_record
SF:b.go
DA:1,0
DA:2,1
end_of_record
`
	report, err := parseLCOV(strings.NewReader(input), "test.info")
	require.NoError(t, err)
	require.Len(t, report.Files, 2)
	assert.Equal(t, "a.go", report.Files[0].Path)
	assert.Equal(t, "b.go", report.Files[1].Path)
	assert.Equal(t, 3, report.LinesFound)
	assert.Equal(t, 2, report.LinesHit)
}

func TestParseLCOVDuplicateLineRecords(t *testing.T) {
	// a line declared twice counts once; any positive count marks it hit
	input := `SF:a.go
DA:1,0
DA:1,3
DA:2,0
end_of_record
`
	report, err := parseLCOV(strings.NewReader(input), "test.info")
	require.NoError(t, err)

	f := report.Files[0]
	assert.Equal(t, 2, f.LinesFound)
	assert.Equal(t, 1, f.LinesHit)
	assert.Equal(t, []int{2}, f.UncoveredLines)
}

func TestParseLCOVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing end_of_record", "SF:a.go\nDA:1,1\n"},
		{"record outside section", "DA:1,1\nend_of_record\n"},
		{"malformed DA", "SF:a.go\nDA:one,two\nend_of_record\n"},
		{"nested section", "SF:a.go\nSF:b.go\nend_of_record\n"},
		{"stray end_of_record", "end_of_record\n"},
		{"empty SF path", "SF:\nend_of_record\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLCOV(strings.NewReader(tt.input), "bad.info")
			require.Error(t, err)

			var parseErr *sharederrors.ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "bad.info", parseErr.File)
		})
	}
}

func TestParseLCOVMissingFile(t *testing.T) {
	_, err := ParseLCOV("/nonexistent/lcov.info")
	assert.Error(t, err)
}
