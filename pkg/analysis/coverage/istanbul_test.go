package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/agentkit-io/agentkit/pkg/shared/errors"
)

func TestParseIstanbul(t *testing.T) {
	jsonContent := `{
  "src/app.js": {
    "path": "src/app.js",
    "statementMap": {
      "0": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 20}},
      "1": {"start": {"line": 2, "column": 2}, "end": {"line": 2, "column": 15}},
      "2": {"start": {"line": 4, "column": 0}, "end": {"line": 4, "column": 9}}
    },
    "s": {"0": 5, "1": 0, "2": 2},
    "b": {"0": [1, 0]},
    "f": {"0": 3, "1": 0}
  }
}
`
	report, err := ParseIstanbul(writeTempReport(t, "coverage-final.json", jsonContent))
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	f := report.Files[0]
	assert.Equal(t, "src/app.js", f.Path)
	assert.Equal(t, 3, f.LinesFound)
	assert.Equal(t, 2, f.LinesHit)
	assert.Equal(t, []int{2}, f.UncoveredLines)
	assert.Equal(t, 2, f.BranchesFound)
	assert.Equal(t, 1, f.BranchesHit)
	assert.Equal(t, 2, f.FunctionsFound)
	assert.Equal(t, 1, f.FunctionsHit)
}

func TestParseIstanbulDeterministicFileOrder(t *testing.T) {
	jsonContent := `{
  "z/last.js": {"path": "z/last.js", "statementMap": {"0": {"start": {"line": 1}}}, "s": {"0": 1}, "b": {}, "f": {}},
  "a/first.js": {"path": "a/first.js", "statementMap": {"0": {"start": {"line": 1}}}, "s": {"0": 1}, "b": {}, "f": {}}
}
`
	report, err := ParseIstanbul(writeTempReport(t, "coverage-final.json", jsonContent))
	require.NoError(t, err)
	require.Len(t, report.Files, 2)
	assert.Equal(t, "a/first.js", report.Files[0].Path)
	assert.Equal(t, "z/last.js", report.Files[1].Path)
}

func TestParseIstanbulStatementsShareLine(t *testing.T) {
	// two statements on one line: the line is hit if either executed
	jsonContent := `{
  "a.js": {
    "path": "a.js",
    "statementMap": {"0": {"start": {"line": 3}}, "1": {"start": {"line": 3}}},
    "s": {"0": 0, "1": 7},
    "b": {},
    "f": {}
  }
}
`
	report, err := ParseIstanbul(writeTempReport(t, "coverage-final.json", jsonContent))
	require.NoError(t, err)

	f := report.Files[0]
	assert.Equal(t, 1, f.LinesFound)
	assert.Equal(t, 1, f.LinesHit)
	assert.Empty(t, f.UncoveredLines)
}

func TestParseIstanbulErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", "SF:a.go"},
		{"empty document", "{}"},
		{"statement without map entry", `{"a.js": {"path": "a.js", "statementMap": {}, "s": {"0": 1}, "b": {}, "f": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIstanbul(writeTempReport(t, "bad.json", tt.content))
			require.Error(t, err)

			var parseErr *sharederrors.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}
