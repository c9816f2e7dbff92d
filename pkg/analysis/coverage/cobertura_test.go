package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/agentkit-io/agentkit/pkg/shared/errors"
)

func writeTempReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCobertura(t *testing.T) {
	xml := `<?xml version="1.0"?>
<coverage line-rate="0.66">
  <packages>
    <package name="src">
      <classes>
        <class name="App" filename="src/app.py">
          <methods>
            <method name="main">
              <lines><line number="1" hits="2"/></lines>
            </method>
            <method name="unused">
              <lines><line number="8" hits="0"/></lines>
            </method>
          </methods>
          <lines>
            <line number="1" hits="2"/>
            <line number="2" hits="0"/>
            <line number="3" hits="1" branch="true" condition-coverage="50% (1/2)"/>
          </lines>
        </class>
      </classes>
    </package>
  </packages>
</coverage>
`
	report, err := ParseCobertura(writeTempReport(t, "coverage.xml", xml))
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	f := report.Files[0]
	assert.Equal(t, "src/app.py", f.Path)
	assert.Equal(t, 3, f.LinesFound)
	assert.Equal(t, 2, f.LinesHit)
	assert.Equal(t, []int{2}, f.UncoveredLines)
	assert.Equal(t, 2, f.BranchesFound)
	assert.Equal(t, 1, f.BranchesHit)
	assert.Equal(t, 2, f.FunctionsFound)
	assert.Equal(t, 1, f.FunctionsHit)
}

func TestParseCoberturaMergesClassesBySameFile(t *testing.T) {
	xml := `<?xml version="1.0"?>
<coverage>
  <packages>
    <package name="src">
      <classes>
        <class name="A" filename="src/shared.py">
          <lines><line number="1" hits="1"/><line number="2" hits="0"/></lines>
        </class>
        <class name="B" filename="src/shared.py">
          <lines><line number="2" hits="4"/><line number="3" hits="0"/></lines>
        </class>
      </classes>
    </package>
  </packages>
</coverage>
`
	report, err := ParseCobertura(writeTempReport(t, "coverage.xml", xml))
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	f := report.Files[0]
	assert.Equal(t, 3, f.LinesFound)
	// line 2 is hit by class B even though class A saw zero hits
	assert.Equal(t, 2, f.LinesHit)
	assert.Equal(t, []int{3}, f.UncoveredLines)
}

func TestParseCoberturaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not XML", "{}"},
		{"no packages", `<?xml version="1.0"?><coverage></coverage>`},
		{"missing filename", `<?xml version="1.0"?><coverage><packages><package><classes><class><lines/></class></classes></package></packages></coverage>`},
		{"bad condition coverage", `<?xml version="1.0"?><coverage><packages><package><classes><class filename="a.py"><lines><line number="1" hits="1" branch="true" condition-coverage="half"/></lines></class></classes></package></packages></coverage>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCobertura(writeTempReport(t, "bad.xml", tt.content))
			require.Error(t, err)

			var parseErr *sharederrors.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}
