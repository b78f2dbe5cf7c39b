package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inequality-analytics/internal/service/report"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportsCmd_ListsFullCatalogue(t *testing.T) {
	out, err := execute(t, "reports")
	require.NoError(t, err)

	for _, rep := range report.Catalog() {
		assert.Contains(t, out, rep.Slug)
	}
	assert.Equal(t, len(report.Catalog()), strings.Count(out, "\n"))
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ineq")
}

func TestReportCmd_UnknownSlug(t *testing.T) {
	_, err := execute(t, "--db", t.TempDir()+"/x.db", "report", "no_such_report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_report")
}
