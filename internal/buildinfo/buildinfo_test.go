package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	old := [3]string{Version, Date, Commit}
	t.Cleanup(func() { Version, Date, Commit = old[0], old[1], old[2] })
	Version, Date, Commit = "v1.2.3", "2024-05-01", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2024-05-01\nBuild commit: abc123\n", buf.String())
}
