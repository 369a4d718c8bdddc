package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	ov, od, oc := BuildVersion, BuildDate, BuildCommit
	t.Cleanup(func() { BuildVersion, BuildDate, BuildCommit = ov, od, oc })

	var buf bytes.Buffer
	BuildVersion, BuildDate, BuildCommit = "", "", ""
	Print(&buf)
	require.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())

	buf.Reset()
	BuildVersion, BuildDate, BuildCommit = "v1", "2025-09-06", "deadbeef"
	Print(&buf)
	require.Equal(t, "Build version: v1\nBuild date: 2025-09-06\nBuild commit: deadbeef\n", buf.String())
}
