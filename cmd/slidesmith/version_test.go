package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	out := buf.String()
	require.Contains(t, out, "slidesmith "+version)
	require.Contains(t, out, "commit: "+commit)
	require.Contains(t, out, "built: "+date)
}
