package platform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/devshell/pkg/platform"
)

func TestLibraryPathVar(t *testing.T) {
	cases := map[string]string{
		"linux":   "LD_LIBRARY_PATH",
		"darwin":  "DYLD_LIBRARY_PATH",
		"windows": "PATH",
	}

	for goos, want := range cases {
		got, err := platform.LibraryPathVar(goos)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := platform.LibraryPathVar("plan9")
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	p, err := platform.Detect()
	require.NoError(t, err)

	require.NotEmpty(t, p.OS)
	require.NotEmpty(t, p.Arch)
	require.NotEmpty(t, p.Shell)
	require.NotEmpty(t, p.LibraryPathVar)
	require.Contains(t, p.String(), p.OS)
}
