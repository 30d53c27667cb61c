package env_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/devshell/pkg/env"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func sharedExt() string {
	return env.GetSharedLibraryExtensions()[0]
}

func TestExistingDirsOnly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usr", "lib"), 0755))

	e := env.New(root)

	require.Equal(t, []string{filepath.Join(root, "bin")}, e.GetBinaryPaths())
	require.Equal(t, []string{filepath.Join(root, "usr", "lib")}, e.GetLibraryPaths())
	require.Empty(t, e.GetIncludePaths())
	require.Empty(t, e.GetPkgConfigPaths())
}

func TestFindLibrary(t *testing.T) {
	root := t.TempDir()
	libFile := filepath.Join(root, "lib", "libssl"+sharedExt())
	touch(t, libFile)

	e := env.New(root)

	lib := e.FindLibrary("ssl")
	require.NotNil(t, lib)
	require.Equal(t, "ssl", lib.Name)
	require.Equal(t, libFile, lib.Path)
	require.False(t, lib.IsStatic)

	require.True(t, e.HasLibrary("ssl"))
	require.Nil(t, e.FindLibrary("crypto"))
}

func TestFindVersionedLibrary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("versioned .so suffixes are a linux convention")
	}

	root := t.TempDir()
	touch(t, filepath.Join(root, "lib", "libssl.so.3"))

	lib := env.New(root).FindLibrary("ssl")
	require.NotNil(t, lib)
	require.Equal(t, filepath.Join(root, "lib", "libssl.so.3"), lib.Path)
}

func TestFindStaticLibrary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip(".a archives are not the windows convention")
	}

	root := t.TempDir()
	touch(t, filepath.Join(root, "lib", "libssl.a"))

	e := env.New(root)

	lib := e.FindLibrary("ssl")
	require.NotNil(t, lib)
	require.True(t, lib.IsStatic)

	require.Nil(t, e.FindSharedLibrary("ssl"))
}

func TestFlagsFor(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "lib", "libssl"+sharedExt()))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "include"), 0755))

	flags, err := env.New(root).FlagsFor("ssl")
	require.NoError(t, err)

	require.Equal(t, []string{"-I" + filepath.Join(root, "include")}, flags.IncludeFlags)
	require.Equal(t, []string{"-L" + filepath.Join(root, "lib")}, flags.LibraryFlags)
	require.Equal(t, []string{"-lssl"}, flags.LinkFlags)

	require.Equal(t,
		"-I"+filepath.Join(root, "include")+" -L"+filepath.Join(root, "lib")+" -lssl",
		flags.String())
}

func TestFlagsForMissingLibrary(t *testing.T) {
	_, err := env.New(t.TempDir()).FlagsFor("ssl")
	require.Error(t, err)
}
