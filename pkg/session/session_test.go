package session_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/devshell/pkg/catalog"
	"github.com/arc-language/devshell/pkg/descriptor"
	"github.com/arc-language/devshell/pkg/session"
)

// newFixtureCatalog builds a catalog whose entries each have a bin/ and
// lib/ directory under their install root
func newFixtureCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	root := t.TempDir()

	for _, name := range names {
		install := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Join(install, "bin"), 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(install, "lib"), 0755))

		entry := fmt.Sprintf("name = %q\nbin = [\"bin\"]\nlib = [\"lib\"]\n", name)
		require.NoError(t, os.WriteFile(filepath.Join(install, catalog.EntryFile), []byte(entry), 0644))
	}

	return catalog.New(root)
}

func newTestEvaluator(t *testing.T, cat *catalog.Catalog) *session.Evaluator {
	t.Helper()

	cfg := session.DefaultConfig()
	cfg.BaseEnv = []string{"PATH=/usr/bin", "HOME=/home/dev", "GOFLAGS=-mod=vendor"}
	cfg.Stdout = io.Discard
	cfg.Stderr = io.Discard

	ev, err := session.NewEvaluator(cat, cfg)
	require.NoError(t, err)
	return ev
}

func TestEvaluate(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc", "make", "gofmt", "staticcheck", "openssl")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{
		Name:      "demo",
		Tools:     []string{"gcc", "make", "gofmt", "staticcheck"},
		Libraries: []string{"openssl"},
		Env:       map[string]string{"PKG_CONFIG_ALLOW_CROSS": "1"},
	}

	sess, err := ev.Evaluate(spec)
	require.NoError(t, err)

	// Every declared tool's bin directory ends up on PATH
	path := sess.Env["PATH"]
	for _, name := range spec.Tools {
		require.Contains(t, path, filepath.Join(cat.Root(), name, "bin"))
	}
	require.True(t, strings.HasSuffix(path, string(os.PathListSeparator)+"/usr/bin"),
		"caller PATH must be preserved at the end")

	// The library path variable points at the library's runtime directory
	require.Contains(t, sess.Env[sess.LibraryPathVar], filepath.Join(cat.Root(), "openssl", "lib"))

	// Declared variables are set, inherited ones survive
	require.Equal(t, "1", sess.Env["PKG_CONFIG_ALLOW_CROSS"])
	require.Equal(t, "/home/dev", sess.Env["HOME"])
}

func TestEvaluateMissingTool(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{Name: "demo", Tools: []string{"gcc", "cmake"}}

	sess, err := ev.Evaluate(spec)
	require.Nil(t, sess, "no session may be produced on resolution failure")
	require.True(t, errors.Is(err, session.ErrUnresolvedTool))
	require.Contains(t, err.Error(), "cmake")
}

func TestEvaluateMissingLibrary(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{Name: "demo", Libraries: []string{"zlib"}}

	sess, err := ev.Evaluate(spec)
	require.Nil(t, sess)
	require.True(t, errors.Is(err, session.ErrUnresolvedLibrary))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc", "openssl")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{
		Name:      "demo",
		Tools:     []string{"gcc"},
		Libraries: []string{"openssl"},
		Env:       map[string]string{"A": "1"},
	}

	first, err := ev.Evaluate(spec)
	require.NoError(t, err)
	second, err := ev.Evaluate(spec)
	require.NoError(t, err)

	// Two sessions, identical environments
	require.NotSame(t, first, second)
	require.Equal(t, first.Env, second.Env)
	require.Equal(t, first.Environ(), second.Environ())
}

func TestEvaluateUnsetEnv(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{
		Name:     "demo",
		Tools:    []string{"gcc"},
		UnsetEnv: []string{"GOFLAGS", "NEVER_SET"},
	}

	sess, err := ev.Evaluate(spec)
	require.NoError(t, err)

	_, ok := sess.Env["GOFLAGS"]
	require.False(t, ok, "unset_env must remove inherited variables")
}

func TestVerify(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc", "openssl")
	ev := newTestEvaluator(t, cat)

	spec := &descriptor.Spec{
		Name:      "demo",
		Tools:     []string{"gcc", "cmake"},
		Libraries: []string{"openssl", "zlib"},
	}

	require.Equal(t, []string{"cmake", "zlib"}, ev.Verify(spec))

	spec.Tools = []string{"gcc"}
	spec.Libraries = []string{"openssl"}
	require.Empty(t, ev.Verify(spec))
}

func TestEnvironSorted(t *testing.T) {
	sess := &session.Session{Env: map[string]string{"B": "2", "A": "1", "C": "3"}}
	require.Equal(t, []string{"A=1", "B=2", "C=3"}, sess.Environ())
}
