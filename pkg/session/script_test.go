package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/devshell/pkg/descriptor"
	"github.com/arc-language/devshell/pkg/session"
)

func runInit(t *testing.T, lines []string) (*bytes.Buffer, error) {
	t.Helper()

	cat := newFixtureCatalog(t, "gcc")

	var out bytes.Buffer
	cfg := session.DefaultConfig()
	cfg.BaseEnv = []string{"PATH=/usr/bin"}
	cfg.Stdout = &out
	cfg.Stderr = &out

	ev, err := session.NewEvaluator(cat, cfg)
	require.NoError(t, err)

	sess, err := ev.Evaluate(&descriptor.Spec{Name: "demo", Init: lines})
	require.NoError(t, err)

	return &out, ev.RunInit(context.Background(), sess)
}

func TestRunInitInOrder(t *testing.T) {
	out, err := runInit(t, []string{
		`echo "Environment loaded."`,
		`echo "Toolchain ready."`,
	})
	require.NoError(t, err)
	require.Equal(t, "Environment loaded.\nToolchain ready.\n", out.String())
}

func TestRunInitStopsOnFailure(t *testing.T) {
	out, err := runInit(t, []string{
		"echo first",
		"exit 3",
		"echo never",
	})

	require.Error(t, err)
	require.True(t, errors.Is(err, session.ErrDiagnosticCommand))
	require.Contains(t, err.Error(), "exit status 3")

	require.Contains(t, out.String(), "first")
	require.NotContains(t, out.String(), "never", "lines after a failure must not run")
}

func TestRunInitSeesSessionEnv(t *testing.T) {
	cat := newFixtureCatalog(t, "gcc")

	var out bytes.Buffer
	cfg := session.DefaultConfig()
	cfg.BaseEnv = []string{"PATH=/usr/bin"}
	cfg.Stdout = &out
	cfg.Stderr = &out

	ev, err := session.NewEvaluator(cat, cfg)
	require.NoError(t, err)

	sess, err := ev.Evaluate(&descriptor.Spec{
		Name: "demo",
		Env:  map[string]string{"GREETING": "hello"},
		Init: []string{`echo "$GREETING"`},
	})
	require.NoError(t, err)

	require.NoError(t, ev.RunInit(context.Background(), sess))
	require.Equal(t, "hello\n", out.String())
}

func TestRunInitParseError(t *testing.T) {
	_, err := runInit(t, []string{"echo (("})
	require.Error(t, err)
	require.False(t, errors.Is(err, session.ErrDiagnosticCommand))
}

func TestRunInitEmptyScript(t *testing.T) {
	_, err := runInit(t, nil)
	require.NoError(t, err)
}
