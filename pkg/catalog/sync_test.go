package catalog_test

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/arc-language/devshell/pkg/catalog"
)

func writeBundle(t *testing.T, members map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	xzw, err := xz.NewWriter(&buf)
	require.NoError(t, err)

	tw := tar.NewWriter(xzw)
	for name, body := range members {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(body)),
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, xzw.Close())

	path := filepath.Join(t.TempDir(), "catalog.tar.xz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestImportBundle(t *testing.T) {
	bundle := writeBundle(t, map[string]string{
		"openssl/entry.toml": `version = "3.0.13"`,
		"gcc/entry.toml":     `version = "13.2"`,
	})

	root := filepath.Join(t.TempDir(), "catalog")
	require.NoError(t, catalog.ImportBundle(root, bundle))

	cat := catalog.New(root)

	entry, err := cat.Load("openssl")
	require.NoError(t, err)
	require.Equal(t, "3.0.13", entry.Version)

	names, err := cat.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"gcc", "openssl"}, names)
}

func TestImportBundleRejectsTraversal(t *testing.T) {
	bundle := writeBundle(t, map[string]string{
		"../evil/entry.toml": "version = \"1\"",
	})

	err := catalog.ImportBundle(filepath.Join(t.TempDir(), "catalog"), bundle)
	require.Error(t, err)
	require.Contains(t, err.Error(), "escapes catalog root")
}

func TestImportBundleMissingFile(t *testing.T) {
	err := catalog.ImportBundle(t.TempDir(), filepath.Join(t.TempDir(), "nope.tar.xz"))
	require.Error(t, err)
}
