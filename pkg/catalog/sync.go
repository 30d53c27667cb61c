// pkg/catalog/sync.go
package catalog

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/ulikunitz/xz"
)

const (
	// DefaultRepoURL is the catalog metadata repository
	DefaultRepoURL = "https://github.com/arc-language/devshell-catalog"
	// DefaultRepoBranch is the branch synced from the catalog repository
	DefaultRepoBranch = "main"
)

// Sync clones the catalog repository and copies its entries/ directory into
// the catalog root. Only metadata is copied; packages themselves are never
// fetched.
func Sync(root, repoURL, branch string) error {
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	if branch == "" {
		branch = DefaultRepoBranch
	}

	tempDir, err := os.MkdirTemp("", "devshell-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	fmt.Printf("Updating catalog from %s...\n", repoURL)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           repoURL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	if err := copyDir(filepath.Join(tempDir, "entries"), root); err != nil {
		return fmt.Errorf("copying entries: %w", err)
	}

	fmt.Println("Catalog updated successfully.")
	return nil
}

// ImportBundle extracts a .tar.xz catalog bundle into the catalog root
func ImportBundle(root, bundlePath string) error {
	f, err := os.Open(bundlePath)
	if err != nil {
		return fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("reading xz stream: %w", err)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating catalog root: %w", err)
	}

	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading bundle: %w", err)
		}

		target, err := safeJoin(root, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
			}
			out, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("extracting %s: %w", hdr.Name, err)
			}
			out.Close()
		default:
			// Skip links and special files in metadata bundles
		}
	}

	return nil
}

// safeJoin joins a bundle member path under root, rejecting traversal
func safeJoin(root, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("bundle member escapes catalog root: %s", name)
	}
	return filepath.Join(root, cleaned), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
