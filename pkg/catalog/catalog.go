// pkg/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"zombiezen.com/go/nix"
)

// ErrNotFound indicates a name has no catalog entry
var ErrNotFound = errors.New("catalog entry not found")

// EntryFile is the per-name metadata file inside the catalog
const EntryFile = "entry.toml"

// Catalog maps names to locally resolvable tools and libraries. It is a
// directory of <name>/entry.toml files; nothing is installed or downloaded
// through it.
type Catalog struct {
	root   string
	logger *log.Logger
}

// New creates a Catalog rooted at dir
func New(dir string) *Catalog {
	return NewWithLogger(dir, nil)
}

// NewWithLogger creates a Catalog with a custom logger
func NewWithLogger(dir string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Catalog{
		root:   dir,
		logger: logger,
	}
}

// Root returns the catalog root directory
func (c *Catalog) Root() string {
	return c.root
}

// Load reads and validates the entry for a name
func (c *Catalog) Load(name string) (*Entry, error) {
	path := filepath.Join(c.root, name, EntryFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading entry for %q: %w", name, err)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("parsing entry for %q: %w", name, err)
	}

	if entry.Name == "" {
		entry.Name = name
	}
	if entry.Name != name {
		return nil, fmt.Errorf("entry for %q declares name %q", name, entry.Name)
	}

	if err := c.resolveRoot(&entry); err != nil {
		return nil, err
	}

	c.logger.Printf("catalog: resolved %q -> %s", name, entry.Root)
	return &entry, nil
}

// resolveRoot fills in and checks the entry's install root. Store-path
// backed entries are validated syntactically and used as the root.
func (c *Catalog) resolveRoot(entry *Entry) error {
	if entry.StorePath != "" {
		storePath, err := nix.ParseStorePath(entry.StorePath)
		if err != nil {
			return fmt.Errorf("entry for %q: invalid store path: %w", entry.Name, err)
		}
		if entry.Root == "" {
			entry.Root = string(storePath)
		}
	}

	if entry.Root == "" {
		entry.Root = filepath.Join(c.root, entry.Name)
	} else if !filepath.IsAbs(entry.Root) {
		entry.Root = filepath.Join(c.root, entry.Name, entry.Root)
	}

	return nil
}

// Has reports whether a name is resolvable
func (c *Catalog) Has(name string) bool {
	_, err := c.Load(name)
	return err == nil
}

// Names lists every name in the catalog, sorted
func (c *Catalog) Names() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(c.root, entry.Name(), EntryFile)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
