// pkg/pcfile/parser.go
package pcfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse parses a pkg-config .pc file. Variable references (${var}) are
// expanded as they are encountered; referencing an undefined variable or
// defining a cycle is an error.
func Parse(r io.Reader) (*File, error) {
	file := &File{
		Variables: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Field lines use "Key: value", variable lines use "key=value".
		// The first of ':' or '=' decides which one this is.
		colon := strings.Index(line, ":")
		equals := strings.Index(line, "=")

		switch {
		case equals >= 0 && (colon < 0 || equals < colon):
			key := strings.TrimSpace(line[:equals])
			if key == "" {
				return nil, fmt.Errorf("line %d: empty variable name", lineNo)
			}
			value, err := expand(strings.TrimSpace(line[equals+1:]), file.Variables)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			file.Variables[key] = value

		case colon >= 0:
			key := strings.TrimSpace(line[:colon])
			value, err := expand(strings.TrimSpace(line[colon+1:]), file.Variables)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := file.setField(key, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("line %d: not a field or variable: %s", lineNo, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pc file: %w", err)
	}

	if file.Name == "" {
		return nil, fmt.Errorf("missing Name field")
	}

	return file, nil
}

// ParseFile parses a .pc file from disk
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

// Find locates and parses <name>.pc in the given directories, first match wins
func Find(dirs []string, name string) (*File, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, name+".pc")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return ParseFile(path)
	}
	return nil, fmt.Errorf("no %s.pc found in pkg-config directories", name)
}

func (f *File) setField(key, value string) error {
	switch key {
	case "Name":
		f.Name = value
	case "Description":
		f.Description = value
	case "Version":
		f.Version = value
	case "Cflags", "CFlags":
		f.Cflags = strings.Fields(value)
	case "Libs":
		f.Libs = strings.Fields(value)
	case "Libs.private", "Cflags.private", "Requires", "Requires.private", "Conflicts", "Provides", "URL":
		// Recognized but unused fields
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

// expand substitutes ${var} references using previously defined variables
func expand(s string, vars map[string]string) (string, error) {
	var out strings.Builder

	for {
		start := strings.Index(s, "${")
		if start < 0 {
			out.WriteString(s)
			return out.String(), nil
		}

		end := strings.Index(s[start:], "}")
		if end < 0 {
			return "", fmt.Errorf("unterminated variable reference in %q", s)
		}
		end += start

		out.WriteString(s[:start])

		name := s[start+2 : end]
		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("undefined variable ${%s}", name)
		}
		out.WriteString(value)

		s = s[end+1:]
	}
}
