// pkg/pcfile/types.go
package pcfile

// File represents a parsed pkg-config .pc file
type File struct {
	Name        string            // Name: field
	Description string            // Description: field
	Version     string            // Version: field
	Variables   map[string]string // var=value definitions, expanded
	Cflags      []string          // Cflags: field, split into flags
	Libs        []string          // Libs: field, split into flags
}

// Flags returns compile flags followed by link flags
func (f *File) Flags() []string {
	out := make([]string, 0, len(f.Cflags)+len(f.Libs))
	out = append(out, f.Cflags...)
	out = append(out, f.Libs...)
	return out
}
