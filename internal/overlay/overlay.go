package overlay

import (
	"fmt"
	"strings"
)

// DefaultPath is where an overlay is unpacked when no destination is given.
const DefaultPath = "/"

// Overlay pairs a source archive URL with the filesystem path it is applied
// at during test setup.
type Overlay struct {
	URL  string
	Path string
}

// List accumulates overlays from repeated --overlay flags in invocation
// order. It implements pflag.Value; each occurrence carries a source URL and
// an optional destination path separated by whitespace.
type List []Overlay

// Set appends one overlay per flag occurrence. The destination defaults to
// DefaultPath when the value holds only a URL.
func (l *List) Set(value string) error {
	fields := strings.Fields(value)

	switch len(fields) {
	case 1:
		*l = append(*l, Overlay{URL: fields[0], Path: DefaultPath})
	case 2:
		*l = append(*l, Overlay{URL: fields[0], Path: fields[1]})
	default:
		return fmt.Errorf("overlay %q must be a source URL with an optional destination path", value)
	}

	return nil
}

func (l *List) String() string {
	if len(*l) == 0 {
		return ""
	}

	parts := make([]string, 0, len(*l))
	for _, o := range *l {
		parts = append(parts, o.URL+" "+o.Path)
	}

	return strings.Join(parts, ", ")
}

func (l *List) Type() string {
	return "overlay"
}
