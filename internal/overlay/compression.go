package overlay

import (
	"path"
	"strings"
)

// compressionBySuffix maps archive suffixes to their (archive format,
// compression format) pair. Order matters: longer suffixes are listed first
// so ".tar.xz" wins over ".xz".
var compressionBySuffix = []struct {
	suffix      string
	archive     string
	compression string
}{
	{".tar.xz", "tar", "xz"},
	{".tar.gz", "tar", "gz"},
	{".tgz", "tar", "gz"},
	{".gz", "", "gz"},
	{".xz", "", "xz"},
	{".zst", "", "zstd"},
}

// plainSuffixes are extensions known to carry no compression at all.
var plainSuffixes = []string{".py", ".sh", ".yaml", ".txt"}

// Compression classifies a filename by its suffix chain into an archive
// format and a compression format. An empty string means the corresponding
// format is absent. Files with a known plain extension report their stem as
// the archive member name; unrecognized extensions yield two empty strings.
func Compression(filename string) (archive, compression string) {
	lower := strings.ToLower(filename)

	for _, entry := range compressionBySuffix {
		if strings.HasSuffix(lower, entry.suffix) {
			return entry.archive, entry.compression
		}
	}

	for _, suffix := range plainSuffixes {
		if strings.HasSuffix(lower, suffix) {
			base := path.Base(filename)
			return strings.TrimSuffix(base, path.Ext(base)), ""
		}
	}

	return "", ""
}
