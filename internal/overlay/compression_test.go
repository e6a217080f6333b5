package overlay

import "testing"

func TestCompression(t *testing.T) {
	tests := []struct {
		filename    string
		archive     string
		compression string
	}{
		{"file.tar.xz", "tar", "xz"},
		{"file.tar.gz", "tar", "gz"},
		{"file.tgz", "tar", "gz"},
		{"file.gz", "", "gz"},
		{"file.xz", "", "xz"},
		{"file.zst", "", "zstd"},
		{"file.py", "file", ""},
		{"file.sh", "file", ""},
		{"file.unknown", "", ""},
		{"file", "", ""},
		// Longest suffix wins: .tar.xz over .xz.
		{"http://example.com/rootfs.tar.xz", "tar", "xz"},
		{"setup.SH", "setup", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			archive, compression := Compression(tt.filename)
			if archive != tt.archive || compression != tt.compression {
				t.Errorf("Compression(%q) = (%q, %q), want (%q, %q)",
					tt.filename, archive, compression, tt.archive, tt.compression)
			}
		})
	}
}
