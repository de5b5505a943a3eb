package linkedin

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Bundle holds the text payloads extracted from a LinkedIn export archive.
// Any slot may be empty; the caller decides whether that matters.
type Bundle struct {
	Profile     string
	Positions   string
	Connections string
}

func (b Bundle) Empty() bool {
	return b.Profile == "" && b.Positions == "" && b.Connections == ""
}

// IsArchive sniffs the ZIP local-file-header magic.
func IsArchive(payload []byte) bool {
	return len(payload) >= 4 && bytes.HasPrefix(payload, []byte("PK\x03\x04"))
}

// ExtractBundle decodes a LinkedIn ZIP export and binds each recognized CSV
// entry to its slot. Matching is case-insensitive on the entry name; the
// first match per slot wins and everything else is ignored. An unreadable
// archive or entry fails the whole extraction.
func ExtractBundle(payload []byte) (Bundle, error) {
	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to open export archive: %w", err)
	}

	var bundle Bundle
	for _, entry := range reader.File {
		name := strings.ToLower(entry.Name)
		if !strings.HasSuffix(name, ".csv") {
			continue
		}

		var slot *string
		switch {
		case strings.Contains(name, "profile") && bundle.Profile == "":
			slot = &bundle.Profile
		case strings.Contains(name, "positions") && bundle.Positions == "":
			slot = &bundle.Positions
		case strings.Contains(name, "connections") && bundle.Connections == "":
			slot = &bundle.Connections
		default:
			continue
		}

		text, err := readEntry(entry)
		if err != nil {
			return Bundle{}, fmt.Errorf("failed to read archive entry %q: %w", entry.Name, err)
		}
		*slot = text
	}
	return bundle, nil
}

func readEntry(entry *zip.File) (string, error) {
	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
