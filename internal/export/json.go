package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/netssv/webaudit/internal/auditor"
)

const (
	jsonPrefix = ""
	jsonIndent = "  "

	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
)

// JSON renders results as indented JSON suitable for writing to disk or
// feeding back through json.Unmarshal.
func JSON(results []*auditor.Result) ([]byte, error) {
	data, err := json.MarshalIndent(results, jsonPrefix, jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}
	return data, nil
}

// WriteJSON stores one result under dir as audit_<domain>_<timestamp>.json
// and returns the path written.
func WriteJSON(dir string, result *auditor.Result) (string, error) {
	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}

	name := fmt.Sprintf("audit_%s_%s.json", fileSafe(result.Domain), result.Timestamp.Format("20060102T150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(result, jsonPrefix, jsonIndent)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(path, data, defaultFilePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// fileSafe strips characters that do not belong in a filename.
func fileSafe(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

// resultTimestamp formats a timestamp the way every exporter labels it.
func resultTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
