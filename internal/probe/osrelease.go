package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// OSRelease holds the fields of /etc/os-release the checks care about.
type OSRelease struct {
	ID         string `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	VersionID  string `json:"version_id"  yaml:"version_id"`
	PrettyName string `json:"pretty_name" yaml:"pretty_name"`
}

// ReadOSRelease opens and parses path. A missing file wraps ErrOSUndetectable.
func ReadOSRelease(path string) (OSRelease, error) {
	f, err := os.Open(path)
	if err != nil {
		return OSRelease{}, fmt.Errorf("%w: %v", ErrOSUndetectable, err)
	}
	defer f.Close()
	return ParseOSRelease(f)
}

// ParseOSRelease reads key="value" lines. Missing NAME or VERSION_ID fields
// come back as "Unknown".
func ParseOSRelease(r io.Reader) (OSRelease, error) {
	fields := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = unquote(strings.TrimSpace(val))
	}
	if err := sc.Err(); err != nil {
		return OSRelease{}, fmt.Errorf("reading os-release: %w", err)
	}

	rel := OSRelease{
		ID:         fields["ID"],
		Name:       orUnknown(fields["NAME"]),
		VersionID:  orUnknown(fields["VERSION_ID"]),
		PrettyName: fields["PRETTY_NAME"],
	}
	return rel, nil
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
