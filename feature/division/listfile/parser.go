// Package listfile parses the gold-standard list format.
//
// The file is a sequence of blocks. A line ending in ':' names a province and
// is followed by data lines of the shape
//
//	<index> <district name, may contain spaces> <PROVINCE>
//
// The province column is always a single whitespace token, so the last token
// is the province and everything between the index and the last token is the
// district name. District names carry spaces; province names in this
// format never do.
package listfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"district-sync/core/reconcile"
	"district-sync/core/source"
	"district-sync/core/textfold"
)

// Parse reads the list format from r. Districts are attributed to the most
// recent header; data lines before any header and lines that match neither
// rule are dropped.
func Parse(r io.Reader) (reconcile.Dataset, error) {
	data := make(reconcile.Dataset)
	current := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") {
			current = textfold.FoldLower(strings.TrimSuffix(line, ":"))
			data.Ensure(current)
			continue
		}

		district, ok := parseDataLine(line)
		if !ok || current == "" {
			continue
		}
		data.Add(current, textfold.FoldLower(district))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan list: %w", err)
	}

	return data, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(content string) reconcile.Dataset {
	data, _ := Parse(strings.NewReader(content))
	return data
}

// parseDataLine extracts the district name from "<index> <district...> <PROVINCE>".
func parseDataLine(line string) (string, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || !isIndex(parts[0]) {
		return "", false
	}
	return strings.Join(parts[1:len(parts)-1], " "), true
}

func isIndex(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != ""
}

// Source loads the gold list from a path.
type Source struct {
	// Label is the name used in reports.
	Label string
	// Path is a local path or s3:// URL.
	Path string
	// Opener reads the input.
	Opener *source.Opener
}

// Name returns the report label.
func (s *Source) Name() string {
	return s.Label
}

// Load reads and parses the list. A missing file is returned as an error
// wrapping source.ErrNotFound.
func (s *Source) Load(ctx context.Context) (reconcile.Dataset, error) {
	text, err := s.Opener.ReadText(ctx, s.Path)
	if err != nil {
		return nil, err
	}
	return Parse(strings.NewReader(text))
}
