package layout

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// ReadSizes decodes a list of sizes from r and validates each entry. Two
// forms are accepted: a JSON array
//
//	[{"width": 40, "height": 12}, {"width": 18, "height": 9}]
//
// or one WxH pair per line, with blank lines and #-comments skipped:
//
//	40x12
//	18x9
func ReadSizes(r io.Reader) ([]geometry.Size, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sizes: %w", err)
	}

	var sizes []geometry.Size
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &sizes); err != nil {
			return nil, fmt.Errorf("decode sizes: %w", err)
		}
	} else if sizes, err = scanSizes(data); err != nil {
		return nil, err
	}

	for i, s := range sizes {
		if err := errors.ValidateSize(s.Width, s.Height); err != nil {
			return nil, fmt.Errorf("size %d: %w", i, err)
		}
	}
	return sizes, nil
}

func scanSizes(data []byte) ([]geometry.Size, error) {
	sizes := []geometry.Size{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")
		if text = strings.TrimSpace(text); text == "" {
			continue
		}
		s, err := ParseSize(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sizes = append(sizes, s)
	}
	return sizes, sc.Err()
}

// ParseSize parses "WxH" (case-insensitive). A single number means a square.
// The result is not range-checked.
func ParseSize(s string) (geometry.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		hs = ws
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return geometry.Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return geometry.Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %q", s)
	}
	return geometry.Sz(w, h), nil
}

// ReadSizesFile reads a sizes list from a file in either form.
func ReadSizesFile(path string) ([]geometry.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSizes(f)
}
