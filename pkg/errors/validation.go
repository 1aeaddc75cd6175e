package errors

import (
	"strings"
	"unicode"
)

// MaxDimension bounds a single rectangle side. Larger values are almost always
// a unit mistake and would make the radius search crawl.
const MaxDimension = 1 << 16

// ValidateSize validates a rectangle size supplied by a caller.
//
// Zero is accepted on either axis (the rectangle degrades to a line or a
// point). Negative values and values above MaxDimension are rejected.
func ValidateSize(width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidSize, "size must be non-negative, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidSize, "size too large: %dx%d (max %d per side)", width, height, MaxDimension)
	}
	return nil
}

// ValidateSizeRange validates the bounds used for random size generation.
// Both bounds must be valid sizes and min must not exceed max on either axis.
func ValidateSizeRange(minW, minH, maxW, maxH int) error {
	if err := ValidateSize(minW, minH); err != nil {
		return err
	}
	if err := ValidateSize(maxW, maxH); err != nil {
		return err
	}
	if minW > maxW || minH > maxH {
		return New(ErrCodeInvalidSize, "min size %dx%d exceeds max size %dx%d", minW, minH, maxW, maxH)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
