package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout = "20060102"
	fileExt    = ".txt"
)

// control characters and the characters reserved on common filesystems
var unsafeChars = regexp.MustCompile(`[\x00-\x1f<>:"/\\|?*]+`)

// SanitizeForFilename strips every character that cannot appear in a filename.
// A name that ends up empty or made of periods only is rejected.
func SanitizeForFilename(name string) (string, error) {
	clean := unsafeChars.ReplaceAllString(name, "")
	if strings.Trim(clean, ".") == "" {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return clean, nil
}

func BuildFilename(sanitized string, now time.Time) string {
	return sanitized + "_" + now.Format(dateLayout) + fileExt
}
