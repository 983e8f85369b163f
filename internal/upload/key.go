package upload

import (
	"fmt"
	"strings"
)

// splitFileName splits a file name at its last dot. A name without a dot is
// all base and has an empty extension.
func splitFileName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// timestampedName disambiguates a colliding file name by appending unix
// milliseconds to the base. Names without an extension get no trailing dot:
// "photo.png" -> "photo_1712345678901.png", "README" -> "README_1712345678901".
func timestampedName(name string, millis int64) string {
	base, ext := splitFileName(name)
	if ext == "" {
		return fmt.Sprintf("%s_%d", base, millis)
	}
	return fmt.Sprintf("%s_%d.%s", base, millis, ext)
}
