// Package hasher derives content-addressed names for encoded outputs.
package hasher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultLength is the number of hex chars used in output names.
const DefaultLength = 8

// ContentHash returns the xxHash64 of data as hex, truncated to hexLen
// characters when 0 < hexLen < 16.
func ContentHash(data []byte, hexLen int) string {
	full := fmt.Sprintf("%016x", xxhash.Sum64(data))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// Name inserts the content hash of data before the extension of name and
// replaces the extension with ext: "banner.jpg" -> "banner.1a2b3c4d.webp".
func Name(name string, data []byte, hexLen int, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return fmt.Sprintf("%s.%s.%s", base, ContentHash(data, hexLen), ext)
}
