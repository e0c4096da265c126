package naming

import (
	"fmt"
	"strings"
)

// PNGSuffix is the lower-case suffix a name must end with to be renamed.
const PNGSuffix = ".png"

// IsPNG reports whether name ends with ".png", ignoring case.
func IsPNG(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), PNGSuffix)
}

// Ext returns the substring of name from its last dot onward, dot included,
// with the original casing. Names without a dot have no extension.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

// SequenceName builds "<prefix>_<index><ext>" with index zero-padded to at
// least two digits. Wider indices are kept whole: 7 → "07", 150 → "150".
func SequenceName(prefix string, index int, ext string) string {
	return fmt.Sprintf("%s_%02d%s", prefix, index, ext)
}
