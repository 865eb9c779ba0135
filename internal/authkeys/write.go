package authkeys

import (
	"fmt"
	"os"
	"strings"

	"github.com/imamik/podssh/internal/util/fileutil"
)

// FileMode is the permission used for key artifacts.
const FileMode os.FileMode = 0600

// Format renders keys one per line with a trailing newline each.
func Format(keys []PublicKeyLine) []byte {
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k.String())
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// WriteFile overwrites path with exactly the given keys.
func WriteFile(path string, keys []PublicKeyLine) error {
	if err := fileutil.WriteFileAtomic(path, Format(keys), FileMode); err != nil {
		return fmt.Errorf("failed to write keys to %s: %w", path, err)
	}
	return nil
}

// AppendRaw appends raw to path unchanged. It does not parse or
// deduplicate anything.
func AppendRaw(path string, raw []byte) error {
	return fileutil.AppendFile(path, raw, FileMode)
}
