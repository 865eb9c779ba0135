package sshconfig

import (
	"fmt"
	"io"
	"os"

	"github.com/imamik/podssh/internal/util/fileutil"
)

// FileMode is the permission of the written configuration file.
const FileMode os.FileMode = 0600

// WriteFile replaces path with the serialized document.
func WriteFile(path string, doc *Document) error {
	err := fileutil.WriteAtomic(path, FileMode, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write ssh config %s: %w", path, err)
	}
	return nil
}
