package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// outputPerm is applied to newly created output files.
const outputPerm os.FileMode = 0o644

// Write replaces the file at path with data.
// Data goes to a temporary file in the same directory first, which is then
// renamed over path. On failure the temporary file is removed and path is
// left as it was.
func Write(fs afero.Fs, path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	dirInfo, err := fs.Stat(dir)
	if err != nil {
		return err
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}

	if info, statErr := fs.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("%s: is a directory", path)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	defer func() {
		if err != nil {
			_ = fs.Remove(tmp)
		}
	}()

	if err = afero.WriteFile(fs, tmp, data, outputPerm); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}
