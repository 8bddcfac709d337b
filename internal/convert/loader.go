package convert

import (
	"fmt"

	"github.com/spf13/afero"
)

// Load reads the whole file at path into memory.
func Load(fs afero.Fs, path string) ([]byte, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	return afero.ReadFile(fs, path)
}
