package astirecorder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Namer generates output paths that never collide with an existing file
type Namer struct {
	dir  string
	ext  string
	stem string
}

// NewNamer creates a new namer
func NewNamer(dir, stem, ext string) *Namer {
	return &Namer{
		dir:  dir,
		ext:  ext,
		stem: stem,
	}
}

// Next returns <dir>/<stem>_<n>.<ext> where n is the smallest non-negative integer
// for which no file exists yet. The directory is created if needed.
func (n *Namer) Next() (p string, err error) {
	// Make sure the directory exists
	if err = os.MkdirAll(n.dir, 0755); err != nil {
		err = &StorageError{Path: n.dir, Err: errors.Wrapf(err, "astirecorder: mkdirall %s failed", n.dir)}
		return
	}

	// Find the first free index
	for i := 0; ; i++ {
		p = filepath.Join(n.dir, fmt.Sprintf("%s_%d.%s", n.stem, i, n.ext))
		if _, err = os.Stat(p); os.IsNotExist(err) {
			err = nil
			return
		} else if err != nil {
			err = &StorageError{Path: p, Err: errors.Wrapf(err, "astirecorder: stating %s failed", p)}
			return
		}
	}
}
