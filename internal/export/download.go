package export

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Downloader hands a finished file to the user.
type Downloader interface {
	Download(name string, data []byte) (string, error)
}

// DirDownloader saves downloads into Dir. An existing file is never
// overwritten: "canvas.png" becomes "canvas (1).png", "canvas (2).png"...
type DirDownloader struct {
	Dir string
}

// maxDuplicates bounds the suffix search.
const maxDuplicates = 1000

// Download writes data and returns the path it was saved under.
func (d DirDownloader) Download(name string, data []byte) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < maxDuplicates; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(d.Dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}
		log.Printf("[EXPORT] saved %d bytes to %s", len(data), path)
		return path, nil
	}
	return "", fmt.Errorf("too many files named %s in %s", name, d.Dir)
}
