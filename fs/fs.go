// Package fs provides file-based vault storage for saved articles:
// the document writer, the duplicate scanner, filename generation, and
// the durable URL queue. All writes are atomic (unique temp file in the
// target directory followed by rename), so a crash or concurrent reader
// never observes a partially-written file.
package fs

import (
	"os"
	"path/filepath"
)

// ArticlesDir is the directory under the vault root that holds saved
// documents and the queue file.
const ArticlesDir = "Articles"

// ArticlesPath returns the article directory for a vault root.
func ArticlesPath(vaultRoot string) string {
	return filepath.Join(vaultRoot, ArticlesDir)
}

// writeFileAtomic writes data to path via a uniquely-named temp file in the
// same directory and an atomic rename. The parent directory is created on
// demand.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
