package walker

import (
	"io/fs"
	"os"
)

// Lister enumerates the immediate subdirectories of a path, returning names
// rather than full paths.
type Lister func(dir string) ([]string, error)

// ListChildDirs lists the immediate subdirectories of dir, excluding
// symbolic links and non-directory entries. Symbolic links are never
// followed, so a link pointing at a directory is excluded too: directory
// entry types come from lstat and a link never reports as a directory.
func ListChildDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
