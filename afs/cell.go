package afs

import (
	"fmt"
	"os"
	"strings"
)

// DefaultThisCellPath is where the OpenAFS client records the cell this
// workstation belongs to.
const DefaultThisCellPath = "/usr/vice/etc/ThisCell"

// readThisCell reads the workstation cell from the client configuration
// file. The file holds a single cell name, possibly with trailing
// whitespace.
func readThisCell(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrNoCell, path, err)
	}
	cell, _, _ := strings.Cut(string(data), "\n")
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoCell, path)
	}
	return cell, nil
}
