package afs

import (
	"fmt"
	"regexp"
	"strings"
)

// Reply patterns for the fs command suite. The fs utility answers every
// query with a fixed English sentence; these are matched against the
// combined stdout+stderr of the command since fs writes its negative
// answers to stderr.
var (
	mountPointRE = regexp.MustCompile(`is a mount point for volume '(?:[#%])([^']+)'`)
	whichCellRE  = regexp.MustCompile(`lives in cell '([^']+)'`)
	examineRE    = regexp.MustCompile(`(?m)^Volume status for vid = \d+ named (\S+)`)
	wsCellRE     = regexp.MustCompile(`belongs to cell '([^']+)'`)
)

// parseMountTarget interprets fs lsmount output. A nil VolumeRef with a nil
// error means the path is definitively not a mount point.
func parseMountTarget(out string) (*VolumeRef, error) {
	if strings.Contains(out, "symbolic link") {
		return nil, fmt.Errorf("%w: %s", ErrSymlink, firstLine(out))
	}
	if m := mountPointRE.FindStringSubmatch(out); m != nil {
		ref := splitVolumeTarget(m[1])
		return &ref, nil
	}
	if strings.Contains(out, "is not a mount point") {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadOutput, firstLine(out))
}

// parseWhichCell interprets fs whichcell output.
func parseWhichCell(out string) (string, error) {
	if m := whichCellRE.FindStringSubmatch(out); m != nil {
		return m[1], nil
	}
	if strings.Contains(out, "is not in AFS") {
		return "", fmt.Errorf("%w: %s", ErrNotInAFS, firstLine(out))
	}
	return "", fmt.Errorf("%w: %q", ErrBadOutput, firstLine(out))
}

// parseExamine pulls the volume name out of fs examine output. The command
// prints a multi-line volume status block; only the "named" line matters
// here.
func parseExamine(out string) (string, error) {
	if m := examineRE.FindStringSubmatch(out); m != nil {
		return stripReadOnly(m[1]), nil
	}
	if strings.Contains(out, "is not in AFS") {
		return "", fmt.Errorf("%w: %s", ErrNotInAFS, firstLine(out))
	}
	return "", fmt.Errorf("%w: %q", ErrBadOutput, firstLine(out))
}

// parseListACL strips the "Access list for <path> is" header from fs
// listacl output and returns the remaining body with the trailing newline
// removed.
func parseListACL(out string) (string, error) {
	header, body, ok := strings.Cut(out, "\n")
	if !ok || !strings.HasPrefix(header, "Access list for ") {
		if strings.Contains(out, "is not in AFS") {
			return "", fmt.Errorf("%w: %s", ErrNotInAFS, firstLine(out))
		}
		return "", fmt.Errorf("%w: %q", ErrBadOutput, firstLine(out))
	}
	return strings.TrimRight(body, "\n"), nil
}

// parseWSCell interprets fs wscell output.
func parseWSCell(out string) (string, error) {
	if m := wsCellRE.FindStringSubmatch(out); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadOutput, firstLine(out))
}

func firstLine(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line)
}
