package afs

import (
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Prober answers the namespace introspection queries the traversal needs.
// All operations are side-effect-free reads; repeated calls for the same
// unchanged path return the same result within one run.
type Prober interface {
	// MountTarget resolves the volume a mount point targets. A nil
	// VolumeRef with a nil error means path is definitively not a mount
	// point. Errors satisfying ErrSymlink or ErrBadOutput are recoverable:
	// the caller warns and prunes that one branch.
	MountTarget(path string) (*VolumeRef, error)

	// OwningCell resolves the cell a path lives in. Paths outside AFS
	// entirely report ErrNotInAFS.
	OwningCell(path string) (string, error)

	// VolumeOf resolves the volume name backing a path. Only used for the
	// traversal root, whose mount point is not visible from inside the
	// mounted namespace.
	VolumeOf(path string) (string, error)

	// ACLOf fetches the access list body for a path.
	ACLOf(path string) (string, error)

	// WSCell resolves the local workstation's cell.
	WSCell() (string, error)
}

// runFunc executes one fs subcommand and returns its combined output. The
// fs utility writes negative answers ("is not a mount point", "is not in
// AFS") to stderr with a non-zero exit status, so output is parsed before
// the exit status is even considered.
type runFunc func(args ...string) (string, error)

// CommandProber implements Prober by invoking the fs binary once per query.
type CommandProber struct {
	// ThisCellPath is the client configuration file consulted when fs
	// wscell itself is unavailable.
	ThisCellPath string

	fsPath string
	log    *log.Logger
	run    runFunc
}

// NewCommandProber returns a prober that invokes fsPath (normally just
// "fs", resolved via PATH) for every query.
func NewCommandProber(fsPath string, logger *log.Logger) *CommandProber {
	p := &CommandProber{
		ThisCellPath: DefaultThisCellPath,
		fsPath:       fsPath,
		log:          logger,
	}
	p.run = func(args ...string) (string, error) {
		out, err := exec.Command(p.fsPath, args...).CombinedOutput()
		return string(out), err
	}
	return p
}

// MountTarget runs fs lsmount for path.
func (p *CommandProber) MountTarget(path string) (*VolumeRef, error) {
	out, err := p.query("lsmount", "-dir", path)
	if err != nil {
		return nil, err
	}
	return parseMountTarget(out)
}

// OwningCell runs fs whichcell for path.
func (p *CommandProber) OwningCell(path string) (string, error) {
	out, err := p.query("whichcell", "-path", path)
	if err != nil {
		return "", err
	}
	return parseWhichCell(out)
}

// VolumeOf runs fs examine for path.
func (p *CommandProber) VolumeOf(path string) (string, error) {
	out, err := p.query("examine", "-path", path)
	if err != nil {
		return "", err
	}
	return parseExamine(out)
}

// ACLOf runs fs listacl for path.
func (p *CommandProber) ACLOf(path string) (string, error) {
	out, err := p.query("listacl", "-path", path)
	if err != nil {
		return "", err
	}
	return parseListACL(out)
}

// WSCell runs fs wscell, falling back to the ThisCell client configuration
// file when the command itself fails.
func (p *CommandProber) WSCell() (string, error) {
	out, err := p.query("wscell")
	if err == nil {
		if cell, perr := parseWSCell(out); perr == nil {
			return cell, nil
		}
	}
	return readThisCell(p.ThisCellPath)
}

// query invokes one fs subcommand. A command that produced output is left
// to the parsers even when it exited non-zero; a command that produced
// nothing at all (binary missing, not executable) is a hard failure.
func (p *CommandProber) query(args ...string) (string, error) {
	out, err := p.run(args...)
	p.log.Debug("fs query", "args", args, "bytes", len(out))
	if out == "" && err != nil {
		return "", fmt.Errorf("running %s %s: %w", p.fsPath, args[0], err)
	}
	return out, nil
}
