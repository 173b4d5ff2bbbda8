package walker

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/afs-tools/cellwalk/afs"
)

type (
	// WorkItem is one directory awaiting examination. Items are owned
	// solely by the queue: created when a directory's children are
	// expanded, destroyed when popped.
	WorkItem struct {
		// ParentVolume is the volume whose mount root this directory
		// lives under.
		ParentVolume string
		// RelPath is the path relative to ParentVolume's mount root.
		RelPath string
		// FullPath is the absolute path of the directory.
		FullPath string
		// InheritedACL is the ACL to compare against. Ignored when the
		// directory turns out to be a mount point.
		InheritedACL string
	}

	// Options configures one traversal run.
	Options struct {
		// Cell is the home cell; directories outside it are pruned.
		Cell string
		// Mounts enables mount point reporting.
		Mounts bool
		// ACLs enables ACL reporting.
		ACLs bool
		// Verbosity controls how much pruning rationale reaches the
		// log. It never changes control flow.
		Verbosity int
	}

	// Walker drives one traversal. All mutable state (queue, visited
	// set) belongs to the one run; a Walker is not reusable.
	Walker struct {
		probe afs.Prober
		list  Lister
		rep   *Reporter
		log   *log.Logger
		opts  Options

		queue   []WorkItem
		visited map[string]bool
	}
)

// New returns a Walker ready for one Run.
func New(probe afs.Prober, list Lister, rep *Reporter, logger *log.Logger, opts Options) *Walker {
	return &Walker{
		probe:   probe,
		list:    list,
		rep:     rep,
		log:     logger,
		opts:    opts,
		visited: make(map[string]bool),
	}
}

// Run traverses the tree rooted at root. It returns an error only when the
// root itself cannot be resolved; every failure below the root is a logged
// warning that prunes a single branch.
func (w *Walker) Run(root string) error {
	rootCell, err := w.probe.OwningCell(root)
	if err != nil {
		return fmt.Errorf("resolving cell of root %s: %w", root, err)
	}
	if rootCell == w.opts.Cell {
		if err := w.seedHome(root); err != nil {
			return err
		}
	} else {
		w.log.Debug("root belongs to a foreign cell, scanning its children for home-cell mounts",
			"root", root, "rootCell", rootCell, "cell", w.opts.Cell)
		w.seedForeign(root)
	}

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.step(item)
	}
	return nil
}

// seedHome handles the case where the traversal root already lives in the
// home cell. The root's mount point is not visible from inside the mounted
// namespace, so its volume comes from a one-off fs examine; the answer is
// used solely for the initial report line. Any failure here is fatal: there
// is nothing to traverse without the root.
func (w *Walker) seedHome(root string) error {
	vol, err := w.probe.VolumeOf(root)
	if err != nil {
		return fmt.Errorf("resolving volume of root %s: %w", root, err)
	}
	var acl string
	if w.opts.ACLs {
		acl, err = w.probe.ACLOf(root)
		if err != nil {
			return fmt.Errorf("resolving ACL of root %s: %w", root, err)
		}
	}
	if w.opts.Mounts {
		w.rep.Mount(root, vol)
	}
	if w.opts.ACLs {
		w.rep.ACL(root, acl)
	}
	w.visited[vol] = true
	names, err := w.list(root)
	if err != nil {
		w.log.Warn("cannot list traversal root", "path", root, "err", err)
		return nil
	}
	sortDotFirst(names)
	for _, name := range names {
		w.queue = append(w.queue, WorkItem{
			ParentVolume: vol,
			RelPath:      name,
			FullPath:     filepath.Join(root, name),
			InheritedACL: acl,
		})
	}
	return nil
}

// seedForeign handles the case where the traversal root belongs to a
// foreign cell, i.e. the home cell's volume is not mounted directly at the
// root. The root's immediate children are scanned for mount points into the
// home cell and each match is entered. Dot-prefixed names go first so the
// read-write path of the cell root wins over its read-only twin.
func (w *Walker) seedForeign(root string) {
	names, err := w.list(root)
	if err != nil {
		w.log.Warn("cannot list traversal root", "path", root, "err", err)
		return
	}
	sortDotFirst(names)
	for _, name := range names {
		full := filepath.Join(root, name)
		ref, err := w.probe.MountTarget(full)
		if err != nil {
			w.log.Warn("mount probe failed, skipping", "path", full, "err", err)
			continue
		}
		if ref == nil {
			continue
		}
		cell, err := w.mountCell(full, ref)
		if err != nil {
			w.log.Warn("cannot resolve cell of mount point, skipping", "path", full, "err", err)
			continue
		}
		if cell != w.opts.Cell {
			if w.opts.Verbosity >= 1 {
				w.log.Debug("mount targets another cell, skipping", "path", full, "targetCell", cell)
			}
			continue
		}
		w.enterMount(WorkItem{RelPath: name, FullPath: full}, ref, cell)
	}
}

// step examines one dequeued directory.
func (w *Walker) step(item WorkItem) {
	if w.opts.Verbosity >= 2 {
		w.log.Debug("examining", "path", item.FullPath, "volume", item.ParentVolume, "rel", item.RelPath)
	}
	ref, err := w.probe.MountTarget(item.FullPath)
	if err != nil {
		w.log.Warn("mount probe failed, pruning", "path", item.FullPath, "err", err)
		return
	}
	if ref == nil {
		w.descend(item)
		return
	}
	cell, err := w.mountCell(item.FullPath, ref)
	if err != nil {
		w.log.Warn("cannot resolve cell of mount point, pruning", "path", item.FullPath, "err", err)
		return
	}
	w.enterMount(item, ref, cell)
}

// enterMount reports a mount point and, when it opens a not-yet-visited
// volume of the home cell, descends into it. The target volume becomes the
// parent volume of everything below, with the relative path reset to the
// new mount root.
func (w *Walker) enterMount(item WorkItem, ref *afs.VolumeRef, cell string) {
	display := ref.Volume
	if cell != w.opts.Cell {
		display = cell + ":" + ref.Volume
	}
	if w.opts.Mounts {
		w.rep.Mount(item.FullPath, display)
	}
	// Home-cell volumes key on the bare name, foreign ones cell-qualified.
	// The .readonly suffix was already stripped by the probe, so both
	// replicas of a volume share one key.
	if w.visited[display] {
		w.log.Debug("volume already visited, pruning",
			"path", item.FullPath, "volume", display, "readonly", ref.ReadOnly)
		return
	}
	w.visited[display] = true
	if cell != w.opts.Cell {
		if w.opts.Verbosity >= 1 {
			w.log.Debug("mount targets another cell, pruning", "path", item.FullPath, "targetCell", cell)
		}
		return
	}
	var acl string
	if w.opts.ACLs {
		var err error
		acl, err = w.probe.ACLOf(item.FullPath)
		if err != nil {
			w.log.Warn("cannot read ACL of volume root, pruning", "path", item.FullPath, "err", err)
			return
		}
		w.rep.ACL(item.FullPath, acl)
	}
	w.expand(WorkItem{ParentVolume: ref.Volume, FullPath: item.FullPath, InheritedACL: acl})
}

// descend handles an ordinary directory. Its ACL is reported only when it
// differs from the inherited one; a differing ACL becomes the baseline for
// the directory's own children.
func (w *Walker) descend(item WorkItem) {
	if w.opts.ACLs {
		acl, err := w.probe.ACLOf(item.FullPath)
		if err != nil {
			w.log.Warn("cannot read ACL, pruning", "path", item.FullPath, "err", err)
			return
		}
		if acl != item.InheritedACL {
			w.rep.ACL(item.FullPath, acl)
			item.InheritedACL = acl
		}
	}
	w.expand(item)
}

// expand enqueues one work item per child directory at the front of the
// queue, extending the parent's relative and absolute paths.
func (w *Walker) expand(item WorkItem) {
	names, err := w.list(item.FullPath)
	if err != nil {
		w.log.Warn("cannot list directory", "path", item.FullPath, "err", err)
		return
	}
	if len(names) == 0 {
		return
	}
	children := make([]WorkItem, 0, len(names))
	for _, name := range names {
		children = append(children, WorkItem{
			ParentVolume: item.ParentVolume,
			RelPath:      path.Join(item.RelPath, name),
			FullPath:     filepath.Join(item.FullPath, name),
			InheritedACL: item.InheritedACL,
		})
	}
	w.queue = append(children, w.queue...)
}

// mountCell resolves the effective cell of a mount target: the compound
// cell:volume answer when present, the owning cell of the mount point
// otherwise.
func (w *Walker) mountCell(fullPath string, ref *afs.VolumeRef) (string, error) {
	if ref.Cell != "" {
		return ref.Cell, nil
	}
	return w.probe.OwningCell(fullPath)
}

// sortDotFirst orders names so that dot-prefixed entries come before plain
// ones, each group lexicographically.
func sortDotFirst(names []string) {
	sort.Slice(names, func(i, j int) bool {
		di := strings.HasPrefix(names[i], ".")
		dj := strings.HasPrefix(names[j], ".")
		if di != dj {
			return di
		}
		return names[i] < names[j]
	})
}
