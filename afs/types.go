package afs

import "strings"

// readOnlySuffix marks the read-only replica of a volume. Read-only and
// read-write replicas are the same logical volume for deduplication and ACL
// purposes, so the suffix is stripped everywhere a volume name is returned.
const readOnlySuffix = ".readonly"

// VolumeRef identifies the volume a mount point targets.
type VolumeRef struct {
	// Cell is the cell qualifier from a compound "cell:volume" mount
	// target, or empty when the mount answer carried no cell.
	Cell string
	// Volume is the volume name with any ".readonly" suffix stripped.
	Volume string
	// ReadOnly reports whether the mount named the read-only replica.
	ReadOnly bool
}

// String renders the reference as "cell:volume" when cell-qualified,
// otherwise just the volume name.
func (r VolumeRef) String() string {
	if r.Cell != "" {
		return r.Cell + ":" + r.Volume
	}
	return r.Volume
}

// splitVolumeTarget breaks a raw mount target into its optional cell
// qualifier and volume name, stripping the read-only suffix.
func splitVolumeTarget(target string) VolumeRef {
	var ref VolumeRef
	if cell, vol, ok := strings.Cut(target, ":"); ok {
		ref.Cell = cell
		ref.Volume = vol
	} else {
		ref.Volume = target
	}
	if strings.HasSuffix(ref.Volume, readOnlySuffix) {
		ref.Volume = strings.TrimSuffix(ref.Volume, readOnlySuffix)
		ref.ReadOnly = true
	}
	return ref
}

// stripReadOnly removes the read-only replica suffix from a volume name.
func stripReadOnly(volume string) string {
	return strings.TrimSuffix(volume, readOnlySuffix)
}
