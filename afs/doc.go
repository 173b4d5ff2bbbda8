// Package afs wraps the OpenAFS "fs" command suite behind a typed query
// interface.
//
// The AFS cache manager only exposes namespace introspection through the fs
// utility, which answers each query with one English sentence (or, for ACLs,
// a short block of text). This package runs those commands and parses their
// replies into structured results so the rest of cellwalk never touches the
// textual protocol.
//
// Supported queries:
//   - fs lsmount: resolve the volume a mount point targets
//   - fs whichcell: resolve the cell a path lives in
//   - fs examine: resolve the volume backing a path
//   - fs listacl: fetch the access list for a path
//   - fs wscell: resolve the local workstation's cell
//
// All queries are read-only and idempotent. Unexpected reply text is
// reported through sentinel errors (ErrBadOutput and friends) so callers can
// treat a single malformed reply as a recoverable condition rather than
// aborting a whole traversal.
package afs
