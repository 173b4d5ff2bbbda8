// Package walker implements the iterative traversal of a cell's mounted
// volume tree.
//
// The traversal is a work-queue walk rather than a recursive one: AFS
// namespaces routinely nest deeper than a native call stack should go, and
// the same volume can be mounted at several paths (including cycles back
// into an ancestor). A Walker owns an explicit queue of work items and a
// set of volumes already entered; each distinct volume is descended into at
// most once, which bounds the walk on any mount graph.
//
// Children are pushed onto the front of the queue so expansion proceeds
// depth-first and queue memory stays proportional to tree depth rather than
// tree width. The bootstrap batch is ordered so that names beginning with a
// dot come first: when a cell's root is reachable through both its
// read-write path (conventionally dot-prefixed) and its read-only path, the
// read-write mount is entered first and the read-only duplicate is pruned
// by the visited set.
//
// All mutable state lives on one Walker value per run; independent runs in
// the same process never share state.
package walker
