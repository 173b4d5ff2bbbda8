// Package version reports the cellwalk build version.
//
// Release builds inject the version, commit, and build date via -ldflags;
// anything else falls back to the module build info the Go toolchain
// embeds.
package version
