// Package cmd provides the command-line interface implementation for
// cellwalk.
//
// It uses the Cobra library for command structure and Fang for styling.
// cellwalk is a single-purpose tool, so the root command is the traversal
// itself: it walks the home cell from a root mount, reporting mount points
// and/or access lists. One utility subcommand, cell, prints the home cell
// the walk would use.
//
// Defaults for the home cell, the fs binary, and the ThisCell file location
// are resolved through Viper: command-line flags override CELLWALK_*
// environment variables, which override an optional config file at
// ~/.config/cellwalk/config.yaml or /etc/cellwalk/config.yaml.
//
// The package leverages the afs package for namespace introspection and the
// walker package for the traversal engine.
package cmd
