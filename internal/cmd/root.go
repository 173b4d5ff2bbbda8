package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/afs-tools/cellwalk/afs"
	"github.com/afs-tools/cellwalk/version"
	"github.com/afs-tools/cellwalk/walker"
)

// NewRootCmd creates and returns the root cobra command for the cellwalk
// CLI. The root command runs the traversal itself; utility subcommands hang
// off it.
func NewRootCmd() *cobra.Command {
	var (
		debugLevel int
		cellFlag   string
		fsPath     string
		mounts     bool
		noMounts   bool
		acls       bool
		noACLs     bool
	)

	cmd := &cobra.Command{
		Use:   "cellwalk [ROOT]",
		Short: "Inventory the mount points and access lists of an AFS cell",
		Long: `cellwalk walks the directory tree of one AFS cell starting at a root
mount (default /afs), reporting volume mount points and/or access lists.

The walk is scoped to a single home cell: mounts into other cells are
reported with a cell-qualified volume name but never descended into, and
each volume is entered at most once regardless of how many paths mount it.
When the root itself belongs to a foreign cell, its immediate children are
scanned for mount points back into the home cell and the walk continues
from those.

cellwalk is strictly read-only. It queries the namespace through the fs
command suite and an ordinary directory listing; it never modifies
filesystem state and never follows symbolic links.`,
		Args:    cobra.MaximumNArgs(1),
		Version: version.GetFullVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportMounts := mounts && !noMounts
			reportACLs := acls && !noACLs
			if !reportMounts && !reportACLs {
				return errors.New("nothing to report: enable --mounts and/or --acls")
			}

			cfg := loadConfig()
			logger := newLogger(debugLevel)

			if !cmd.Flags().Changed("fs-path") {
				if s := cfg.GetString("fs-path"); s != "" {
					fsPath = s
				}
			}
			prober := afs.NewCommandProber(fsPath, logger)
			if s := cfg.GetString("thiscell-path"); s != "" {
				prober.ThisCellPath = s
			}

			cell := cellFlag
			if cell == "" {
				cell = cfg.GetString("cell")
			}
			if cell == "" {
				var err error
				cell, err = prober.WSCell()
				if err != nil {
					return err
				}
			}

			root := "/afs"
			if len(args) == 1 {
				root = args[0]
			}

			logger.Debug("starting walk",
				"root", root, "cell", cell, "mounts", reportMounts, "acls", reportACLs)

			w := walker.New(prober, walker.ListChildDirs,
				walker.NewReporter(cmd.OutOrStdout()), logger, walker.Options{
					Cell:      cell,
					Mounts:    reportMounts,
					ACLs:      reportACLs,
					Verbosity: debugLevel,
				})
			return w.Run(root)
		},
	}

	cmd.Flags().CountVarP(&debugLevel, "debug", "d", "Raise debug verbosity (repeatable)")
	cmd.Flags().StringVar(&cellFlag, "cell", "", "Home cell to walk (default: the workstation's cell)")
	cmd.Flags().StringVar(&fsPath, "fs-path", "fs", "Path to the fs binary")
	cmd.Flags().BoolVar(&mounts, "mounts", true, "Report mount points")
	cmd.Flags().BoolVar(&noMounts, "no-mounts", false, "Suppress mount point reporting")
	cmd.Flags().BoolVar(&acls, "acls", false, "Report access lists")
	cmd.Flags().BoolVar(&noACLs, "no-acls", false, "Suppress access list reporting")

	cmd.AddCommand(NewCellCmd())

	return cmd
}
