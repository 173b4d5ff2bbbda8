package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afs-tools/cellwalk/afs"
)

// NewCellCmd creates and returns the cell subcommand for the cellwalk CLI.
// It prints the home cell a walk would use, after the same config, env, and
// workstation-detection chain as the walk itself.
func NewCellCmd() *cobra.Command {
	var fsPath string

	cmd := &cobra.Command{
		Use:   "cell",
		Short: "Print the home cell the walk would use",
		Long: `Print the home cell cellwalk would scope a walk to.

The cell is taken from the CELLWALK_CELL environment variable or the config
file when set, otherwise detected from the workstation via fs wscell with
the ThisCell client configuration file as a fallback.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cell := cfg.GetString("cell"); cell != "" {
				fmt.Fprintln(cmd.OutOrStdout(), cell)
				return nil
			}
			if !cmd.Flags().Changed("fs-path") {
				if s := cfg.GetString("fs-path"); s != "" {
					fsPath = s
				}
			}
			prober := afs.NewCommandProber(fsPath, newLogger(0))
			if s := cfg.GetString("thiscell-path"); s != "" {
				prober.ThisCellPath = s
			}
			cell, err := prober.WSCell()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cell)
			return nil
		},
	}

	cmd.Flags().StringVar(&fsPath, "fs-path", "fs", "Path to the fs binary")

	return cmd
}
