package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vginneken/bufferinsert/internal/driver"
	"github.com/vginneken/bufferinsert/internal/rlog"
)

var (
	verbose  bool
	stepFlag int
	dotFlag  string

	logger rlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vginneken <technology.json> <test.json>",
	Short: "Insert repeater buffers into an RC tree to meet timing",
	Long: `vginneken reads a technology/module description and an RC tree, runs a
van Ginneken-style dynamic-programming buffer insertion pass over the
tree, splices the chosen buffers into it, and writes the result to
"<test file stem>_out.json" in the current directory.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := rlog.LevelInfo
		if verbose {
			level = rlog.LevelDebug
		}
		logger = rlog.NewStderr(level)
		return nil
	},
	RunE: runRoot,
}

// Execute runs the root command and exits the process with status 1 on
// any failure: usage, I/O, parse, and internal errors are all treated as
// fatal at this boundary, with no distinction in exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().IntVar(&stepFlag, "step", 1, "candidate spacing along each edge")
	rootCmd.Flags().StringVar(&dotFlag, "dot", "", "write a Graphviz dump of the materialized tree to this path")
}

func runRoot(cmd *cobra.Command, args []string) error {
	techPath, treePath := args[0], args[1]

	return driver.Run(techPath, treePath, driver.Options{
		Step:    stepFlag,
		DotPath: dotFlag,
		Logger:  logger,
	})
}
