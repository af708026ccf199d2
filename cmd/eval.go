package cmd

import (
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [--] <x>...",
	Short: "Predict y for the given observations",
	Long: "Predict y for the given observations. Separate negative values " +
		"from the flags with --, e.g. linpredict eval -- -3 2.5",
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	return svc.Eval(cmd.OutOrStdout(), args)
}
