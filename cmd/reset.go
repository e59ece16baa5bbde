package cmd

import (
	"fmt"

	"github.com/abhisek/mathcards/internal/stats"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, history, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		n := len(history.Sessions())
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete %d sessions without --yes", n)
		}
		if err := history.Replace(ctx, []stats.Record{}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d sessions\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
