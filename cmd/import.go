package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/mathcards/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace saved sessions with an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, history, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := history.Import(ctx, data); err != nil {
			if errors.Is(err, store.ErrInvalidImportShape) {
				return fmt.Errorf("%s is not a stats export: %w", args[0], err)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions\n", len(history.Sessions()))
		return nil
	},
}
