package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/mathcards/internal/config"
	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/report"
	"github.com/abhisek/mathcards/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved sessions as JSON or an Excel workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, history, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		var buf bytes.Buffer
		switch format {
		case "json":
			data, err := history.Export()
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte('\n')
		case "xlsx":
			if out == "-" {
				return fmt.Errorf("xlsx export needs a file, not stdout")
			}
			t := i18n.Get(resolveLanguage(ctx, cfg, st))
			if err := report.WriteWorkbook(&buf, history.Sessions(), t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want json or xlsx)", format)
		}

		return writeOutput(cmd.OutOrStdout(), out, buf.Bytes(), history)
	},
}

func writeOutput(stdout io.Writer, out string, data []byte, history *store.StatsStore) error {
	if out == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := config.EnsureDir(out); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "Exported %d sessions to %s\n", len(history.Sessions()), out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: json or xlsx")
	exportCmd.Flags().StringP("out", "o", config.DefaultExportPath(), "Output file, or - for stdout")
}
