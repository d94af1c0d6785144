package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"har-media-exporter/internal/infrastructure/archive"
	infra_repo "har-media-exporter/internal/infrastructure/repositories"
	"har-media-exporter/internal/usecases"
	consts "har-media-exporter/pkg/constants"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <capture.har>",
		Short: "List the media a capture contains without extracting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			exporter := usecases.NewExportService(archive.NewZipBuilder, nil)
			svc := usecases.NewExtractService(infra_repo.NewInMemorySessionRepository(), exporter, nil, time.Hour)

			resp, err := svc.Extract(filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			if resp.Status == consts.StatusNoMedia {
				fmt.Fprintln(cmd.OutOrStdout(), "No media found in the capture.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tEXPORT NAME\tTYPE\tSOURCE URL")
			for _, item := range resp.Media {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.Index, item.ExportName, item.MimeType, item.SourceURL)
			}
			w.Flush()

			if resp.DecodeFailures > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d record(s) will be dropped at export, content failed to decode\n", resp.DecodeFailures)
			}
			return nil
		},
	}
}
