package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"har-media-exporter/internal/domain/repositories"
	"har-media-exporter/internal/infrastructure/archive"
	infra_repo "har-media-exporter/internal/infrastructure/repositories"
	"har-media-exporter/internal/infrastructure/storage"
	"har-media-exporter/internal/usecases"
	consts "har-media-exporter/pkg/constants"

	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var (
		output   string
		s3Bucket string
		s3Region string
	)

	cmd := &cobra.Command{
		Use:   "extract <capture.har>",
		Short: "Extract media from a capture into media.zip",
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

			out, result, err := svc.BuildArchive(resp.SessionID)
			if err != nil {
				return err
			}

			var target repositories.StorageStrategy
			if s3Bucket != "" {
				target, err = storage.NewS3Storage(s3Bucket, s3Region)
				if err != nil {
					return err
				}
			} else {
				target = storage.NewLocalStorage(filepath.Dir(output))
			}
			key := filepath.Base(output)

			stored, err := target.Save(key, bytes.NewReader(out), map[string]string{
				"source_filename": resp.Filename,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d entries, %d bytes)\n", stored, result.EntryCount, result.Size)
			if result.DecodeFailures > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %d record(s) dropped, content failed to decode\n", result.DecodeFailures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", consts.ArchiveName, "output archive path")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "write the archive to this S3 bucket instead of local disk")
	cmd.Flags().StringVar(&s3Region, "s3-region", "us-east-1", "region of the S3 bucket")

	return cmd
}
