package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Download the files of a backup folder",
	Long: `Download the files of a backup folder, one record per file.

Each item opens its own connection, resolves the backup folder below the base
path, walks it recursively and downloads the requested batch. Records are
written as JSON lines; file contents go to --output-dir or an S3 bucket.`,
	Example: `  # All files of company CO655
  backupfetch retrieve --host transfer.example.com --username sftp-user --ask-password --company-code CO655

  # Second batch of 50 dumps
  backupfetch retrieve --company-code CO655 --file-pattern '*.dump' --offset 50 --limit 50

  # Several companies, keep going when one of them fails
  backupfetch retrieve --items items.json --continue-on-fail --s3-bucket backups`,
	Args: cobra.NoArgs,
	RunE: runRetrieve,
}

func init() {
	addItemFlags(retrieveCmd)
	retrieveCmd.Flags().String("items", "", "JSON array or JSON lines file of items (- for stdin)")
	retrieveCmd.Flags().Bool("continue-on-fail", false, "Emit an error record for a failed item and continue")
	retrieveCmd.Flags().StringP("output", "o", "", "Write records to this file instead of stdout")
	retrieveCmd.Flags().String("output-dir", "downloads", "Local directory for downloaded files")
	retrieveCmd.Flags().String("s3-bucket", "", "Store downloaded files in this S3 bucket (overrides S3_BUCKET)")
	retrieveCmd.Flags().String("s3-prefix", "", "Key prefix inside the S3 bucket (overrides S3_PREFIX)")

	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	base, err := baseItem(cmd)
	if err != nil {
		return err
	}

	items := []Item{base}
	if itemsFile, _ := cmd.Flags().GetString("items"); itemsFile != "" {
		items, err = parseItemsFile(itemsFile)
		if err != nil {
			return fmt.Errorf("failed to read items: %w", err)
		}
	}
	if len(items) == 0 {
		log.Println("No items to process.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, err := buildSink(ctx, cmd)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		f, err := createAtomic(output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Error saving %s: %v", output, err)
			}
		}()
		out = f
	}

	continueOnFail, _ := cmd.Flags().GetBool("continue-on-fail")
	retriever := NewRetriever(newRecordWriter(out, sink), base, continueOnFail)
	if err := retriever.Run(ctx, items); err != nil {
		return err
	}

	log.Printf("Processed %d item(s).", len(items))
	return nil
}

func buildSink(ctx context.Context, cmd *cobra.Command) (Sink, error) {
	if bucket, _ := cmd.Flags().GetString("s3-bucket"); bucket != "" {
		cfg.S3Bucket = bucket
	}
	if prefix, _ := cmd.Flags().GetString("s3-prefix"); prefix != "" {
		cfg.S3Prefix = prefix
	}

	if cfg.S3Bucket != "" {
		return newS3Sink(ctx, cfg)
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	return newDirSink(outputDir), nil
}
