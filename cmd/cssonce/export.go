package main

import (
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/cssonce/cssonce/internal/demo"
	"github.com/cssonce/cssonce/pkg/cssonce"
	"github.com/cssonce/cssonce/pkg/export"
	"github.com/cssonce/cssonce/pkg/vdom"
)

func exportCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo pages and upload them to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return errors.New("--bucket is required")
			}

			client := s3.New(s3.Options{Region: region})
			exporter := export.New(client, bucket, prefix, slog.Default())

			pages := []export.Page{
				{
					Key:   "index.html",
					Title: "cssonce demo",
					Body: func() *vdom.VNode {
						return demo.IndexBody(cssonce.New())
					},
				},
				{
					Key:   "gallery.html",
					Title: "Component gallery",
					Body: func() *vdom.VNode {
						return demo.GalleryBody(cssonce.NewKeyed())
					},
				},
			}

			return exporter.Export(cmd.Context(), pages)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "destination S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "site", "key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	return cmd
}
