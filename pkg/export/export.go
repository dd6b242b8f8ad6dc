// Package export renders pages once each and uploads them to S3 as a
// static site. Every page builds its own fresh trackers, so each exported
// document carries its own style blocks.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cssonce/cssonce/pkg/render"
	"github.com/cssonce/cssonce/pkg/vdom"
)

// ObjectPutter is the slice of the S3 client the exporter needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Page is one document to export. Body must construct any emit-once
// trackers it needs internally; the exporter calls it exactly once.
type Page struct {
	Key   string // object key relative to the prefix, e.g. "index.html"
	Title string
	Body  func() *vdom.VNode
}

// Exporter uploads rendered pages to an S3 bucket.
type Exporter struct {
	client   ObjectPutter
	bucket   string
	prefix   string
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates an Exporter writing under bucket/prefix.
func New(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		renderer: render.NewRenderer(),
		logger:   logger,
	}
}

// Export renders and uploads each page. The first failure aborts the run.
func (e *Exporter) Export(ctx context.Context, pages []Page) error {
	for _, page := range pages {
		var buf bytes.Buffer
		if err := e.renderer.RenderPage(&buf, render.PageData{
			Title: page.Title,
			Body:  page.Body(),
		}); err != nil {
			return fmt.Errorf("render %s: %w", page.Key, err)
		}

		key := path.Join(e.prefix, page.Key)
		_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(e.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String("text/html; charset=utf-8"),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}

		e.logger.Info("exported page", "key", key, "bytes", buf.Len())
	}
	return nil
}
