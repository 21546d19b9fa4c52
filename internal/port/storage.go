package port

import (
	"context"
	"io"
)

// ArchiveObject is a rendered invoice headed for the archive bucket.
type ArchiveObject struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
	// Filename is served back as the attachment name on download.
	Filename string
	Metadata map[string]string
}

// ArchivedObject is where an invoice landed.
type ArchivedObject struct {
	Location string
	ETag     string
}

// ObjectStorage archives rendered invoices and hands out time-limited links to them.
type ObjectStorage interface {
	Upload(ctx context.Context, obj ArchiveObject) (*ArchivedObject, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
