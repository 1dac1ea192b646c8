package ports

import (
	"context"
	"io"
)

// FileUpload is a file received from a client, ready to be stored.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile is what the blob store reports back after an upload.
type StoredFile struct {
	URL      string
	Size     int64
	MimeType string
}

// BlobStore stores uploaded files and returns a public URL for them.
type BlobStore interface {
	Upload(ctx context.Context, file FileUpload) (*StoredFile, error)
}
