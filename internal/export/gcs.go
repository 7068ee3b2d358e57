package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"cloud.google.com/go/storage"
)

const uploadTimeout = 2 * time.Minute

// GCSUploader stores rendered exports in a Cloud Storage bucket.
type GCSUploader struct {
	client *storage.Client
	bucket string
}

// NewGCSUploader creates an uploader using Application Default
// Credentials.
func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSUploader{client: client, bucket: bucket}, nil
}

// ObjectName is where a user's export is stored inside the bucket.
func ObjectName(userID string, file *File) string {
	return path.Join("exports", userID, file.Filename)
}

// Upload writes the file under exports/{userID}/ and returns the object
// name.
func (u *GCSUploader) Upload(ctx context.Context, userID string, file *File) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	name := ObjectName(userID, file)
	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = file.ContentType

	if _, err := io.Copy(w, bytes.NewReader(file.Data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy export to GCS writer: %w", err)
	}
	// Close finalizes the upload.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload of %s: %w", name, err)
	}
	return name, nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}
