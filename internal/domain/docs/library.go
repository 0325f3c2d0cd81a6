// Package docs defines the document library the report artifacts live in.
package docs

import "context"

// Library is the document store interface the report flows depend on. It
// decouples the application logic from the concrete document service client.
type Library interface {
	// ListFiles returns the file names directly inside the folder.
	ListFiles(ctx context.Context, folder string) ([]string, error)
	// Download fetches the raw bytes of a named file.
	Download(ctx context.Context, folder, name string) ([]byte, error)
	// Upload stores content under the name, overwriting any existing file.
	Upload(ctx context.Context, folder, name string, content []byte) error
}
