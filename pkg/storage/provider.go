// Package storage defines the remote file-store interface the service is
// built on: a single folder of JSON documents addressed by name, with
// opaque provider file IDs.
package storage

import "context"

// FileInfo is the metadata returned by find/list operations.
type FileInfo struct {
	// ID is the provider-assigned file identifier.
	ID string

	// Name is the file name within the folder (e.g. "2024-05-01.json").
	Name string

	// MD5Checksum is the provider-reported content checksum, when available.
	MD5Checksum string
}

// Provider is the storage backend for a single folder of JSON documents.
// All payloads are raw JSON document bytes; callers own encoding and
// decoding of their document types.
type Provider interface {
	// FindFileInFolder looks up a file by exact name within a folder.
	// Returns nil with no error when the file does not exist.
	FindFileInFolder(ctx context.Context, name, folderID string) (*FileInfo, error)

	// ListJSONFilesInFolder lists all JSON files in a folder.
	ListJSONFilesInFolder(ctx context.Context, folderID string) ([]*FileInfo, error)

	// CreateJSONFile creates a new JSON file in a folder with the given
	// content, returning the created file's metadata.
	CreateJSONFile(ctx context.Context, name, folderID string, content []byte) (*FileInfo, error)

	// UpdateJSONFile replaces the content of an existing file in place.
	UpdateJSONFile(ctx context.Context, fileID string, content []byte) (*FileInfo, error)

	// ReadJSONFile downloads the full content of a file.
	ReadJSONFile(ctx context.Context, fileID string) ([]byte, error)
}
