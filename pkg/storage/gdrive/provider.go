package gdrive

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/ironlog-io/ironlog/pkg/storage"
)

const jsonMimeType = "application/json"

// Compile-time interface check.
var _ storage.Provider = (*Service)(nil)

// FindFileInFolder looks up a file by exact name within a folder.
// Returns nil when no file matches.
func (s *Service) FindFileInFolder(
	ctx context.Context, name, folderID string,
) (*storage.FileInfo, error) {
	query := fmt.Sprintf(
		"name = '%s' and '%s' in parents and trashed = false",
		name, folderID)

	resp, err := s.Drive.Files.List().
		Q(query).
		Fields("files(id, name, md5Checksum)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	if len(resp.Files) == 0 {
		return nil, nil
	}
	return convertFile(resp.Files[0]), nil
}

// ListJSONFilesInFolder lists all JSON files in a folder.
func (s *Service) ListJSONFilesInFolder(
	ctx context.Context, folderID string,
) ([]*storage.FileInfo, error) {
	query := fmt.Sprintf(
		"'%s' in parents and mimeType = '%s' and trashed = false",
		folderID, jsonMimeType)

	resp, err := s.Drive.Files.List().
		Q(query).
		Fields("files(id, name, md5Checksum)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	files := make([]*storage.FileInfo, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, convertFile(f))
	}
	return files, nil
}

// CreateJSONFile creates a new JSON file in a folder.
func (s *Service) CreateJSONFile(
	ctx context.Context, name, folderID string, content []byte,
) (*storage.FileInfo, error) {
	meta := &drive.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: jsonMimeType,
	}

	f, err := s.Drive.Files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType(jsonMimeType)).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}

	return convertFile(f), nil
}

// UpdateJSONFile replaces the content of an existing file in place.
func (s *Service) UpdateJSONFile(
	ctx context.Context, fileID string, content []byte,
) (*storage.FileInfo, error) {
	f, err := s.Drive.Files.Update(fileID, &drive.File{}).
		Media(bytes.NewReader(content), googleapi.ContentType(jsonMimeType)).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error updating file: %w", err)
	}

	return convertFile(f), nil
}

// ReadJSONFile downloads the full content of a file.
func (s *Service) ReadJSONFile(
	ctx context.Context, fileID string,
) ([]byte, error) {
	resp, err := s.Drive.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("error downloading file: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	return content, nil
}

func convertFile(f *drive.File) *storage.FileInfo {
	return &storage.FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MD5Checksum: f.Md5Checksum,
	}
}
