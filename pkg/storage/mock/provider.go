// Package mock provides an in-memory fake storage provider for testing.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/ironlog-io/ironlog/pkg/storage"
)

// FakeProvider is an in-memory storage provider. It stores all file
// content in maps and exposes its state for test assertions.
type FakeProvider struct {
	mu sync.RWMutex

	// Files stores file metadata by fileID.
	Files map[string]*storage.FileInfo

	// Contents stores raw file content by fileID.
	Contents map[string][]byte

	// Folders maps folderID -> file name -> fileID.
	Folders map[string]map[string]string

	// Err, when set, is returned by every operation. Used to exercise
	// remote-failure paths.
	Err error

	nextID int
}

// Compile-time interface check.
var _ storage.Provider = (*FakeProvider)(nil)

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Files:    make(map[string]*storage.FileInfo),
		Contents: make(map[string][]byte),
		Folders:  make(map[string]map[string]string),
	}
}

// FindFileInFolder looks up a file by name. Returns nil when absent.
func (p *FakeProvider) FindFileInFolder(
	ctx context.Context, name, folderID string,
) (*storage.FileInfo, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.Err != nil {
		return nil, p.Err
	}

	id, ok := p.Folders[folderID][name]
	if !ok {
		return nil, nil
	}
	return p.Files[id], nil
}

// ListJSONFilesInFolder lists every file in the folder. All fake files
// are JSON files.
func (p *FakeProvider) ListJSONFilesInFolder(
	ctx context.Context, folderID string,
) ([]*storage.FileInfo, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.Err != nil {
		return nil, p.Err
	}

	files := []*storage.FileInfo{}
	for _, id := range p.Folders[folderID] {
		files = append(files, p.Files[id])
	}
	return files, nil
}

// CreateJSONFile creates a new file in the folder.
func (p *FakeProvider) CreateJSONFile(
	ctx context.Context, name, folderID string, content []byte,
) (*storage.FileInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}

	p.nextID++
	id := fmt.Sprintf("file-%d", p.nextID)

	info := &storage.FileInfo{ID: id, Name: name}
	p.Files[id] = info
	p.Contents[id] = append([]byte(nil), content...)

	if p.Folders[folderID] == nil {
		p.Folders[folderID] = make(map[string]string)
	}
	p.Folders[folderID][name] = id

	return info, nil
}

// UpdateJSONFile replaces the content of an existing file.
func (p *FakeProvider) UpdateJSONFile(
	ctx context.Context, fileID string, content []byte,
) (*storage.FileInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}

	info, ok := p.Files[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	p.Contents[fileID] = append([]byte(nil), content...)
	return info, nil
}

// ReadJSONFile returns the content of a file.
func (p *FakeProvider) ReadJSONFile(
	ctx context.Context, fileID string,
) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.Err != nil {
		return nil, p.Err
	}

	content, ok := p.Contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return append([]byte(nil), content...), nil
}
