package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeProviderLifecycle(t *testing.T) {
	ctx := context.Background()
	p := NewFakeProvider()

	// Absent files are nil, not errors.
	info, err := p.FindFileInFolder(ctx, "2024-05-01.json", "folder-1")
	require.NoError(t, err)
	assert.Nil(t, info)

	created, err := p.CreateJSONFile(ctx, "2024-05-01.json", "folder-1", []byte(`{"a":1}`))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "2024-05-01.json", created.Name)

	found, err := p.FindFileInFolder(ctx, "2024-05-01.json", "folder-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	content, err := p.ReadJSONFile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), content)

	_, err = p.UpdateJSONFile(ctx, created.ID, []byte(`{"a":2}`))
	require.NoError(t, err)
	content, err = p.ReadJSONFile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), content)

	files, err := p.ListJSONFilesInFolder(ctx, "folder-1")
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// Other folders are empty.
	files, err = p.ListJSONFilesInFolder(ctx, "folder-2")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFakeProviderErrInjection(t *testing.T) {
	ctx := context.Background()
	p := NewFakeProvider()
	p.Err = assert.AnError

	_, err := p.FindFileInFolder(ctx, "x", "folder-1")
	assert.ErrorIs(t, err, assert.AnError)
	_, err = p.CreateJSONFile(ctx, "x", "folder-1", nil)
	assert.ErrorIs(t, err, assert.AnError)
	_, err = p.ListJSONFilesInFolder(ctx, "folder-1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFakeProviderUpdateMissingFile(t *testing.T) {
	ctx := context.Background()
	p := NewFakeProvider()

	_, err := p.UpdateJSONFile(ctx, "missing", []byte("{}"))
	assert.Error(t, err)
	_, err = p.ReadJSONFile(ctx, "missing")
	assert.Error(t, err)
}
