package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall-notes/models"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "recall-export-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "shopping.md")
	note := &models.NoteWithRelations{
		Note: models.Note{
			Title:     "Shopping",
			Content:   "milk\neggs\n\nbread",
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		Tags: []models.TagInfo{
			{Name: "errands"},
			{Name: "home"},
		},
	}

	require.NoError(t, WriteNote(path, note))

	doc, err := ReadNote(path)
	require.NoError(t, err)

	assert.Equal(t, "Shopping", doc.Title)
	assert.Equal(t, "milk\neggs\n\nbread", doc.Content)
	assert.Equal(t, []string{"errands", "home"}, doc.Tags)
}

func TestReadNoteWithoutFrontMatter(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "recall-export-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "loose-thoughts.md")
	require.NoError(t, os.WriteFile(path, []byte("no header here\n"), 0644))

	doc, err := ReadNote(path)
	require.NoError(t, err)

	assert.Equal(t, "loose-thoughts", doc.Title)
	assert.Equal(t, "no header here", doc.Content)
	assert.Empty(t, doc.Tags)
}

func TestReadNoteMalformedFrontMatter(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "recall-export-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// Opening fence but no closing one: the whole file is content
	path := filepath.Join(tmpDir, "broken.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: dangling\n"), 0644))

	doc, err := ReadNote(path)
	require.NoError(t, err)
	assert.Equal(t, "broken", doc.Title)
}
