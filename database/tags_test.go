package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCRUD(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)

	tag, err := tags.Create(userID, "reading", strPtr("#00aa00"))
	require.NoError(t, err)
	assert.Equal(t, "reading", tag.Tag.Name)
	assert.Equal(t, int64(0), tag.NoteCount)

	got, err := tags.GetByID(tag.Tag.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tag.Tag.ID, got.Tag.ID)

	missing, err := tags.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := tags.Update(tag.Tag.ID, TagUpdate{Name: strPtr("books")})
	require.NoError(t, err)
	assert.Equal(t, "books", updated.Tag.Name)
	require.NotNil(t, updated.Tag.Color)
	assert.Equal(t, "#00aa00", *updated.Tag.Color)

	// Empty update returns the current state
	same, err := tags.Update(tag.Tag.ID, TagUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "books", same.Tag.Name)

	require.NoError(t, tags.Delete(tag.Tag.ID, userID))
	err = tags.Delete(tag.Tag.ID, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagListOrder(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)

	_, err := tags.Create(userID, "zen", nil)
	require.NoError(t, err)
	_, err = tags.Create(userID, "admin", nil)
	require.NoError(t, err)

	all, err := tags.ListByOwner(userID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "admin", all[0].Tag.Name)
	assert.Equal(t, "zen", all[1].Tag.Name)
}

func TestTagCountExcludesSoftDeleted(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)
	notes := NewNoteRepository(db)

	first, err := notes.Create(userID, nil, "One", "", false, []string{"shared"})
	require.NoError(t, err)
	_, err = notes.Create(userID, nil, "Two", "", false, []string{"shared"})
	require.NoError(t, err)

	all, err := tags.ListByOwner(userID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].NoteCount)

	require.NoError(t, notes.SoftDelete(first.Note.ID, userID))

	tag, err := tags.GetByID(all[0].Tag.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.NoteCount)
}

func TestAssignUnassignIdempotent(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)
	notes := NewNoteRepository(db)

	note, err := notes.Create(userID, nil, "Taggable", "", false, nil)
	require.NoError(t, err)
	tag, err := tags.Create(userID, "label", nil)
	require.NoError(t, err)

	require.NoError(t, tags.Assign(note.Note.ID, tag.Tag.ID))
	require.NoError(t, tags.Assign(note.Note.ID, tag.Tag.ID))

	got, err := notes.GetByID(note.Note.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)

	require.NoError(t, tags.Unassign(note.Note.ID, tag.Tag.ID))
	require.NoError(t, tags.Unassign(note.Note.ID, tag.Tag.ID))

	got, err = notes.GetByID(note.Note.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestTagDeleteCascadesLinks(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)
	notes := NewNoteRepository(db)

	note, err := notes.Create(userID, nil, "Linked", "", false, []string{"temp"})
	require.NoError(t, err)
	require.Len(t, note.Tags, 1)

	require.NoError(t, tags.Delete(note.Tags[0].ID, userID))

	got, err := notes.GetByID(note.Note.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestNotesByTag(t *testing.T) {
	db, userID, cleanup := setupTestDB(t)
	defer cleanup()

	tags := NewTagRepository(db)
	notes := NewNoteRepository(db)

	kept, err := notes.Create(userID, nil, "Kept", "", false, []string{"filter"})
	require.NoError(t, err)
	dropped, err := notes.Create(userID, nil, "Dropped", "", false, []string{"filter"})
	require.NoError(t, err)
	_, err = notes.Create(userID, nil, "Unrelated", "", false, nil)
	require.NoError(t, err)

	require.NoError(t, notes.SoftDelete(dropped.Note.ID, userID))

	tagged, err := tags.NotesByTag(kept.Tags[0].ID)
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "Kept", tagged[0].Title)
}
