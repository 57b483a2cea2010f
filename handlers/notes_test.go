package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall-notes/app"
	"recall-notes/database"
	"recall-notes/handlers"
	"recall-notes/middleware"
	"recall-notes/services"
)

// setupTestApp wires a real database behind the full handler stack so
// requests exercise the same path production traffic takes.
func setupTestApp(t *testing.T) (*fiber.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "recall-handlers-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := database.New(dbPath, 4)
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	users := database.NewUserRepository(db)
	user, err := users.Create("tester", "tester@example.com", "not-a-real-hash")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	a := app.New(
		services.NewNoteService(database.NewNoteRepository(db)),
		services.NewFolderService(database.NewFolderRepository(db)),
		services.NewTagService(database.NewTagRepository(db)),
		services.NewAttachmentService(database.NewAttachmentRepository(db)),
		services.NewUserService(users),
		logger,
	)

	srv := fiber.New()
	api := srv.Group("/api", middleware.CurrentUser(user.ID))

	api.Get("/notes/search", handlers.SearchNotes(a))
	api.Get("/notes/pinned", handlers.PinnedNotes(a))
	api.Get("/notes", handlers.ListNotes(a))
	api.Post("/notes", handlers.CreateNote(a))
	api.Get("/notes/:id", handlers.GetNote(a))
	api.Put("/notes/:id", handlers.UpdateNote(a))
	api.Delete("/notes/:id", handlers.DeleteNote(a))
	api.Post("/notes/:id/restore", handlers.RestoreNote(a))
	api.Post("/notes/:id/pin", handlers.TogglePin(a))
	api.Post("/notes/:id/archive", handlers.ToggleArchive(a))

	api.Get("/folders/tree", handlers.FolderTree(a))
	api.Post("/folders", handlers.CreateFolder(a))
	api.Delete("/folders/:id", handlers.DeleteFolder(a))

	api.Get("/tags", handlers.ListTags(a))

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return srv, cleanup
}

func doJSON(t *testing.T, srv *fiber.App, method, path string, payload any) (int, map[string]interface{}) {
	t.Helper()

	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestNoteLifecycle(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	// Create a note with a tag
	status, body := doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"title":   "Shopping",
		"content": "milk, eggs",
		"tags":    []string{"errands"},
	})
	require.Equal(t, http.StatusCreated, status)

	note := body["note"].(map[string]interface{})["note"].(map[string]interface{})
	noteID := int64(note["note_id"].(float64))
	assert.Equal(t, "Shopping", note["title"])

	tags := body["note"].(map[string]interface{})["tags"].([]interface{})
	require.Len(t, tags, 1)
	assert.Equal(t, "errands", tags[0].(map[string]interface{})["name"])

	idPath := "/api/notes/" + jsonID(noteID)

	// Toggle pin
	status, body = doJSON(t, srv, http.MethodPost, idPath+"/pin", nil)
	require.Equal(t, http.StatusOK, status)
	pinned := body["note"].(map[string]interface{})["note"].(map[string]interface{})["is_pinned"].(bool)
	assert.True(t, pinned)

	status, body = doJSON(t, srv, http.MethodGet, "/api/notes/pinned", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["notes"].([]interface{}), 1)

	// Soft delete hides the note from reads
	status, _ = doJSON(t, srv, http.MethodDelete, idPath, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, srv, http.MethodGet, idPath, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, srv, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, status)

	// Restore brings it back
	status, _ = doJSON(t, srv, http.MethodPost, idPath+"/restore", nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, srv, http.MethodGet, idPath, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Shopping", body["note"].(map[string]interface{})["note"].(map[string]interface{})["title"])
}

func TestCreateNoteValidation(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"content": "no title here",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "title")
}

func TestUpdateNotePartialViaAPI(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"title":   "Draft",
		"content": "v1",
	})
	require.Equal(t, http.StatusCreated, status)
	noteID := int64(body["note"].(map[string]interface{})["note"].(map[string]interface{})["note_id"].(float64))

	status, body = doJSON(t, srv, http.MethodPut, "/api/notes/"+jsonID(noteID), map[string]interface{}{
		"content": "v2",
	})
	require.Equal(t, http.StatusOK, status)

	updated := body["note"].(map[string]interface{})["note"].(map[string]interface{})
	assert.Equal(t, "Draft", updated["title"])
	assert.Equal(t, "v2", updated["content"])
}

func TestSearchNotesEndpoint(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	status, _ := doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"title": "Grocery list", "content": "apples",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, srv, http.MethodGet, "/api/notes/search?q=grocery", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["notes"].([]interface{}), 1)

	// Missing query is rejected, not treated as a note id
	status, _ = doJSON(t, srv, http.MethodGet, "/api/notes/search", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFolderEndpoints(t *testing.T) {
	srv, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := doJSON(t, srv, http.MethodPost, "/api/folders", map[string]interface{}{
		"name": "Work",
	})
	require.Equal(t, http.StatusCreated, status)
	folderID := int64(body["folder"].(map[string]interface{})["folder"].(map[string]interface{})["folder_id"].(float64))

	status, _ = doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"title":     "Filed",
		"folder_id": folderID,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, srv, http.MethodGet, "/api/folders/tree", nil)
	require.Equal(t, http.StatusOK, status)
	roots := body["folders"].([]interface{})
	require.Len(t, roots, 1)
	assert.Equal(t, float64(1), roots[0].(map[string]interface{})["note_count"])

	// Deleting a folder that still holds a note fails
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/folders/"+jsonID(folderID), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
