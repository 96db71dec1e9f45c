package storage

import (
	"os"
	"path/filepath"
	"testing"

	"cartable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir, zap.NewNop()), dir
}

func writeSourceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportAndListDocuments(t *testing.T) {
	store, _ := newTestStore(t)
	src := writeSourceFile(t, "lecture.txt", "lecture content")

	entry, err := store.ImportDocument(src)
	require.NoError(t, err)
	assert.Equal(t, "lecture.txt", entry.Name)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.ImportedAt.IsZero())

	docs, err := store.ListDocuments()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "lecture.txt", docs[0].Name)

	path, ok := store.FindDocumentPath("lecture.txt")
	require.True(t, ok)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lecture content", string(data))
}

func TestImportDocument_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.ImportDocument(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestDeleteDocument(t *testing.T) {
	store, _ := newTestStore(t)
	src := writeSourceFile(t, "gone.txt", "x")
	_, err := store.ImportDocument(src)
	require.NoError(t, err)

	require.NoError(t, store.DeleteDocument("gone.txt"))

	_, ok := store.FindDocumentPath("gone.txt")
	assert.False(t, ok)
	docs, err := store.ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, docs)

	err = store.DeleteDocument("gone.txt")
	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestFoldersAndMove(t *testing.T) {
	store, _ := newTestStore(t)
	src := writeSourceFile(t, "filed.txt", "x")
	_, err := store.ImportDocument(src)
	require.NoError(t, err)

	require.NoError(t, store.CreateFolder("biology"))
	folders, err := store.ListFolders()
	require.NoError(t, err)
	assert.Equal(t, []string{"biology"}, folders)

	require.NoError(t, store.MoveToFolder("filed.txt", "biology"))

	// Still findable through the recursive search.
	path, ok := store.FindDocumentPath("filed.txt")
	require.True(t, ok)
	assert.Contains(t, path, "biology")

	docs, err := store.ListDocuments()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "biology", docs[0].Folder)
}

func TestCreateFolder_EmptyName(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.CreateFolder("   ")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
}

func TestMoveToFolder_MissingFolder(t *testing.T) {
	store, _ := newTestStore(t)
	src := writeSourceFile(t, "doc.txt", "x")
	_, err := store.ImportDocument(src)
	require.NoError(t, err)

	err = store.MoveToFolder("doc.txt", "nowhere")
	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestNoteLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	entry, err := store.CreateNote("Bio: photosynthesis!", "chlorophyll")
	require.NoError(t, err)
	assert.Equal(t, "Bio_photosynthesis.txt", entry.File)

	content, err := store.ReadNote("Bio: photosynthesis!")
	require.NoError(t, err)
	assert.Equal(t, "chlorophyll", content)

	require.NoError(t, store.UpdateNote("Bio: photosynthesis!", "updated"))
	content, err = store.ReadNote("Bio: photosynthesis!")
	require.NoError(t, err)
	assert.Equal(t, "updated", content)

	notes, err := store.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Bio: photosynthesis!", notes[0].Title)

	require.NoError(t, store.DeleteNote("Bio: photosynthesis!"))
	_, err = store.ReadNote("Bio: photosynthesis!")
	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
}

func TestNote_MissingOperations(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.ReadNote("ghost")
	assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	assert.True(t, domain.IsCode(store.UpdateNote("ghost", "x"), domain.ErrNotFound))
	assert.True(t, domain.IsCode(store.DeleteNote("ghost"), domain.ErrNotFound))
}

func TestIndexSurvivesReload(t *testing.T) {
	store, dir := newTestStore(t)
	src := writeSourceFile(t, "persist.txt", "x")
	_, err := store.ImportDocument(src)
	require.NoError(t, err)
	_, err = store.CreateNote("kept", "body")
	require.NoError(t, err)

	reopened := NewStore(dir, zap.NewNop())
	docs, err := reopened.ListDocuments()
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	notes, err := reopened.ListNotes()
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestCorruptIndexRecovered(t *testing.T) {
	store, dir := newTestStore(t)
	_, err := store.ListDocuments() // creates layout
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.json"), []byte("{broken"), 0o644))

	docs, err := store.ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with space", "with_space"},
		{"slash/and:junk", "slashandjunk"},
		{"  ", "note"},
		{"***", "note"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeTitle(tt.in), tt.in)
	}
}
