// Package storage implements the binder's local persistence: imported
// documents, folders, and notes live under a data directory next to a JSON
// sidecar index. One process owns the files at a time; there is no locking.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cartable/internal/domain"
	"cartable/internal/util"

	"go.uber.org/zap"
)

// DocumentEntry is one imported document in the index.
type DocumentEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Folder     string    `json:"folder,omitempty"`
	ImportedAt time.Time `json:"imported_at"`
}

// NoteEntry is one note in the index. File is the filename under notes/.
type NoteEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

type index struct {
	Documents []DocumentEntry `json:"documents"`
	Notes     []NoteEntry     `json:"notes"`
}

// Store manages the data directory layout:
//
//	<dataDir>/documents/   imported files, optionally in one folder level
//	<dataDir>/notes/       note text files
//	<dataDir>/index.json   sidecar index
type Store struct {
	docsDir   string
	notesDir  string
	indexPath string
	logger    *zap.Logger
}

// NewStore creates a store rooted at dataDir. Directories and the index
// file are created lazily on first use.
func NewStore(dataDir string, logger *zap.Logger) *Store {
	return &Store{
		docsDir:   filepath.Join(dataDir, "documents"),
		notesDir:  filepath.Join(dataDir, "notes"),
		indexPath: filepath.Join(dataDir, "index.json"),
		logger:    logger,
	}
}

func (s *Store) init() error {
	if err := os.MkdirAll(s.docsDir, 0o755); err != nil {
		return domain.NewInternalError("Failed to create documents directory", err)
	}
	if err := os.MkdirAll(s.notesDir, 0o755); err != nil {
		return domain.NewInternalError("Failed to create notes directory", err)
	}
	if _, err := os.Stat(s.indexPath); os.IsNotExist(err) {
		return s.saveIndex(&index{})
	}
	return nil
}

// loadIndex reads the sidecar index. A missing or corrupt index is replaced
// by an empty one rather than failing the whole operation.
func (s *Store) loadIndex() *index {
	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		return &index{}
	}
	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		s.logger.Warn("Index file is corrupt, starting from an empty index",
			zap.String("path", s.indexPath),
			zap.Error(err))
		return &index{}
	}
	return &idx
}

func (s *Store) saveIndex(idx *index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return domain.NewInternalError("Failed to encode index", err)
	}
	if err := os.WriteFile(s.indexPath, data, 0o644); err != nil {
		return domain.NewInternalError("Failed to write index", err)
	}
	return nil
}

// ImportDocument copies a file into the documents directory and records it
// in the index.
func (s *Store) ImportDocument(path string) (DocumentEntry, error) {
	if err := s.init(); err != nil {
		return DocumentEntry{}, err
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return DocumentEntry{}, domain.NewNotFoundError(fmt.Sprintf("File not found: %s", path))
	}

	name := filepath.Base(path)
	if err := copyFile(path, filepath.Join(s.docsDir, name)); err != nil {
		return DocumentEntry{}, domain.NewInternalError("Failed to copy document", err)
	}

	entry := DocumentEntry{
		ID:         util.NewULID(),
		Name:       name,
		ImportedAt: time.Now(),
	}
	idx := s.loadIndex()
	idx.Documents = append(idx.Documents, entry)
	if err := s.saveIndex(idx); err != nil {
		return DocumentEntry{}, err
	}

	s.logger.Info("Imported document", zap.String("name", name))
	return entry, nil
}

// ListDocuments returns the indexed documents in insertion order.
func (s *Store) ListDocuments() ([]DocumentEntry, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return s.loadIndex().Documents, nil
}

// FindDocumentPath searches the documents directory and all its folders
// for a file with the given name.
func (s *Store) FindDocumentPath(name string) (string, bool) {
	var found string
	_ = filepath.WalkDir(s.docsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found, found != ""
}

// DeleteDocument removes the file and its index entry.
func (s *Store) DeleteDocument(name string) error {
	if err := s.init(); err != nil {
		return err
	}

	path, ok := s.FindDocumentPath(name)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("Document not found: %s", name))
	}
	if err := os.Remove(path); err != nil {
		return domain.NewInternalError("Failed to delete document", err)
	}

	idx := s.loadIndex()
	kept := idx.Documents[:0]
	for _, d := range idx.Documents {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	idx.Documents = kept
	return s.saveIndex(idx)
}

// CreateFolder creates a folder under the documents directory.
func (s *Store) CreateFolder(name string) error {
	if err := s.init(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewInvalidInputError("Folder name must not be empty")
	}
	if err := os.MkdirAll(filepath.Join(s.docsDir, name), 0o755); err != nil {
		return domain.NewInternalError("Failed to create folder", err)
	}
	return nil
}

// ListFolders returns the folder names under the documents directory.
func (s *Store) ListFolders() ([]string, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.docsDir)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list folders", err)
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	return folders, nil
}

// MoveToFolder files a document into a folder and records the folder in
// its index entry.
func (s *Store) MoveToFolder(docName string, folderName string) error {
	if err := s.init(); err != nil {
		return err
	}

	src, ok := s.FindDocumentPath(docName)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("Document not found: %s", docName))
	}
	destDir := filepath.Join(s.docsDir, folderName)
	if info, err := os.Stat(destDir); err != nil || !info.IsDir() {
		return domain.NewNotFoundError(fmt.Sprintf("Folder not found: %s", folderName))
	}
	if err := os.Rename(src, filepath.Join(destDir, docName)); err != nil {
		return domain.NewInternalError("Failed to move document", err)
	}

	idx := s.loadIndex()
	for i := range idx.Documents {
		if idx.Documents[i].Name == docName {
			idx.Documents[i].Folder = folderName
		}
	}
	return s.saveIndex(idx)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
