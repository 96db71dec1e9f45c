package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"cartable/internal/domain"
	"cartable/internal/util"

	"go.uber.org/zap"
)

// CreateNote writes a note file and records it in the index. The filename
// is derived from the title; the index keeps the original title.
func (s *Store) CreateNote(title string, content string) (NoteEntry, error) {
	if err := s.init(); err != nil {
		return NoteEntry{}, err
	}

	filename := sanitizeTitle(title) + ".txt"
	if err := os.WriteFile(filepath.Join(s.notesDir, filename), []byte(content), 0o644); err != nil {
		return NoteEntry{}, domain.NewInternalError("Failed to write note", err)
	}

	entry := NoteEntry{
		ID:        util.NewULID(),
		Title:     title,
		File:      filename,
		CreatedAt: time.Now(),
	}
	idx := s.loadIndex()
	idx.Notes = append(idx.Notes, entry)
	if err := s.saveIndex(idx); err != nil {
		return NoteEntry{}, err
	}

	s.logger.Info("Created note", zap.String("title", title))
	return entry, nil
}

// ListNotes returns the indexed notes in insertion order.
func (s *Store) ListNotes() ([]NoteEntry, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return s.loadIndex().Notes, nil
}

// notePath resolves a note title to its file path through the index.
func (s *Store) notePath(title string) (string, bool) {
	for _, n := range s.loadIndex().Notes {
		if n.Title == title {
			return filepath.Join(s.notesDir, n.File), true
		}
	}
	return "", false
}

// ReadNote returns the content of the note with the given title.
func (s *Store) ReadNote(title string) (string, error) {
	if err := s.init(); err != nil {
		return "", err
	}
	path, ok := s.notePath(title)
	if !ok {
		return "", domain.NewNotFoundError(fmt.Sprintf("Note not found: %s", title))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewNotFoundError(fmt.Sprintf("Note not found: %s", title))
	}
	return string(data), nil
}

// UpdateNote replaces the content of an existing note.
func (s *Store) UpdateNote(title string, content string) error {
	if err := s.init(); err != nil {
		return err
	}
	path, ok := s.notePath(title)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("Note not found: %s", title))
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return domain.NewInternalError("Failed to update note", err)
	}
	return nil
}

// DeleteNote removes the note file and its index entry.
func (s *Store) DeleteNote(title string) error {
	if err := s.init(); err != nil {
		return err
	}

	idx := s.loadIndex()
	found := false
	kept := idx.Notes[:0]
	for _, n := range idx.Notes {
		if n.Title == title {
			found = true
			// A missing file is fine, the entry still goes away.
			_ = os.Remove(filepath.Join(s.notesDir, n.File))
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return domain.NewNotFoundError(fmt.Sprintf("Note not found: %s", title))
	}
	idx.Notes = kept
	return s.saveIndex(idx)
}

// sanitizeTitle reduces a note title to a safe filename stem.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	safe := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if safe == "" {
		safe = "note"
	}
	return safe
}
