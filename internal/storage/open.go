package storage

import (
	"fmt"
	"os/exec"
	"runtime"

	"cartable/internal/domain"
)

// OpenDocument hands the document to the operating system's default viewer.
func (s *Store) OpenDocument(name string) error {
	if err := s.init(); err != nil {
		return err
	}
	path, ok := s.FindDocumentPath(name)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("Document not found: %s", name))
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return domain.NewInternalError("Failed to open document", err)
	}
	return nil
}
