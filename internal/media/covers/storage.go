// Package covers provides filesystem storage for uploaded cover images.
package covers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mediatrackapp/mediatrack-server/internal/id"
)

// allowedExtensions is the upload whitelist. Anything else is rejected
// before touching the filesystem.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Storage manages uploaded cover files under a single directory.
// Thread-safe for concurrent operations.
type Storage struct {
	basePath string
	mu       sync.RWMutex // Protects file operations
}

// NewStorage creates a Storage rooted at {basePath}/uploads, creating the
// directory if needed.
func NewStorage(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}

	storagePath := filepath.Join(basePath, "uploads")
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &Storage{basePath: storagePath}, nil
}

// AllowedExtension reports whether the extension of name is accepted.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Save stores uploaded image data under a random filename that keeps the
// original extension, and returns that filename.
func (s *Storage) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file extension %q not allowed", ext)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image data cannot be empty")
	}

	name, err := id.Generate("cover")
	if err != nil {
		return "", err
	}
	filename := name + ext

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(filepath.Join(s.basePath, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filename, nil
}

// Get retrieves a stored cover by filename.
func (s *Storage) Get(filename string) ([]byte, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return nil, fmt.Errorf("invalid filename %q", filename)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.basePath, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cover not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}

// Exists checks whether a stored cover is present.
func (s *Storage) Exists(filename string) bool {
	if filename == "" || filename != filepath.Base(filename) {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(filepath.Join(s.basePath, filename))
	return err == nil
}

// Delete removes a stored cover. Deleting a missing file is not an error.
func (s *Storage) Delete(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename %q", filename)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.basePath, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}

// Dir returns the directory uploads are served from.
func (s *Storage) Dir() string {
	return s.basePath
}
