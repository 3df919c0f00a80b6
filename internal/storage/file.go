package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// scoreFile is the on-disk layout of a FileStore.
type scoreFile struct {
	HiScore int `yaml:"hi_score"`
}

// FileStore keeps a single high score in a small YAML file. It is used when
// no database is wanted.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first save; ~ expands to the home directory.
func NewFileStore(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore reads the saved high score.
// Returns core.ErrNoHighScore if the file does not exist yet.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, core.ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var sf scoreFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return 0, fmt.Errorf("storage: cannot parse %s: %w", f.path, err)
	}
	return sf.HiScore, nil
}

// SaveHighScore writes the high score, replacing the file atomically.
func (f *FileStore) SaveHighScore(score int) error {
	data, err := yaml.Marshal(scoreFile{HiScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".hiscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
