package bookmarkstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Persistence stores the bookmark state between sessions. A missing
// snapshot is not an error; Load returns an empty state.
type Persistence interface {
	Load() (map[string]bool, error)
	Save(state map[string]bool) error
}

// FilePersistence keeps the state as a JSON snapshot on disk
type FilePersistence struct {
	path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

func (p *FilePersistence) Load() (map[string]bool, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, err
	}

	state := map[string]bool{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func (p *FilePersistence) Save(state map[string]bool) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(p.path, data, 0o644)
}
