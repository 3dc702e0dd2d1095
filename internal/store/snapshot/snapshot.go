// Package snapshot persists a memory store to a JSON file after every write.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/internal/store/memory"
)

// Store wraps a memory store and rewrites its snapshot file after each
// successful mutation.
type Store struct {
	*memory.Store

	path string
	mu   sync.Mutex
}

type file struct {
	Boards []memory.BoardDump `json:"boards"`
}

// Open loads path if it exists and returns a store that saves back to it.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("snapshot: path is required")
	}
	s := &Store{Store: memory.New(), path: path}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	s.Load(f.Boards)
	return s, nil
}

func init() {
	core.RegisterStore("snapshot", func(cfg map[string]string) (core.Store, error) {
		s, err := Open(cfg["path"])
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// CreateBoard creates the board and saves the snapshot.
func (s *Store) CreateBoard(ctx context.Context, name string) (core.Board, error) {
	b, err := s.Store.CreateBoard(ctx, name)
	if err != nil {
		return b, err
	}
	return b, s.Save()
}

// Update applies fn and saves the snapshot when it commits.
func (s *Store) Update(ctx context.Context, boardID string, fn func(core.Tx) error) error {
	if err := s.Store.Update(ctx, boardID, fn); err != nil {
		return err
	}
	return s.Save()
}

// Save writes the current state through a temporary file and rename.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(file{Boards: s.Dump()}, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	return nil
}
