package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

// FileStore persists the snapshot as JSON files in a data directory,
// one file per entity kind. Missing files mean empty state.
type FileStore struct {
	dataDir string
	log     *zap.Logger
}

func NewFileStore(dataDir string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dataDir, err)
	}
	return &FileStore{
		dataDir: dataDir,
		log:     log.With(zap.String("store", "file"), zap.String("data_dir", dataDir)),
	}, nil
}

func (s *FileStore) Load(_ context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{}

	if err := s.readFile("users.json", &snapshot.Users); err != nil {
		return nil, err
	}
	if err := s.readFile("bookings.json", &snapshot.Bookings); err != nil {
		return nil, err
	}
	if err := s.readFile("payments.json", &snapshot.Payments); err != nil {
		return nil, err
	}

	s.log.Info("Snapshot loaded",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("bookings", len(snapshot.Bookings)),
		zap.Int("payments", len(snapshot.Payments)),
	)
	return snapshot, nil
}

func (s *FileStore) Save(_ context.Context, snapshot *Snapshot) error {
	if err := s.writeFile("users.json", emptyNotNil(snapshot.Users)); err != nil {
		return err
	}
	if err := s.writeFile("bookings.json", emptyNotNil(snapshot.Bookings)); err != nil {
		return err
	}
	if err := s.writeFile("payments.json", emptyNotNil(snapshot.Payments)); err != nil {
		return err
	}

	s.log.Info("Snapshot saved",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("bookings", len(snapshot.Bookings)),
		zap.Int("payments", len(snapshot.Payments)),
	)
	return nil
}

func (s *FileStore) readFile(name string, out any) error {
	path := filepath.Join(s.dataDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.log.Debug("Snapshot file not found, starting empty", zap.String("file", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) writeFile(name string, in any) error {
	path := filepath.Join(s.dataDir, name)
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// emptyNotNil keeps saved files as [] instead of null for empty state.
func emptyNotNil[T entity.User | entity.Booking | entity.Payment](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
