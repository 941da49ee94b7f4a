package save

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmaze/internal/telemetry"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// Store defines the interface for floor persistence.
type Store interface {
	Save(ctx context.Context, slot string, m *world.Map) error
	Load(ctx context.Context, slot string) (*world.Map, error)
	Close() error
}

// FileStore keeps one file per slot in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) (string, error) {
	if err := validSlot(slot); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, slot+".sav"), nil
}

// Save writes the floor to the slot, replacing any previous save.
func (s *FileStore) Save(ctx context.Context, slot string, m *world.Map) error {
	_, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	path, err := s.path(slot)
	if err != nil {
		return err
	}
	data := Encode(m)
	span.SetAttributes(attribute.String("save.slot", slot), attribute.Int("save.bytes", len(data)))

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save %s: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit save %s: %w", slot, err)
	}
	return nil
}

// Load reads the floor stored in the slot.
func (s *FileStore) Load(ctx context.Context, slot string) (*world.Map, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.read")
	defer span.End()
	span.SetAttributes(attribute.String("save.slot", slot))

	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", slot, err)
	}
	return Decode(data)
}

// Close is a no-op for files.
func (s *FileStore) Close() error {
	return nil
}

func validSlot(slot string) error {
	if slot == "" || strings.ContainsAny(slot, `/\`) || slot == "." || slot == ".." {
		return fmt.Errorf("invalid save slot %q", slot)
	}
	return nil
}
