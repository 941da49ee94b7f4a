package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/samdwyer/dungeonmaze/internal/telemetry"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// PostgresStore keeps saves in a PostgreSQL table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the schema.
func NewPostgresStore(ctx context.Context, connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		floor INTEGER NOT NULL,
		data BYTEA NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save upserts the floor into the slot.
func (s *PostgresStore) Save(ctx context.Context, slot string, m *world.Map) error {
	ctx, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	if err := validSlot(slot); err != nil {
		return err
	}

	query := `
	INSERT INTO saves (slot, floor, data)
	VALUES ($1, $2, $3)
	ON CONFLICT (slot)
	DO UPDATE SET floor = $2, data = $3, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, slot, m.Floor, Encode(m)); err != nil {
		return fmt.Errorf("failed to save floor: %w", err)
	}
	return nil
}

// Load reads the floor stored in the slot.
func (s *PostgresStore) Load(ctx context.Context, slot string) (*world.Map, error) {
	ctx, span := telemetry.Tracer("save").Start(ctx, "save.read")
	defer span.End()

	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = $1`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load floor: %w", err)
	}
	return Decode(data)
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	log.Println("Closing database connection...")
	return s.db.Close()
}
