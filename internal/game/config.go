package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeonmaze/internal/telemetry"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// Save backends.
const (
	SaveFile     = "file"
	SavePostgres = "postgres"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Requested floor size and enemy count. Generation corrects values it
	// cannot use.
	Width   int
	Height  int
	Enemies int

	LightRadius int
	// Floors is the number of floors in a run. The last one has no exit;
	// the run ends by walking back out of its entrance.
	Floors int

	SaveBackend string
	SaveDir     string
	SaveSlot    string
	DatabaseURL string

	// DataDir replaces the embedded tiles.json and enemies.json when set.
	DataDir string

	Debug     bool
	Telemetry telemetry.Options
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Enemies:     world.DefaultEnemyCount,
		LightRadius: 4,
		Floors:      3,
		SaveBackend: SaveFile,
		SaveDir:     "saves",
		SaveSlot:    "default",
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEONMAZE_WIDTH", &cfg.Width},
		{"DUNGEONMAZE_HEIGHT", &cfg.Height},
		{"DUNGEONMAZE_ENEMIES", &cfg.Enemies},
		{"DUNGEONMAZE_LIGHT_RADIUS", &cfg.LightRadius},
		{"DUNGEONMAZE_FLOORS", &cfg.Floors},
	}
	for _, f := range ints {
		v := getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := getenv("DUNGEONMAZE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DUNGEONMAZE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("DUNGEONMAZE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DUNGEONMAZE_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	if v := getenv("DUNGEONMAZE_SAVE"); v != "" {
		cfg.SaveBackend = v
	}
	if v := getenv("DUNGEONMAZE_SAVE_DIR"); v != "" {
		cfg.SaveDir = v
	}
	cfg.DataDir = getenv("DUNGEONMAZE_DATA_DIR")
	if v := getenv("DUNGEONMAZE_SLOT"); v != "" {
		cfg.SaveSlot = v
	}
	cfg.DatabaseURL = getenv("DATABASE_URL")
	cfg.Telemetry = telemetry.Options{
		APIKey:  getenv("HONEYCOMB_DUNGEONMAZE_API_KEY"),
		Dataset: getenv("HONEYCOMB_DUNGEONMAZE_DATASET"),
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("floors must be at least 1, got %d", c.Floors)
	}
	if c.LightRadius < 0 {
		return fmt.Errorf("light radius must not be negative, got %d", c.LightRadius)
	}
	switch c.SaveBackend {
	case SaveFile:
	case SavePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("save backend %q requires DATABASE_URL", c.SaveBackend)
		}
	default:
		return fmt.Errorf("unknown save backend %q", c.SaveBackend)
	}
	return nil
}
