package game

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmaze/internal/entity"
	"github.com/samdwyer/dungeonmaze/internal/gamedata"
	"github.com/samdwyer/dungeonmaze/internal/save"
	"github.com/samdwyer/dungeonmaze/internal/telemetry"
	"github.com/samdwyer/dungeonmaze/internal/ui"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// Movement deltas.
var (
	dirUp    = world.Point{X: 0, Y: -1}
	dirDown  = world.Point{X: 0, Y: 1}
	dirLeft  = world.Point{X: -1, Y: 0}
	dirRight = world.Point{X: 1, Y: 0}
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	styles   *gamedata.TileStyleRegistry
	enemies  *gamedata.EnemyRegistry
	store    save.Store
	rng      *rand.Rand

	floor   *world.Map
	player  *entity.Player
	state   State
	message ui.Message
	running bool
}

// New creates a new game instance with a terminal screen and the configured
// save backend.
func New(ctx context.Context, cfg Config) (*Game, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		store.Close()
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.styles)
	return g, nil
}

// newGame builds everything but the screen.
func newGame(cfg Config, store save.Store) (*Game, error) {
	var data fs.FS
	if cfg.DataDir != "" {
		data = os.DirFS(cfg.DataDir)
	}

	styles, err := gamedata.LoadTileStyleRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("load tile styles: %w", err)
	}
	enemies, err := gamedata.LoadEnemyRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:     cfg,
		styles:  styles,
		enemies: enemies,
		store:   store,
		rng:     rand.New(rand.NewSource(seed)),
		state:   StateExplore,
		running: true,
	}, nil
}

// OpenStore returns the save backend selected by cfg.
func OpenStore(ctx context.Context, cfg Config) (save.Store, error) {
	switch cfg.SaveBackend {
	case SavePostgres:
		return save.NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return save.NewFileStore(cfg.SaveDir)
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.start(ctx)
	initSpan.End()
	if err != nil {
		g.Close()
		return err
	}

	for g.running {
		g.renderer.Render(g.floor, g.player, g.message)
		g.handleInput(ctx)
	}

	g.Close()
	return nil
}

// start creates the player and the first floor.
func (g *Game) start(ctx context.Context) error {
	g.player = entity.NewPlayer(world.NoPoint)
	g.state = StateExplore
	return g.enterFloor(ctx, 1)
}

// enterFloor generates floor n, places the player at its entrance and
// reveals the surroundings.
func (g *Game) enterFloor(ctx context.Context, n int) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "floor.enter")
	defer span.End()

	m, err := g.generateFloor(ctx, n)
	if err != nil {
		return err
	}

	g.floor = m
	g.player.Pos = m.Player
	g.player.HasKey = false
	if err := world.RevealMap(ctx, m, g.cfg.LightRadius); err != nil {
		return fmt.Errorf("reveal floor %d: %w", n, err)
	}

	span.SetAttributes(
		attribute.Int("floor", n),
		attribute.Bool("floor.final", m.Exit == world.NoPoint),
	)
	g.say(fmt.Sprintf("You enter floor %d.", n))
	return nil
}

// floorPlans lists the maps tried for floor n, in order: the configured
// size twice, each with a fresh carve, then the default size.
func (g *Game) floorPlans(n int) []*world.Map {
	return []*world.Map{
		world.NewMap(n, g.cfg.Width, g.cfg.Height, g.cfg.Enemies),
		world.NewMap(n, g.cfg.Width, g.cfg.Height, g.cfg.Enemies),
		world.NewMap(n, world.DefaultWidth, world.DefaultHeight, world.DefaultEnemyCount),
	}
}

// generateFloor builds floor n from the first plan that generates cleanly.
func (g *Game) generateFloor(ctx context.Context, n int) (*world.Map, error) {
	opts := world.GenerateOptions{
		GenerateExit: n < g.cfg.Floors,
		Rand:         g.rng,
	}

	var err error
	for i, m := range g.floorPlans(n) {
		if err = world.Generate(ctx, m, opts); err == nil {
			return m, nil
		}
		log.Printf("Warning: floor %d attempt %d at %dx%d failed: %v", n, i+1, m.Width, m.Height, err)
	}
	return nil, fmt.Errorf("generate floor %d: %w", n, err)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.step(ctx, dirUp)
	case tcell.KeyDown:
		g.step(ctx, dirDown)
	case tcell.KeyLeft:
		g.step(ctx, dirLeft)
	case tcell.KeyRight:
		g.step(ctx, dirRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			g.step(ctx, dirUp)
		case 's', 'S':
			g.step(ctx, dirDown)
		case 'a', 'A':
			g.step(ctx, dirLeft)
		case 'd', 'D':
			g.step(ctx, dirRight)
		case 'p', 'P':
			g.report(g.saveGame(ctx), "Game saved.")
		case 'l', 'L':
			g.report(g.loadGame(ctx), "Game loaded.")
		}
	}
}

func (g *Game) report(err error, ok string) {
	if err != nil {
		log.Printf("Error: %v", err)
		g.say(err.Error())
		return
	}
	g.say(ok)
}

// say sets the message line in the default color.
func (g *Game) say(text string) {
	g.message = ui.Message{Text: text}
}

// step attempts to move the player by d and applies whatever is on the
// destination tile.
func (g *Game) step(ctx context.Context, d world.Point) {
	if g.state != StateExplore {
		return
	}

	target := g.player.Pos.Add(d)
	if !g.floor.Tile(target).IsPassable() {
		return
	}

	ev := ConsumeTile(g.floor, target, g.player, g.enemies, g.rng)
	if ev.Message != "" {
		g.message = ui.Message{Text: ev.Message, Color: ev.Color}
	}
	if ev.Blocked() {
		return
	}

	g.player.Move(d.X, d.Y)
	g.floor.Player = g.player.Pos
	if err := world.RevealMap(ctx, g.floor, g.cfg.LightRadius); err != nil {
		log.Printf("Error: reveal: %v", err)
	}

	switch ev.Kind {
	case EventExitUnlocked:
		if !g.player.SpendStamina(entity.FloorStaminaCost) {
			g.player.TakeDamage(entity.FloorStaminaCost)
		}
		if err := g.enterFloor(ctx, g.floor.Floor+1); err != nil {
			log.Printf("Error: %v", err)
			g.say(err.Error())
			g.running = false
			return
		}
	case EventEscaped:
		g.state = StateEscaped
	}

	if !g.player.IsAlive() {
		g.state = StateDead
		g.say("You have died.")
	}
}

// saveGame writes the current floor to the configured slot.
func (g *Game) saveGame(ctx context.Context) error {
	if err := g.store.Save(ctx, g.cfg.SaveSlot, g.floor); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// loadGame replaces the current floor with the one in the configured slot.
// Player pools are kept; the key is held if it has been picked up and the
// exit is still locked.
func (g *Game) loadGame(ctx context.Context) error {
	m, err := g.store.Load(ctx, g.cfg.SaveSlot)
	if errors.Is(err, save.ErrNotFound) {
		return fmt.Errorf("no saved game in slot %q", g.cfg.SaveSlot)
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	g.floor = m
	g.player.Pos = m.Player
	g.player.HasKey = m.Count(world.TileDoorKey) == 0 && !m.ExitUnlocked
	g.state = StateExplore
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			log.Printf("Error closing save store: %v", err)
		}
		g.store = nil
	}
}
