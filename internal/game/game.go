package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/gamedata"
	"github.com/samdwyer/fogmaze/internal/telemetry"
	"github.com/samdwyer/fogmaze/internal/ui"
)

// Game ties a Session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	messages gamedata.Messages
	cfg      Config
	session  *Session
	status   string
	running  bool
}

// New creates a new game on the real terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen creates a game drawing to the given screen.
func NewWithScreen(screen *ui.Screen, cfg Config) (*Game, error) {
	tiles, err := gamedata.LoadTileSet()
	if err != nil {
		return nil, err
	}
	messages, err := gamedata.LoadMessages()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, tiles),
		messages: messages,
		cfg:      cfg,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()

		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		g.handleEvent(ctx, ev)
	}

	if g.session.State() == StateWon {
		g.status = g.messages.Won
		g.render()
		g.waitForKey()
	}

	log.WithFields(log.Fields{
		"session": g.session.ID(),
		"state":   g.session.State(),
		"moves":   g.session.Moves(),
	}).Info("game over")
	return nil
}

// init generates the maze inside a traced span.
func (g *Game) init(ctx context.Context) error {
	ctx, initSpan := telemetry.Tracer("game").Start(ctx, "game.init")
	defer initSpan.End()

	session, err := NewSession(ctx, g.cfg)
	if err != nil {
		initSpan.RecordError(err)
		return fmt.Errorf("generate maze: %w", err)
	}
	g.session = session

	start := session.Player()
	initSpan.SetAttributes(
		attribute.String("session.id", session.ID().String()),
		attribute.Int64("maze.seed", session.Seed()),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	return nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey applies the command bound to a key. While a path is displayed
// the next key only dismisses it.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if g.session.Path() != nil {
		g.session.DismissPath()
		g.status = ""
		return
	}

	cmd, ok := commandForKey(key, r)
	if !ok {
		return
	}

	switch g.session.Apply(ctx, cmd) {
	case OutcomeBlocked:
		g.status = g.messages.Blocked
	case OutcomeNoPath:
		g.status = g.messages.NoPath
	case OutcomePathShown:
		g.status = g.messages.Continue
	case OutcomeWon, OutcomeQuit:
		g.status = ""
		g.running = false
	default:
		g.status = ""
	}
}

// scene builds the frame for the current session state.
func (g *Game) scene() ui.Scene {
	field := g.session.VisibleField()

	status := make([]string, 0, len(g.messages.Controls)+2)
	status = append(status, g.messages.Goal)
	status = append(status, g.messages.Controls...)
	if g.status != "" {
		status = append(status, g.status)
	}

	return ui.Scene{
		Grid:    g.session.Grid(),
		Player:  g.session.Player(),
		Visible: field.At,
		Path:    g.session.Path(),
		Status:  status,
	}
}

func (g *Game) render() {
	g.renderer.Render(g.scene())
}

// waitForKey blocks until a key is pressed or the screen closes.
func (g *Game) waitForKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.render()
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
