package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/entity"
	"github.com/samdwyer/fogmaze/internal/fov"
	"github.com/samdwyer/fogmaze/internal/pathfind"
	"github.com/samdwyer/fogmaze/internal/telemetry"
	"github.com/samdwyer/fogmaze/internal/world"
)

// Session holds one playthrough: the maze, the player and the shown path.
// It knows nothing about terminals; commands come in, queries go out.
type Session struct {
	id     uuid.UUID
	seed   int64
	grid   *world.Grid
	player *entity.Player
	state  State
	path   pathfind.Path
}

// NewSession generates a maze for cfg and places the player at its start.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = world.DefaultWidth
	}
	if height == 0 {
		height = world.DefaultHeight
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := world.NewMaze(ctx, width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	s := NewSessionWithGrid(grid)
	s.seed = seed

	log.WithFields(log.Fields{
		"session": s.id,
		"seed":    seed,
		"width":   width,
		"height":  height,
	}).Info("maze generated")

	return s, nil
}

// NewSessionWithGrid starts a session on an already built grid.
func NewSessionWithGrid(grid *world.Grid) *Session {
	return &Session{
		id:     uuid.New(),
		grid:   grid,
		player: entity.NewPlayer(grid.Start()),
		state:  StatePlaying,
	}
}

// Apply executes a single command and reports what happened.
// A displayed path is cleared by every command.
func (s *Session) Apply(ctx context.Context, cmd Command) Outcome {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.command")
	defer span.End()

	outcome := s.apply(ctx, cmd)

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("command", cmd.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("player.x", s.player.X),
		attribute.Int("player.y", s.player.Y),
	)

	log.WithFields(log.Fields{
		"session": s.id,
		"command": cmd,
		"outcome": outcome,
		"x":       s.player.X,
		"y":       s.player.Y,
	}).Debug("command applied")

	return outcome
}

func (s *Session) apply(ctx context.Context, cmd Command) Outcome {
	if s.state.Over() {
		return OutcomeIgnored
	}
	s.path = nil

	if dx, dy, ok := cmd.Delta(); ok {
		return s.tryMove(dx, dy)
	}

	switch cmd {
	case CommandQuit:
		s.state = StateQuit
		return OutcomeQuit
	case CommandShowPath:
		return s.showPath(ctx)
	default:
		return OutcomeIgnored
	}
}

// tryMove attempts to move the player by the given delta.
func (s *Session) tryMove(dx, dy int) Outcome {
	next := s.player.Position().Add(dx, dy)
	if !s.grid.IsPassable(next.X, next.Y) {
		return OutcomeBlocked
	}

	s.player.Move(dx, dy)

	if s.player.At(s.grid.Exit()) {
		s.state = StateWon
		log.WithFields(log.Fields{
			"session": s.id,
			"moves":   s.player.Moves,
		}).Info("exit reached")
		return OutcomeWon
	}
	return OutcomeMoved
}

// showPath computes the route from the player to the exit.
func (s *Session) showPath(ctx context.Context) Outcome {
	path, ok := pathfind.Trace(ctx, s.grid, s.player.Position(), s.grid.Exit())
	if !ok {
		log.WithField("session", s.id).Warn("exit unreachable from player")
		return OutcomeNoPath
	}
	s.path = path
	return OutcomePathShown
}

// DismissPath hides a displayed path without spending a command.
func (s *Session) DismissPath() {
	s.path = nil
}

// Visible reports whether the player can currently see (x, y).
func (s *Session) Visible(x, y int) bool {
	return fov.IsVisible(s.grid, s.player.X, s.player.Y, x, y, VisibilityRadius)
}

// VisibleField computes the visibility mask for the current player position.
func (s *Session) VisibleField() *fov.Field {
	return fov.Compute(s.grid, s.player.Position(), VisibilityRadius)
}

// ID returns the session identifier used in logs and traces.
func (s *Session) ID() uuid.UUID { return s.id }

// Seed returns the seed the maze was generated from, or 0 for supplied grids.
func (s *Session) Seed() int64 { return s.seed }

// Grid returns the maze.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player's current position.
func (s *Session) Player() world.Point { return s.player.Position() }

// Moves returns how many steps the player has taken.
func (s *Session) Moves() int { return s.player.Moves }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Path returns the displayed path, or nil when none is shown.
func (s *Session) Path() pathfind.Path { return s.path }
