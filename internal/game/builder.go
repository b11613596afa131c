package game

import (
	"coup-toolbox/internal/config"
	"coup-toolbox/internal/events"
	"coup-toolbox/internal/player"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Builder provides a step-by-step API for constructing a Game object.
type Builder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	assigner     player.Assigner
	names        []string
}

// NewBuilder creates a new Builder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *Builder {
	return &Builder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

// WithAssigner replaces random role assignment, e.g. to pin roles in tests.
func (b *Builder) WithAssigner(a player.Assigner) *Builder {
	b.assigner = a
	return b
}

// WithPlayers seats the named players in order when the game is built.
func (b *Builder) WithPlayers(names ...string) *Builder {
	b.names = append(b.names, names...)
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *Builder) Build() (*Game, error) {
	if b.cfg == nil {
		b.cfg = config.Default()
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// 1. Resolve the role assigner
	assigner := b.assigner
	if assigner == nil {
		pool, err := b.cfg.RolePool()
		if err != nil {
			return nil, err
		}
		assigner = player.NewRandomAssigner(rand.New(rand.NewSource(b.rand.Int63())), pool)
	}

	// 2. Create the Game object
	id, err := uuid.NewRandomFromReader(b.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create game id: %w", err)
	}
	game := &Game{
		ID:           id.String(),
		Config:       b.cfg,
		EventManager: b.eventManager,
		factory:      player.NewFactory(assigner),
		round:        1,
		log:          b.log.WithField("game", id.String()),
	}

	// 3. Seat the players
	for _, name := range b.names {
		if _, err := game.AddPlayer(name); err != nil {
			return nil, err
		}
	}

	b.eventManager.Publish(events.GameReadyEvent{GameID: game.ID, Players: game.Roster()})

	return game, nil
}
