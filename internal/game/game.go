package game

import (
	"coup-toolbox/internal/config"
	"coup-toolbox/internal/events"
	"coup-toolbox/internal/player"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Game represents the state and rules of a single Coup table.
// It is not safe for concurrent use; exactly one action is applied at a time.
type Game struct {
	ID           string
	Config       *config.GameConfig
	EventManager *events.Manager
	players      []*player.Player
	out          []*player.Player
	factory      *player.Factory
	turn         int
	round        int
	cursor       int
	bribe        bool
	started      bool
	finished     bool
	log          logrus.FieldLogger
}

// --- Roster ---

// AddPlayer seats a new player under a unique name with a randomly assigned role.
func (g *Game) AddPlayer(name string) (*player.Player, error) {
	switch {
	case g.finished:
		return nil, fmt.Errorf("%w: game is over", player.ErrInvalidState)
	case g.started:
		return nil, fmt.Errorf("%w: cannot join after the first action", player.ErrInvalidState)
	case name == "":
		return nil, fmt.Errorf("%w: player name is empty", player.ErrInvalidState)
	case len(g.players) >= g.Config.MaxPlayers:
		return nil, fmt.Errorf("%w: table is full (%d players)", player.ErrInvalidState, g.Config.MaxPlayers)
	}
	for _, p := range g.players {
		if p.Name() == name {
			return nil, fmt.Errorf("%w: %q is already seated", player.ErrDuplicateName, name)
		}
	}

	p := g.factory.Create(name, len(g.players))
	g.players = append(g.players, p)
	g.log.WithFields(logrus.Fields{"player": name, "role": p.Role()}).Debug("Player seated.")
	g.EventManager.Publish(events.PlayerJoinedEvent{GameID: g.ID, Player: p.View()})
	return p, nil
}

// RandomRole draws a role identifier from the configured pool.
func (g *Game) RandomRole() string {
	return g.factory.RandomRole().String()
}

// Players returns the names of the active players in turn order.
func (g *Game) Players() []string {
	names := make([]string, 0, len(g.players))
	for _, p := range g.players {
		names = append(names, p.Name())
	}
	return names
}

// Roster returns a snapshot of every active player in turn order.
func (g *Game) Roster() []player.View {
	views := make([]player.View, 0, len(g.players))
	for _, p := range g.players {
		views = append(views, p.View())
	}
	return views
}

// Eliminated returns the names of eliminated players, oldest first.
func (g *Game) Eliminated() []string {
	names := make([]string, 0, len(g.out))
	for _, p := range g.out {
		names = append(names, p.Name())
	}
	return names
}

// Player looks up an active player by name.
func (g *Game) Player(name string) (*player.Player, bool) {
	for _, p := range g.players {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// PlayersForSelection returns every active player except name.
func (g *Game) PlayersForSelection(name string) []*player.Player {
	var others []*player.Player
	for _, p := range g.players {
		if p.Name() != name {
			others = append(others, p)
		}
	}
	return others
}

// --- Turn queries ---

// Turn returns the name of the player whose turn it is.
func (g *Game) Turn() (string, error) {
	p, err := g.CurrentPlayer()
	if err != nil {
		return "", err
	}
	return p.Name(), nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() (*player.Player, error) {
	if len(g.players) == 0 {
		return nil, fmt.Errorf("%w: no players in the game", player.ErrInvalidState)
	}
	return g.players[g.cursor], nil
}

// CurrentPlayerIndex is the roster position of the current player.
// It follows the seat cursor, so after eliminations it is not TurnCount() modulo
// the roster size.
func (g *Game) CurrentPlayerIndex() int { return g.cursor }

// TurnCount is the number of turns completed so far. It never goes back.
func (g *Game) TurnCount() int { return g.turn }

// Round starts at 1 and grows by one each time the seat cursor wraps past the last player.
func (g *Game) Round() int { return g.round }

// BribeActive reports whether the current player holds an extra-action credit.
func (g *Game) BribeActive() bool { return g.bribe }

// IsGame reports whether the game is still being played.
func (g *Game) IsGame() bool { return !g.finished }

// Winner returns the last player standing.
func (g *Game) Winner() (string, error) {
	switch len(g.players) {
	case 0:
		return "", fmt.Errorf("%w: no players in the game", player.ErrInvalidState)
	case 1:
		return g.players[0].Name(), nil
	default:
		return "", fmt.Errorf("%w: the game is still ongoing", player.ErrInvalidState)
	}
}

// CanAct reports whether the current player has any legal move.
// A sanctioned player holding 2 coins or fewer can only arrest, which needs
// at least one other player who has not been arrested this round.
func (g *Game) CanAct() bool {
	if len(g.players) == 0 {
		return false
	}
	cur := g.players[g.cursor]
	if !cur.IsSanctioned() || cur.Coins() > 2 {
		return true
	}
	for _, p := range g.players {
		if p != cur && !p.IsArrested() {
			return true
		}
	}
	return false
}

// ResetArrests clears every active player's arrest mark.
func (g *Game) ResetArrests() {
	for _, p := range g.players {
		p.ClearArrest()
	}
}
