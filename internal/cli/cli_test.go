package cli

import (
	"coup-toolbox/internal/config"
	"coup-toolbox/internal/game"
	"coup-toolbox/internal/player"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestGame(t *testing.T, roles ...player.Role) *game.Game {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	g, err := game.NewBuilder(config.Default(), log, rand.New(rand.NewSource(1))).
		WithAssigner(player.NewFixedAssigner(roles...)).
		WithPlayers("Alice", "Bob").
		Build()
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}
	return g
}

func TestDispatchActsForTheCurrentPlayer(t *testing.T) {
	g := newTestGame(t)

	if _, err := Dispatch(g, []string{"g"}); err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if turn, _ := g.Turn(); turn != "Bob" {
		t.Fatalf("expected Bob's turn, got %s", turn)
	}
	if _, err := Dispatch(g, []string{"TAX"}); err != nil {
		t.Fatalf("tax failed: %v", err)
	}
	if _, err := Dispatch(g, []string{"arrest", "Bob"}); err != nil {
		t.Fatalf("arrest failed: %v", err)
	}
	alice, _ := g.Player("Alice")
	if alice.Coins() != 2 {
		t.Errorf("expected Alice to hold 2 coins, got %d", alice.Coins())
	}
}

func TestDispatchErrors(t *testing.T) {
	g := newTestGame(t)
	cases := []struct {
		name  string
		parts []string
		want  error
	}{
		{"empty", nil, player.ErrUnsupported},
		{"unknown command", []string{"steal"}, player.ErrUnsupported},
		{"missing target", []string{"coup"}, player.ErrIllegalTarget},
		{"two targets", []string{"arrest", "Bob", "Alice"}, player.ErrIllegalTarget},
		{"ability without user", []string{"ability"}, player.ErrUnsupported},
		{"plain player ability", []string{"ability", "Alice", "Bob"}, player.ErrUnsupported},
		{"coup without coins", []string{"c", "Bob"}, player.ErrInsufficientFunds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Dispatch(g, tc.parts); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDispatchSpyReportsCoins(t *testing.T) {
	g := newTestGame(t, player.RolePlain, player.RoleSpy)
	if _, err := Dispatch(g, []string{"tax"}); err != nil {
		t.Fatalf("tax failed: %v", err)
	}

	// Bob is the current player, but abilities name their user.
	msg, err := Dispatch(g, []string{"ab", "Bob", "Alice"})
	if err != nil {
		t.Fatalf("spy ability failed: %v", err)
	}
	if msg != "Alice holds 2 coins." {
		t.Errorf("unexpected message %q", msg)
	}
}
