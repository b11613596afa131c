package game

import (
	"coup-toolbox/internal/events"
	"coup-toolbox/internal/player"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Gather takes one coin from the bank.
func (g *Game) Gather(actor string) error {
	return g.act(actor, "", func(a, _ *player.Player) (player.Effect, error) { return player.Gather(a) })
}

// Tax collects the role's tax yield.
func (g *Game) Tax(actor string) error {
	return g.act(actor, "", func(a, _ *player.Player) (player.Effect, error) { return player.Tax(a) })
}

// Bribe pays 4 coins so that the actor's next action does not end the turn.
func (g *Game) Bribe(actor string) error {
	if g.bribe {
		return fmt.Errorf("%w: a bribe is already pending", player.ErrInvalidState)
	}
	return g.act(actor, "", func(a, _ *player.Player) (player.Effect, error) { return player.Bribe(a) })
}

// Arrest takes a coin from target.
func (g *Game) Arrest(actor, target string) error {
	return g.act(actor, target, player.Arrest)
}

// Sanction blocks target from gathering and taxing on their next turn.
func (g *Game) Sanction(actor, target string) error {
	return g.act(actor, target, player.Sanction)
}

// Coup pays 7 coins to eliminate target.
func (g *Game) Coup(actor, target string) error {
	return g.act(actor, target, player.Coup)
}

// Ability uses actor's role ability. Pass an empty target for self-directed abilities.
// Only the current player may use an ability, except for roles that react out of turn
// (the Judge). Abilities never advance the turn.
func (g *Game) Ability(actor, target string) (player.Effect, error) {
	e, err := g.ability(actor, target)
	if err != nil {
		g.log.WithFields(logrus.Fields{"player": actor, "target": target}).WithError(err).Debug("Ability rejected.")
	}
	return e, err
}

// SpyAbility uses a Spy's ability and returns the coins target holds.
func (g *Game) SpyAbility(actor, target string) (int, error) {
	if p, ok := g.Player(actor); ok && p.Role() != player.RoleSpy {
		return 0, fmt.Errorf("%w: %s is not a Spy", player.ErrUnsupported, actor)
	}
	e, err := g.Ability(actor, target)
	if err != nil {
		return 0, err
	}
	return e.Revealed, nil
}

func (g *Game) ability(actor, target string) (player.Effect, error) {
	if err := g.checkPlayable(); err != nil {
		return player.Effect{}, err
	}
	a, ok := g.Player(actor)
	if !ok {
		return player.Effect{}, fmt.Errorf("%w: %q is not in the game", player.ErrInvalidState, actor)
	}
	if a != g.players[g.cursor] && !a.Role().Reacts() {
		return player.Effect{}, fmt.Errorf("%w: it is %s's turn, %s cannot use the %s ability now", player.ErrInvalidState, g.players[g.cursor].Name(), actor, a.Role())
	}
	var t *player.Player
	if target != "" {
		if t, ok = g.Player(target); !ok {
			return player.Effect{}, fmt.Errorf("%w: %q is not in the game", player.ErrIllegalTarget, target)
		}
	}
	e, err := player.Ability(a, t)
	if err != nil {
		return player.Effect{}, err
	}
	if e.Restore && len(g.out) == 0 {
		return player.Effect{}, fmt.Errorf("%w: nobody has been eliminated", player.ErrInvalidState)
	}
	g.apply(e)
	return e, nil
}

type planner func(actor, target *player.Player) (player.Effect, error)

func (g *Game) act(actor, target string, plan planner) error {
	err := g.tryAct(actor, target, plan)
	if err != nil {
		g.log.WithFields(logrus.Fields{"player": actor, "target": target}).WithError(err).Debug("Action rejected.")
	}
	return err
}

func (g *Game) tryAct(actor, target string, plan planner) error {
	if err := g.checkPlayable(); err != nil {
		return err
	}
	a, ok := g.Player(actor)
	if !ok {
		return fmt.Errorf("%w: %q is not in the game", player.ErrInvalidState, actor)
	}
	if a != g.players[g.cursor] {
		return fmt.Errorf("%w: it is %s's turn, not %s's", player.ErrInvalidState, g.players[g.cursor].Name(), actor)
	}
	var t *player.Player
	if target != "" {
		if t, ok = g.Player(target); !ok {
			return fmt.Errorf("%w: %q is not in the game", player.ErrIllegalTarget, target)
		}
	}
	e, err := plan(a, t)
	if err != nil {
		return err
	}
	g.apply(e)
	return nil
}

func (g *Game) checkPlayable() error {
	if g.finished {
		return fmt.Errorf("%w: game is over", player.ErrInvalidState)
	}
	if !g.started && len(g.players) < g.Config.MinPlayers {
		return fmt.Errorf("%w: need at least %d players, have %d", player.ErrInvalidState, g.Config.MinPlayers, len(g.players))
	}
	if len(g.players) < 2 {
		return fmt.Errorf("%w: need at least 2 players, have %d", player.ErrInvalidState, len(g.players))
	}
	return nil
}

// apply is the only place where an effect lands on the table.
func (g *Game) apply(e player.Effect) {
	g.started = true
	for _, c := range e.Changes {
		if p, ok := g.Player(c.Player); ok {
			p.Apply(c)
		}
	}
	actor, _ := g.Player(e.Actor)
	actor.Record(e.Action)

	if e.GrantBribe {
		g.bribe = true
	}
	if e.CancelBribe {
		g.bribe = false
	}

	g.log.WithFields(logrus.Fields{
		"player": e.Actor,
		"action": e.Action,
		"target": e.Target,
		"turn":   g.turn,
		"round":  g.round,
	}).Debug("Effect applied.")

	if e.Action == player.ActionAbility {
		g.EventManager.Publish(events.AbilityUsedEvent{Actor: e.Actor, Role: actor.Role(), Target: e.Target, Revealed: e.Revealed})
	} else {
		g.EventManager.Publish(events.ActionAppliedEvent{Actor: e.Actor, Target: e.Target, Action: e.Action})
	}

	if e.Eliminate {
		g.eliminate(e.Target, e.Actor)
	}
	if e.Restore {
		g.restore(e.Actor)
	}
	if g.finished {
		return
	}
	if e.Advance {
		g.nextTurn()
	}
}

func (g *Game) eliminate(name, by string) {
	for i, p := range g.players {
		if p.Name() != name {
			continue
		}
		g.players = append(g.players[:i], g.players[i+1:]...)
		g.out = append(g.out, p)
		if i < g.cursor {
			g.cursor--
		}
		if g.cursor >= len(g.players) {
			g.cursor = 0
		}
		g.log.WithFields(logrus.Fields{"player": name, "by": by}).Info("Player eliminated.")
		g.EventManager.Publish(events.PlayerEliminatedEvent{PlayerName: name, By: by})
		break
	}

	if len(g.players) == 1 {
		g.finished = true
		g.bribe = false
		winner := g.players[0].Name()
		g.log.WithFields(logrus.Fields{"winner": winner, "turn": g.turn}).Info("Game over.")
		g.EventManager.Publish(events.GameOverEvent{GameID: g.ID, Winner: winner, Turns: g.turn, Rounds: g.round})
	}
}

// restore brings back the most recently eliminated player, at their original
// seat when it still exists and at the end of the roster otherwise.
// The revived player returns without sanction, arrest mark or arrest ban.
func (g *Game) restore(by string) {
	last := len(g.out) - 1
	p := g.out[last]
	g.out = g.out[:last]

	pos := p.Index()
	if pos < 0 || pos >= len(g.players) {
		pos = len(g.players)
	}
	g.players = append(g.players, nil)
	copy(g.players[pos+1:], g.players[pos:])
	g.players[pos] = p
	p.EndTurn()
	p.ClearArrest()
	if pos <= g.cursor {
		g.cursor++
	}

	g.log.WithFields(logrus.Fields{"player": p.Name(), "by": by, "index": pos}).Info("Player restored.")
	g.EventManager.Publish(events.PlayerRestoredEvent{PlayerName: p.Name(), By: by, Index: pos})
}

// nextTurn ends the current turn, or keeps it when a bribe credit is pending.
// Players who cannot act are skipped.
func (g *Game) nextTurn() {
	if g.bribe {
		g.bribe = false
		g.log.WithFields(logrus.Fields{"player": g.players[g.cursor].Name()}).Debug("Bribe consumed, turn held.")
		return
	}

	for {
		g.players[g.cursor].EndTurn()
		g.turn++
		g.cursor++
		if g.cursor >= len(g.players) {
			g.cursor = 0
			g.round++
			g.ResetArrests()
			g.EventManager.Publish(events.RoundStartEvent{Round: g.round})
		}
		if len(g.players) <= 1 {
			return
		}

		cur := g.players[g.cursor]
		if c, ok := player.TurnStart(cur); ok {
			cur.Apply(c)
			cur.Record(player.ActionAbility)
			g.EventManager.Publish(events.PassiveTriggeredEvent{PlayerName: cur.Name(), Coins: c.Coins})
		}
		g.log.WithFields(logrus.Fields{"player": cur.Name(), "turn": g.turn, "round": g.round}).Debug("Turn started.")
		g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turn + 1, Round: g.round, PlayerName: cur.Name()})

		if g.CanAct() {
			return
		}
		g.log.WithFields(logrus.Fields{"player": cur.Name()}).Info("Player cannot act, turn skipped.")
		g.EventManager.Publish(events.TurnSkippedEvent{PlayerName: cur.Name()})
	}
}
