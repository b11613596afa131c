package cli

import (
	"coup-toolbox/internal/events"
	"coup-toolbox/internal/player"
	"strings"
)

// TableRenderer implements the events.Listener interface to print game events to the console.
type TableRenderer struct {
	roles map[string]player.Role
}

// HandleEvent is the central dispatcher for rendering events.
func (r *TableRenderer) HandleEvent(e events.Event) {
	if r.roles == nil {
		r.roles = make(map[string]player.Role)
	}
	switch event := e.(type) {
	case events.PlayerJoinedEvent:
		r.roles[event.Player.Name] = event.Player.Role
		C.Info.Printf("%s takes a seat as the %s.\n", r.name(event.Player.Name), Colorize(event.Player.Role.String(), event.Player.Role))
	case events.RoundStartEvent:
		C.Header.Printf("\n=== Round %d ===\n", event.Round)
	case events.TurnStartEvent:
		C.Header.Printf("\n--- Turn %d: %s ---\n", event.TurnNumber, r.name(event.PlayerName))
	case events.PassiveTriggeredEvent:
		C.Info.Printf("%s collects %d coin at the start of the turn.\n", r.name(event.PlayerName), event.Coins)
	case events.ActionAppliedEvent:
		r.renderAction(event)
	case events.AbilityUsedEvent:
		if event.Target != "" {
			C.Info.Printf("%s uses the %s ability on %s.\n", r.name(event.Actor), event.Role, r.name(event.Target))
		} else {
			C.Info.Printf("%s uses the %s ability.\n", r.name(event.Actor), event.Role)
		}
	case events.TurnSkippedEvent:
		C.Warn.Printf("%s cannot act and loses the turn.\n", r.name(event.PlayerName))
	case events.PlayerEliminatedEvent:
		C.No.Printf("%s has been eliminated by %s.\n", r.name(event.PlayerName), r.name(event.By))
	case events.PlayerRestoredEvent:
		C.Yes.Printf("%s returns to the table at seat %d.\n", r.name(event.PlayerName), event.Index+1)
	case events.GameOverEvent:
		C.Header.Println("\n--- GAME OVER ---")
		C.Yes.Printf("%s is the last one standing after %d rounds.\n", r.name(event.Winner), event.Rounds)
	}
}

func (r *TableRenderer) renderAction(event events.ActionAppliedEvent) {
	verb := strings.ToUpper(event.Action.String()[:1]) + event.Action.String()[1:]
	if event.Target == "" {
		C.Info.Printf("%s: %s\n", r.name(event.Actor), verb)
		return
	}
	C.Info.Printf("%s: %s %s\n", r.name(event.Actor), verb, r.name(event.Target))
}

func (r *TableRenderer) name(n string) string {
	if role, ok := r.roles[n]; ok {
		return Colorize(n, role)
	}
	return n
}
