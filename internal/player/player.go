package player

// Action tags the last thing a player did.
type Action int

const (
	ActionNone Action = iota
	ActionGather
	ActionTax
	ActionBribe
	ActionArrest
	ActionSanction
	ActionCoup
	ActionAbility
)

func (a Action) String() string {
	return []string{"none", "gather", "tax", "bribe", "arrest", "sanction", "coup", "ability"}[a]
}

// Player holds the mutable state of one seat at the table.
// It is only changed through Apply and the turn bookkeeping methods the engine calls.
type Player struct {
	name       string
	role       Role
	index      int
	coins      int
	sanctioned bool
	arrested   bool
	canArrest  bool
	lastAction Action
}

// New creates a player with no coins at the given roster index.
func New(name string, role Role, index int) *Player {
	return &Player{
		name:      name,
		role:      role,
		index:     index,
		canArrest: true,
	}
}

func (p *Player) Name() string       { return p.name }
func (p *Player) Role() Role         { return p.role }
func (p *Player) Index() int         { return p.index }
func (p *Player) Coins() int         { return p.coins }
func (p *Player) IsSanctioned() bool { return p.sanctioned }
func (p *Player) IsArrested() bool   { return p.arrested }
func (p *Player) CanArrest() bool    { return p.canArrest }
func (p *Player) LastAction() Action { return p.lastAction }

// MustCoup reports whether the forced-coup rule binds this player.
func (p *Player) MustCoup() bool { return p.coins >= ForcedCoupThreshold }

// Change is the part of an Effect that lands on a single player.
type Change struct {
	Player          string
	Coins           int
	Sanction        bool
	Arrest          bool
	RevokeArrest    bool
	ClearLastAction bool
}

// Apply lands a change on the player. Coins never drop below zero.
func (p *Player) Apply(c Change) {
	p.coins += c.Coins
	if p.coins < 0 {
		p.coins = 0
	}
	if c.Sanction {
		p.sanctioned = true
	}
	if c.Arrest {
		p.arrested = true
	}
	if c.RevokeArrest {
		p.canArrest = false
	}
	if c.ClearLastAction {
		p.lastAction = ActionNone
	}
}

// Record sets the last-action tag.
func (p *Player) Record(a Action) { p.lastAction = a }

// EndTurn lifts the restrictions that last for one of the player's own turns.
func (p *Player) EndTurn() {
	p.sanctioned = false
	p.canArrest = true
}

// ClearArrest drops the once-per-round arrest mark.
func (p *Player) ClearArrest() { p.arrested = false }

// View is a read-only snapshot for rendering.
type View struct {
	Name       string
	Role       Role
	Index      int
	Coins      int
	Sanctioned bool
	Arrested   bool
	CanArrest  bool
	LastAction Action
}

func (p *Player) View() View {
	return View{
		Name:       p.name,
		Role:       p.role,
		Index:      p.index,
		Coins:      p.coins,
		Sanctioned: p.sanctioned,
		Arrested:   p.arrested,
		CanArrest:  p.canArrest,
		LastAction: p.lastAction,
	}
}
