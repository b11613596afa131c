package player

import "fmt"

const (
	ForcedCoupThreshold = 10
	BribeCost           = 4
	SanctionCost        = 3
	JudgeSurcharge      = 1
	CoupCost            = 7

	generalCost       = 5
	baronMinimum      = 3
	baronYield        = 3
	merchantThreshold = 3
	merchantArrest    = 2
	governorStrip     = 2
	governorOnPeer    = 3
)

// Effect describes everything a successful action or ability does.
// Planners only read state; the engine applies the effect as a whole.
type Effect struct {
	Actor       string
	Target      string
	Action      Action
	Changes     []Change
	Advance     bool
	GrantBribe  bool
	CancelBribe bool
	Eliminate   bool
	Restore     bool
	Revealed    int
}

// Gather plans +1 coin.
func Gather(actor *Player) (Effect, error) {
	if err := checkEconomy(actor, ActionGather); err != nil {
		return Effect{}, err
	}
	return Effect{
		Actor:   actor.name,
		Action:  ActionGather,
		Changes: []Change{{Player: actor.name, Coins: 1}},
		Advance: true,
	}, nil
}

// Tax plans the role's tax yield.
func Tax(actor *Player) (Effect, error) {
	if err := checkEconomy(actor, ActionTax); err != nil {
		return Effect{}, err
	}
	return Effect{
		Actor:   actor.name,
		Action:  ActionTax,
		Changes: []Change{{Player: actor.name, Coins: actor.role.TaxAmount()}},
		Advance: true,
	}, nil
}

// Bribe plans paying for an extra action. The turn is held, not advanced.
func Bribe(actor *Player) (Effect, error) {
	if actor.MustCoup() {
		return Effect{}, forcedCoup(actor, ActionBribe)
	}
	if actor.coins < BribeCost {
		return Effect{}, fmt.Errorf("%w: %s has %d coins, bribe costs %d", ErrInsufficientFunds, actor.name, actor.coins, BribeCost)
	}
	return Effect{
		Actor:      actor.name,
		Action:     ActionBribe,
		Changes:    []Change{{Player: actor.name, Coins: -BribeCost}},
		GrantBribe: true,
	}, nil
}

// Arrest plans taking a coin from target. A Merchant target pays 2 to the bank instead.
func Arrest(actor, target *Player) (Effect, error) {
	if actor.MustCoup() {
		return Effect{}, forcedCoup(actor, ActionArrest)
	}
	if err := checkTarget(actor, target); err != nil {
		return Effect{}, err
	}
	switch {
	case !actor.canArrest:
		return Effect{}, fmt.Errorf("%w: %s is barred from arresting this turn", ErrIllegalTarget, actor.name)
	case target.arrested:
		return Effect{}, fmt.Errorf("%w: %s was already arrested this round", ErrIllegalTarget, target.name)
	case target.coins <= 0:
		return Effect{}, fmt.Errorf("%w: %s has no coins to take", ErrIllegalTarget, target.name)
	}

	e := Effect{Actor: actor.name, Target: target.name, Action: ActionArrest, Advance: true}
	if target.role == RoleMerchant {
		e.Changes = []Change{{Player: target.name, Coins: -merchantArrest, Arrest: true}}
	} else {
		e.Changes = []Change{
			{Player: target.name, Coins: -1, Arrest: true},
			{Player: actor.name, Coins: 1},
		}
	}
	return e, nil
}

// Sanction plans blocking target's economy for their next turn.
// Sanctioning a Judge costs one extra coin; a sanctioned Baron is compensated with one.
func Sanction(actor, target *Player) (Effect, error) {
	if actor.MustCoup() {
		return Effect{}, forcedCoup(actor, ActionSanction)
	}
	if err := checkTarget(actor, target); err != nil {
		return Effect{}, err
	}
	cost := SanctionCost
	if target.role == RoleJudge {
		cost += JudgeSurcharge
	}
	if actor.coins < cost {
		return Effect{}, fmt.Errorf("%w: %s has %d coins, sanctioning %s costs %d", ErrInsufficientFunds, actor.name, actor.coins, target.name, cost)
	}

	hit := Change{Player: target.name, Sanction: true}
	if target.role == RoleBaron {
		hit.Coins = 1
	}
	return Effect{
		Actor:   actor.name,
		Target:  target.name,
		Action:  ActionSanction,
		Changes: []Change{{Player: actor.name, Coins: -cost}, hit},
		Advance: true,
	}, nil
}

// Coup plans eliminating target.
func Coup(actor, target *Player) (Effect, error) {
	if err := checkTarget(actor, target); err != nil {
		return Effect{}, err
	}
	if actor.coins < CoupCost {
		return Effect{}, fmt.Errorf("%w: %s has %d coins, coup costs %d", ErrInsufficientFunds, actor.name, actor.coins, CoupCost)
	}
	return Effect{
		Actor:     actor.name,
		Target:    target.name,
		Action:    ActionCoup,
		Changes:   []Change{{Player: actor.name, Coins: -CoupCost}},
		Advance:   true,
		Eliminate: true,
	}, nil
}

// Ability plans the actor's role ability. target is nil for self-directed abilities.
func Ability(actor, target *Player) (Effect, error) {
	rules := rulebook[actor.role]
	switch rules.shape {
	case AbilityNone:
		return Effect{}, fmt.Errorf("%w: %s has no ability", ErrUnsupported, actor.role)
	case AbilityPassive:
		return Effect{}, fmt.Errorf("%w: %s ability triggers on its own", ErrUnsupported, actor.role)
	case AbilitySelf:
		if target != nil {
			return Effect{}, fmt.Errorf("%w: %s ability takes no target", ErrUnsupported, actor.role)
		}
	case AbilityTargeted:
		if target == nil {
			return Effect{}, fmt.Errorf("%w: %s ability needs a target", ErrUnsupported, actor.role)
		}
		if err := checkTarget(actor, target); err != nil {
			return Effect{}, err
		}
	}
	if !rules.ignoresCoup && actor.MustCoup() {
		return Effect{}, forcedCoup(actor, ActionAbility)
	}
	if actor.coins < rules.cost {
		return Effect{}, fmt.Errorf("%w: %s ability costs %d, %s has %d", ErrInsufficientFunds, actor.role, rules.cost, actor.name, actor.coins)
	}
	return rules.plan(actor, target)
}

// TurnStart returns the passive change a player earns when their turn begins.
func TurnStart(p *Player) (Change, bool) {
	if p.role == RoleMerchant && p.coins >= merchantThreshold {
		return Change{Player: p.name, Coins: 1}, true
	}
	return Change{}, false
}

func planSpy(actor, target *Player) (Effect, error) {
	return Effect{
		Actor:    actor.name,
		Target:   target.name,
		Action:   ActionAbility,
		Changes:  []Change{{Player: target.name, RevokeArrest: true}},
		Revealed: target.coins,
	}, nil
}

func planBaron(actor, _ *Player) (Effect, error) {
	if actor.coins < baronMinimum {
		return Effect{}, fmt.Errorf("%w: Baron needs %d coins to invest, %s has %d", ErrInsufficientFunds, baronMinimum, actor.name, actor.coins)
	}
	return Effect{
		Actor:   actor.name,
		Action:  ActionAbility,
		Changes: []Change{{Player: actor.name, Coins: baronYield}},
	}, nil
}

func planJudge(actor, target *Player) (Effect, error) {
	return Effect{
		Actor:       actor.name,
		Target:      target.name,
		Action:      ActionAbility,
		Changes:     []Change{{Player: target.name, ClearLastAction: true}},
		CancelBribe: true,
	}, nil
}

func planGovernor(actor, target *Player) (Effect, error) {
	strip := governorStrip
	if target.role == RoleGovernor {
		strip = governorOnPeer
	}
	return Effect{
		Actor:   actor.name,
		Target:  target.name,
		Action:  ActionAbility,
		Changes: []Change{{Player: target.name, Coins: -strip, ClearLastAction: true}},
	}, nil
}

// planGeneral revives whoever fell last; target only has its last action cleared,
// so the revived player and the target may differ.
func planGeneral(actor, target *Player) (Effect, error) {
	return Effect{
		Actor:  actor.name,
		Target: target.name,
		Action: ActionAbility,
		Changes: []Change{
			{Player: actor.name, Coins: -generalCost},
			{Player: target.name, ClearLastAction: true},
		},
		Restore: true,
	}, nil
}

func checkEconomy(actor *Player, a Action) error {
	if actor.MustCoup() {
		return forcedCoup(actor, a)
	}
	if actor.sanctioned {
		return fmt.Errorf("%w: %s is sanctioned and cannot %s", ErrInvalidState, actor.name, a)
	}
	return nil
}

func checkTarget(actor, target *Player) error {
	if target == nil {
		return fmt.Errorf("%w: no target given", ErrIllegalTarget)
	}
	if target.name == actor.name {
		return fmt.Errorf("%w: %s cannot target themselves", ErrIllegalTarget, actor.name)
	}
	return nil
}

func forcedCoup(actor *Player, a Action) error {
	return fmt.Errorf("%w: %s holds %d coins and must coup instead of %s", ErrForcedCoup, actor.name, actor.coins, a)
}
