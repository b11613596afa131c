package player

import (
	"fmt"
	"strings"
)

// Role identifies a player's character using a typed enum.
type Role int

const (
	RolePlain Role = iota
	RoleSpy
	RoleMerchant
	RoleJudge
	RoleGovernor
	RoleGeneral
	RoleBaron
)

// String returns the display name of a Role.
func (r Role) String() string {
	if r < RolePlain || r > RoleBaron {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return []string{"Player", "Spy", "Merchant", "Judge", "Governor", "General", "Baron"}[r]
}

// DistinguishedRoles is the fixed set random assignment draws from.
func DistinguishedRoles() []Role {
	return []Role{RoleSpy, RoleMerchant, RoleJudge, RoleGovernor, RoleGeneral, RoleBaron}
}

// ParseRole maps a role identifier (case-insensitive) to a Role.
func ParseRole(id string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "player", "plain":
		return RolePlain, nil
	case "spy":
		return RoleSpy, nil
	case "merchant":
		return RoleMerchant, nil
	case "judge":
		return RoleJudge, nil
	case "governor":
		return RoleGovernor, nil
	case "general":
		return RoleGeneral, nil
	case "baron":
		return RoleBaron, nil
	}
	return RolePlain, fmt.Errorf("%w: unknown role %q", ErrUnsupported, id)
}

// AbilityShape describes how a role's ability is invoked.
type AbilityShape int

const (
	AbilityNone AbilityShape = iota
	AbilityPassive
	AbilitySelf
	AbilityTargeted
)

// roleRules is one row of the dispatch table.
type roleRules struct {
	taxAmount   int
	shape       AbilityShape
	cost        int
	ignoresCoup bool
	reacts      bool
	summary     string
	plan        func(actor, target *Player) (Effect, error)
}

var rulebook = map[Role]roleRules{
	RolePlain: {
		taxAmount: 2,
		shape:     AbilityNone,
		summary:   "No ability.",
	},
	RoleSpy: {
		taxAmount:   2,
		shape:       AbilityTargeted,
		ignoresCoup: true,
		summary:     "Reveals a target's coins and blocks their next arrest.",
		plan:        planSpy,
	},
	RoleMerchant: {
		taxAmount: 2,
		shape:     AbilityPassive,
		summary:   "Starts each turn with +1 coin when holding 3 or more. Loses 2 coins when arrested.",
	},
	RoleJudge: {
		taxAmount: 2,
		shape:     AbilityTargeted,
		reacts:    true,
		summary:   "Cancels a pending bribe, even out of turn. Sanctioning a Judge costs 1 extra coin.",
		plan:      planJudge,
	},
	RoleGovernor: {
		taxAmount: 3,
		shape:     AbilityTargeted,
		summary:   "Tax yields 3. Strips 2 coins from a target (3 from a Governor).",
		plan:      planGovernor,
	},
	RoleGeneral: {
		taxAmount: 2,
		shape:     AbilityTargeted,
		cost:      generalCost,
		summary:   "Pays 5 to return the most recently eliminated player.",
		plan:      planGeneral,
	},
	RoleBaron: {
		taxAmount: 2,
		shape:     AbilitySelf,
		summary:   "With 3 or more coins, gains 3. Compensated 1 coin when sanctioned.",
		plan:      planBaron,
	},
}

// TaxAmount is the number of coins the role collects with tax.
func (r Role) TaxAmount() int { return rulebook[r].taxAmount }

// Ability reports the shape of the role's ability.
func (r Role) Ability() AbilityShape { return rulebook[r].shape }

// AbilityCost is the coin price of the role's ability.
func (r Role) AbilityCost() int { return rulebook[r].cost }

// Reacts reports whether the role's ability may be used outside its own turn.
func (r Role) Reacts() bool { return rulebook[r].reacts }

// Summary is a one-line description of the role for display.
func (r Role) Summary() string { return rulebook[r].summary }
