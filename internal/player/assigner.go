package player

import (
	"math/rand"
)

// Assigner defines an interface for picking the role of a newly seated player.
// This allows us to swap out random and scripted assignment.
type Assigner interface {
	Assign() Role
}

// --- Implementations ---

// RandomAssigner picks uniformly from a role pool.
type RandomAssigner struct {
	rand *rand.Rand
	pool []Role
}

// NewRandomAssigner creates a random assigner. An empty pool means the six distinguished roles.
func NewRandomAssigner(rand *rand.Rand, pool []Role) *RandomAssigner {
	if len(pool) == 0 {
		pool = DistinguishedRoles()
	}
	p := make([]Role, len(pool))
	copy(p, pool)
	return &RandomAssigner{rand: rand, pool: p}
}

func (r *RandomAssigner) Assign() Role {
	return r.pool[r.rand.Intn(len(r.pool))]
}

// FixedAssigner hands out roles in a fixed order and falls back to RolePlain
// once the script runs out. This is used for predictable testing.
type FixedAssigner struct {
	roles []Role
	next  int
}

func NewFixedAssigner(roles ...Role) *FixedAssigner {
	return &FixedAssigner{roles: roles}
}

func (f *FixedAssigner) Assign() Role {
	if f.next >= len(f.roles) {
		return RolePlain
	}
	r := f.roles[f.next]
	f.next++
	return r
}
