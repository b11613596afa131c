package player

// Factory builds players for a roster.
type Factory struct {
	assigner Assigner
}

// NewFactory creates a factory that draws roles from assigner.
func NewFactory(assigner Assigner) *Factory {
	return &Factory{assigner: assigner}
}

// Create seats a new player with a role chosen by the assigner.
func (f *Factory) Create(name string, index int) *Player {
	return New(name, f.assigner.Assign(), index)
}

// CreateAs seats a new player with the role named by id.
func (f *Factory) CreateAs(id, name string, index int) (*Player, error) {
	role, err := ParseRole(id)
	if err != nil {
		return nil, err
	}
	return New(name, role, index), nil
}

// RandomRole draws a role from the assigner without seating anyone.
func (f *Factory) RandomRole() Role {
	return f.assigner.Assign()
}
