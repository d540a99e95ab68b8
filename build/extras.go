package build

// ProfessionExtra is the profession-specific tail of a build template.
// It is a closed union: only RangerExtra, RevenantExtra and EngineerExtra
// implement it. Consumers switch over the concrete type.
type ProfessionExtra interface {
	professionExtra()
}

// RangerExtra carries the two pet slots. Pet IDs are raw wire bytes, never
// palette-mapped; 0 means the slot is empty. Decode only attaches a
// RangerExtra when at least one slot is non-zero.
type RangerExtra struct {
	Pets [2]uint8
}

func (RangerExtra) professionExtra() {}

// RevenantExtra carries the equipped legends and, when a second legend is
// set, the utility skills of the inactive legend.
type RevenantExtra struct {
	// Legends holds one or two legend IDs; index 0 is the active legend.
	Legends []Legend

	// InactiveSkills are the resolved utility1-3 skill IDs of the
	// inactive legend. Nil unless a second legend is equipped and at
	// least one of the three values is non-zero.
	InactiveSkills []uint32
}

func (RevenantExtra) professionExtra() {}

// EngineerExtra exists for API completeness only. The official binary
// format carries no Engineer-specific data, so decode never produces one
// and encode never writes one.
type EngineerExtra struct{}

func (EngineerExtra) professionExtra() {}
