// Package build implements the Guild Wars 2 build template entities
package build

// Profession is the profession byte carried by every build template.
// Valid values are 1 through 9; zero is never a legal wire value.
type Profession uint8

// Professions in wire order
const (
	ProfessionGuardian     Profession = 1
	ProfessionWarrior      Profession = 2
	ProfessionEngineer     Profession = 3
	ProfessionRanger       Profession = 4
	ProfessionThief        Profession = 5
	ProfessionElementalist Profession = 6
	ProfessionMesmer       Profession = 7
	ProfessionNecromancer  Profession = 8
	ProfessionRevenant     Profession = 9
)

// Valid reports whether the profession is one of the nine official values.
func (p Profession) Valid() bool {
	return p >= ProfessionGuardian && p <= ProfessionRevenant
}

// String returns the profession name, or "unknown" for out-of-range values.
func (p Profession) String() string {
	switch p {
	case ProfessionGuardian:
		return "guardian"
	case ProfessionWarrior:
		return "warrior"
	case ProfessionEngineer:
		return "engineer"
	case ProfessionRanger:
		return "ranger"
	case ProfessionThief:
		return "thief"
	case ProfessionElementalist:
		return "elementalist"
	case ProfessionMesmer:
		return "mesmer"
	case ProfessionNecromancer:
		return "necromancer"
	case ProfessionRevenant:
		return "revenant"
	default:
		return "unknown"
	}
}

// Legend is a Revenant stance ID as it appears on the wire.
// LegendNone marks an empty legend slot and the non-Revenant case.
type Legend uint8

// LegendNone is the empty legend slot value.
const LegendNone Legend = 0

// TraitChoice is one of the three trait columns in a specialization line,
// or TraitNone when no trait is picked for that tier.
type TraitChoice uint8

// Trait column values as packed on the wire (2 bits per tier)
const (
	TraitNone   TraitChoice = 0
	TraitTop    TraitChoice = 1
	TraitMiddle TraitChoice = 2
	TraitBottom TraitChoice = 3
)

// Specialization is one equipped trait line. Traits are ordered
// Adept, Master, Grandmaster.
//
// A specialization with ID 0 never appears in a decoded record; empty
// wire slots are omitted from BuildRecord.Specializations entirely.
type Specialization struct {
	ID     uint8
	Traits [3]TraitChoice
}

// Skills holds the ten equipped skill slots. Values are resolved skill IDs
// (never palette indices); 0 means the slot is empty. Both the terrestrial
// and aquatic bars are always present regardless of the build's origin.
type Skills struct {
	Heal     uint32
	Utility1 uint32
	Utility2 uint32
	Utility3 uint32
	Elite    uint32

	AquaticHeal     uint32
	AquaticUtility1 uint32
	AquaticUtility2 uint32
	AquaticUtility3 uint32
	AquaticElite    uint32
}

// SkillSlot pairs a slot name with its resolved skill ID, for callers that
// iterate the bar (the validator, diff tooling).
type SkillSlot struct {
	Name string
	ID   uint32
}

// Slots returns all ten slots in wire pair order.
func (s Skills) Slots() []SkillSlot {
	return []SkillSlot{
		{Name: "heal", ID: s.Heal},
		{Name: "aquaticHeal", ID: s.AquaticHeal},
		{Name: "utility1", ID: s.Utility1},
		{Name: "aquaticUtility1", ID: s.AquaticUtility1},
		{Name: "utility2", ID: s.Utility2},
		{Name: "aquaticUtility2", ID: s.AquaticUtility2},
		{Name: "utility3", ID: s.Utility3},
		{Name: "aquaticUtility3", ID: s.AquaticUtility3},
		{Name: "elite", ID: s.Elite},
		{Name: "aquaticElite", ID: s.AquaticElite},
	}
}

// BuildRecord is a fully decoded build template. It is a plain value owned
// by the caller; decode never retains a reference to it and encode never
// mutates it.
type BuildRecord struct {
	Profession      Profession
	Specializations []Specialization // 0..3 entries, empty slots omitted
	Skills          Skills
	Extra           ProfessionExtra // nil for professions without extra data

	// Extended trailer content. Nil means the corresponding trailer
	// section was absent (count byte 0 or no trailer at all).
	Weapons       []uint16
	SkillVariants []uint32
}
