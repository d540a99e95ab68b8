package codec

import (
	"context"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/errors"
	"github.com/gw2kit/chatlink/internal/wire"
	"github.com/gw2kit/chatlink/palettes"
)

// Revenant is the one profession whose skill layout is context-dependent:
// the legend bytes in the extra region decide which palette space the ten
// skill slots live in, and a second legend adds three inactive utility
// values after the legend bytes.
//
// The flip rule (legend slot 1 empty, slot 2 set) mirrors what the
// official client emits for builds saved with only the second legend bar
// filled; it is not documented by the format's owner, so its behavior is
// pinned by tests before anything else in this package.

// revenantLayout is the raw extra region as peeked off the wire before the
// skill slots are consumed.
type revenantLayout struct {
	legend1     build.Legend
	legend2     build.Legend
	inactiveRaw [3]uint16
}

// peekRevenantLayout reads the legend region through a secondary cursor so
// the primary cursor stays at the start of the skills region. r must be
// positioned at the first skill slot.
func peekRevenantLayout(r *wire.Reader) (*revenantLayout, error) {
	extra, err := r.SliceAt(skillsLength)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "slicing legend region")
	}

	var layout revenantLayout

	l1, err := extra.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading legend slot 1")
	}
	l2, err := extra.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading legend slot 2")
	}
	layout.legend1 = build.Legend(l1)
	layout.legend2 = build.Legend(l2)

	if layout.legend2 == build.LegendNone {
		return &layout, nil
	}

	if err := extra.Skip(revenantGap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "skipping legend gap")
	}
	for i := range layout.inactiveRaw {
		layout.inactiveRaw[i], err = extra.ReadUint16()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading inactive utility %d", i+1)
		}
	}

	return &layout, nil
}

// resolveRevenantExtra turns the peeked layout into a RevenantExtra,
// applying the flip rule. skills is the already-resolved bar and is
// rewritten in place when the flip moves the second legend's utilities
// into the primary slots.
func resolveRevenantExtra(ctx context.Context, mapper palettes.Mapper, layout *revenantLayout, skills *build.Skills) (build.ProfessionExtra, error) {
	if layout.legend1 == build.LegendNone && layout.legend2 == build.LegendNone {
		return nil, nil
	}

	if layout.legend2 == build.LegendNone {
		return build.RevenantExtra{Legends: []build.Legend{layout.legend1}}, nil
	}

	inactive, err := resolveInactiveSkills(ctx, mapper, layout.inactiveRaw, layout.legend2)
	if err != nil {
		return nil, err
	}

	if layout.legend1 == build.LegendNone {
		// Flip: no active legend was set, so the second slot becomes the
		// sole legend, its utilities take over the primary bar, and the
		// displaced primary values become the inactive set.
		displaced := []uint32{skills.Utility1, skills.Utility2, skills.Utility3}
		skills.Utility1, skills.Utility2, skills.Utility3 = inactive[0], inactive[1], inactive[2]

		extra := build.RevenantExtra{Legends: []build.Legend{layout.legend2}}
		if anyNonZero(displaced) {
			extra.InactiveSkills = displaced
		}
		return extra, nil
	}

	extra := build.RevenantExtra{Legends: []build.Legend{layout.legend1, layout.legend2}}
	if anyNonZero(inactive) {
		extra.InactiveSkills = inactive
	}
	return extra, nil
}

// resolveInactiveSkills maps the three raw inactive-legend values through
// the mapper under the inactive legend's palette space. Zero values stay
// zero without a mapper call.
func resolveInactiveSkills(ctx context.Context, mapper palettes.Mapper, raw [3]uint16, legend build.Legend) ([]uint32, error) {
	resolved := make([]uint32, len(raw))
	for i, index := range raw {
		if index == 0 {
			continue
		}
		id, err := mapper.PaletteToSkill(ctx, build.ProfessionRevenant, index, legend)
		if err != nil {
			return nil, errors.PaletteLookupFailedf(err, "resolving inactive utility %d", i+1).
				WithMeta("palette_index", index)
		}
		resolved[i] = id
	}
	return resolved, nil
}

// validateRevenantExtra rejects extras that have no wire form: zero or
// more than two legends, an empty legend slot, or an inactive set that is
// not exactly three values.
func validateRevenantExtra(extra build.RevenantExtra) error {
	if len(extra.Legends) == 0 || len(extra.Legends) > 2 {
		return errors.InvalidArgumentf("revenant extra must carry 1 or 2 legends, got %d", len(extra.Legends))
	}
	for i, legend := range extra.Legends {
		if legend == build.LegendNone {
			return errors.InvalidArgumentf("legend slot %d is empty", i+1)
		}
	}
	if extra.InactiveSkills != nil && len(extra.InactiveSkills) != 3 {
		return errors.InvalidArgumentf("inactive skills must carry exactly 3 values, got %d", len(extra.InactiveSkills))
	}
	return nil
}

// revenantFlipOnWire reports whether the extra can only be represented
// through the flipped wire form: a single legend whose inactive set holds
// the displaced primary utilities. Decode produces this shape whenever
// legend slot 1 is empty and slot 2 is set.
func revenantFlipOnWire(extra build.RevenantExtra) bool {
	return len(extra.Legends) == 1 && extra.InactiveSkills != nil
}

// encodeRevenantExtra writes the legend bytes, the fixed gap, and the
// three inactive utility slots (mapped back to palette indices under the
// inactive legend). w must be positioned at the extra region; skills is
// the record's bar, needed for the flipped form. The extra has already
// been validated.
func encodeRevenantExtra(ctx context.Context, w *wire.Writer, mapper palettes.Mapper, extra build.RevenantExtra, skills build.Skills) error {
	if revenantFlipOnWire(extra) {
		// Invert the flip: the sole legend goes to slot 2, and the
		// record's primary utilities land in the inactive region, mapped
		// under that legend. encodeSkills already put the inactive set
		// into the primary slots.
		w.WriteUint8(0)
		w.WriteUint8(byte(extra.Legends[0]))
		w.WriteZeros(revenantGap)

		for i, id := range []uint32{skills.Utility1, skills.Utility2, skills.Utility3} {
			if id == 0 {
				w.WriteUint16(0)
				continue
			}
			index, err := mapper.SkillToPalette(ctx, build.ProfessionRevenant, id, extra.Legends[0])
			if err != nil {
				return errors.PaletteLookupFailedf(err, "mapping inactive utility %d", i+1).
					WithMeta("skill_id", id)
			}
			w.WriteUint16(index)
		}
		return nil
	}

	w.WriteUint8(byte(extra.Legends[0]))
	if len(extra.Legends) > 1 {
		w.WriteUint8(byte(extra.Legends[1]))
	} else {
		w.WriteUint8(0)
	}
	w.WriteZeros(revenantGap)

	inactiveLegend := extra.Legends[len(extra.Legends)-1]
	for i := 0; i < 3; i++ {
		var id uint32
		if extra.InactiveSkills != nil {
			id = extra.InactiveSkills[i]
		}
		if id == 0 {
			w.WriteUint16(0)
			continue
		}
		index, err := mapper.SkillToPalette(ctx, build.ProfessionRevenant, id, inactiveLegend)
		if err != nil {
			return errors.PaletteLookupFailedf(err, "mapping inactive utility %d", i+1).
				WithMeta("skill_id", id)
		}
		w.WriteUint16(index)
	}

	return nil
}
