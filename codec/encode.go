package codec

import (
	"context"
	"encoding/base64"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/errors"
	"github.com/gw2kit/chatlink/internal/wire"
	"github.com/gw2kit/chatlink/palettes"
)

// EncodeOptions configures Encode behavior. The zero value (and nil) mean
// the defaults: the base64 body is wrapped in "[&...]".
type EncodeOptions struct {
	// NoWrap emits the bare base64 body without the chat-link wrapper.
	NoWrap bool
}

// Encode serializes a BuildRecord into a build-template chat link,
// mirroring Decode exactly. Empty slots are written as zero; non-zero
// skill IDs are mapped back to palette indices through mapper in wire
// order, and the first mapper failure aborts the encode.
func Encode(ctx context.Context, rec *build.BuildRecord, mapper palettes.Mapper, opts *EncodeOptions) (string, error) {
	if rec == nil {
		return "", errors.InvalidArgument("build record is required")
	}
	if mapper == nil {
		return "", errors.InvalidArgument("palette mapper is required")
	}
	if !rec.Profession.Valid() {
		return "", errors.InvalidProfessionf("profession %d outside 1-9", rec.Profession).
			WithMeta("profession", uint8(rec.Profession))
	}
	if len(rec.Specializations) > specializationSlots {
		return "", errors.InvalidArgumentf("at most %d specializations allowed, got %d", specializationSlots, len(rec.Specializations))
	}
	if len(rec.Weapons) > 255 || len(rec.SkillVariants) > 255 {
		return "", errors.InvalidArgument("trailer sections are limited to 255 entries")
	}
	if extra, ok := rec.Extra.(build.RevenantExtra); ok {
		if err := validateRevenantExtra(extra); err != nil {
			return "", err
		}
	}
	if opts == nil {
		opts = &EncodeOptions{}
	}

	size := baseLength
	hasTrailer := len(rec.Weapons) > 0 || len(rec.SkillVariants) > 0
	if hasTrailer {
		size += 1 + 2*len(rec.Weapons) + 1 + 4*len(rec.SkillVariants)
	}

	w := wire.NewWriter(size)
	w.WriteUint8(typeBuildTemplate)
	w.WriteUint8(byte(rec.Profession))

	encodeSpecializations(w, rec.Specializations)

	if err := encodeSkills(ctx, w, mapper, rec); err != nil {
		return "", err
	}

	if err := encodeExtra(ctx, w, mapper, rec); err != nil {
		return "", err
	}

	// Zero-fill whatever the profession left unused in the extra region.
	w.WriteZeros(baseLength - w.Len())

	if hasTrailer {
		encodeTrailer(w, rec)
	}

	body := base64.StdEncoding.EncodeToString(w.Bytes())
	if opts.NoWrap {
		return body, nil
	}
	return linkPrefix + body + linkSuffix, nil
}

// encodeSpecializations writes exactly three (id, packed traits) pairs,
// padding absent slots with (0, 0).
func encodeSpecializations(w *wire.Writer, specs []build.Specialization) {
	for i := 0; i < specializationSlots; i++ {
		if i >= len(specs) {
			w.WriteUint8(0)
			w.WriteUint8(0)
			continue
		}
		w.WriteUint8(specs[i].ID)
		w.WriteUint8(packTraits(specs[i].Traits))
	}
}

// encodeSkills writes the ten slots in the same interleaved pair order
// Decode reads them. Zero slots are written as zero without a mapper call.
func encodeSkills(ctx context.Context, w *wire.Writer, mapper palettes.Mapper, rec *build.BuildRecord) error {
	legend := build.LegendNone
	s := rec.Skills
	if extra, ok := rec.Extra.(build.RevenantExtra); ok && len(extra.Legends) > 0 {
		if revenantFlipOnWire(extra) {
			// The flipped wire form stores the sole legend in slot 2, so
			// the bar is mapped without legend context and the inactive
			// set takes the primary utility slots.
			s.Utility1, s.Utility2, s.Utility3 = extra.InactiveSkills[0], extra.InactiveSkills[1], extra.InactiveSkills[2]
		} else {
			legend = extra.Legends[0]
		}
	}

	slots := []struct {
		name string
		id   uint32
	}{
		{"heal", s.Heal},
		{"aquaticHeal", s.AquaticHeal},
		{"utility1", s.Utility1},
		{"aquaticUtility1", s.AquaticUtility1},
		{"utility2", s.Utility2},
		{"aquaticUtility2", s.AquaticUtility2},
		{"utility3", s.Utility3},
		{"aquaticUtility3", s.AquaticUtility3},
		{"elite", s.Elite},
		{"aquaticElite", s.AquaticElite},
	}

	for _, slot := range slots {
		if slot.id == 0 {
			w.WriteUint16(0)
			continue
		}
		index, err := mapper.SkillToPalette(ctx, rec.Profession, slot.id, legend)
		if err != nil {
			return errors.PaletteLookupFailedf(err, "mapping %s slot", slot.name).
				WithMeta("skill_id", slot.id)
		}
		w.WriteUint16(index)
	}

	return nil
}

// encodeExtra writes the profession-specific region. Professions without
// extra data (including Engineer, whose variant is declared but dead)
// contribute nothing here; the caller zero-fills the rest of the region.
func encodeExtra(ctx context.Context, w *wire.Writer, mapper palettes.Mapper, rec *build.BuildRecord) error {
	switch extra := rec.Extra.(type) {
	case nil:
		return nil
	case build.RangerExtra:
		if rec.Profession != build.ProfessionRanger {
			return errors.InvalidArgumentf("ranger extra on %s build", rec.Profession)
		}
		w.WriteUint8(extra.Pets[0])
		w.WriteUint8(extra.Pets[1])
		return nil
	case build.RevenantExtra:
		if rec.Profession != build.ProfessionRevenant {
			return errors.InvalidArgumentf("revenant extra on %s build", rec.Profession)
		}
		return encodeRevenantExtra(ctx, w, mapper, extra, rec.Skills)
	case build.EngineerExtra:
		if rec.Profession != build.ProfessionEngineer {
			return errors.InvalidArgumentf("engineer extra on %s build", rec.Profession)
		}
		// The official format has no Engineer region; nothing is written.
		return nil
	default:
		return errors.InvalidArgumentf("unsupported profession extra %T", extra)
	}
}

// encodeTrailer writes both count bytes and their runs. Counts are always
// present once any trailer is written, even when one section is empty.
func encodeTrailer(w *wire.Writer, rec *build.BuildRecord) {
	w.WriteUint8(byte(len(rec.Weapons)))
	for _, weapon := range rec.Weapons {
		w.WriteUint16(weapon)
	}
	w.WriteUint8(byte(len(rec.SkillVariants)))
	for _, variant := range rec.SkillVariants {
		w.WriteUint32(variant)
	}
}

func anyNonZero(vals []uint32) bool {
	for _, v := range vals {
		if v != 0 {
			return true
		}
	}
	return false
}
