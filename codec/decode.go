package codec

import (
	"context"
	"encoding/base64"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/errors"
	"github.com/gw2kit/chatlink/internal/wire"
	"github.com/gw2kit/chatlink/palettes"
)

// Decode parses a build-template chat link into a BuildRecord.
//
// chatLink may carry the "[&...]" wrapper or be the bare base64 body.
// Every non-zero skill slot is resolved through mapper in wire order; the
// first mapper failure aborts the decode with CodePaletteLookupFailed.
func Decode(ctx context.Context, chatLink string, mapper palettes.Mapper) (*build.BuildRecord, error) {
	if mapper == nil {
		return nil, errors.InvalidArgument("palette mapper is required")
	}

	data, err := base64.StdEncoding.DecodeString(stripWrapper(chatLink))
	if err != nil {
		return nil, errors.Base64DecodeFailed(err, "decoding chat link body")
	}

	if len(data) < baseLength {
		return nil, errors.InvalidLengthf("buffer is %d bytes, need at least %d", len(data), baseLength).
			WithMeta("length", len(data))
	}

	r := wire.NewReader(data)

	typeByte, err := r.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading type byte")
	}
	if typeByte != typeBuildTemplate {
		return nil, errors.InvalidTypef("type byte 0x%02X is not a build template (0x%02X)", typeByte, typeBuildTemplate).
			WithMeta("type", typeByte)
	}

	professionByte, err := r.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading profession byte")
	}
	profession := build.Profession(professionByte)
	if !profession.Valid() {
		return nil, errors.InvalidProfessionf("profession byte %d outside 1-9", professionByte).
			WithMeta("profession", professionByte)
	}

	specs, err := decodeSpecializations(r)
	if err != nil {
		return nil, err
	}

	// For Revenant the legend bytes steer how the skill slots are mapped,
	// so they are peeked through a secondary cursor before the primary
	// cursor consumes the skills region.
	var rev *revenantLayout
	if profession == build.ProfessionRevenant {
		rev, err = peekRevenantLayout(r)
		if err != nil {
			return nil, err
		}
	}

	activeLegend := build.LegendNone
	if rev != nil {
		activeLegend = rev.legend1
	}

	skills, err := decodeSkills(ctx, r, mapper, profession, activeLegend)
	if err != nil {
		return nil, err
	}

	extra, err := decodeExtra(ctx, r, mapper, profession, rev, &skills)
	if err != nil {
		return nil, err
	}

	rec := &build.BuildRecord{
		Profession:      profession,
		Specializations: specs,
		Skills:          skills,
		Extra:           extra,
	}

	if r.Len() > baseLength {
		if err := decodeTrailer(r, rec); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// decodeSpecializations reads the three (id, packed traits) pairs. Empty
// slots (id 0) contribute nothing to the result, not even a placeholder.
func decodeSpecializations(r *wire.Reader) ([]build.Specialization, error) {
	var specs []build.Specialization
	for i := 0; i < specializationSlots; i++ {
		id, err := r.ReadByte()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading specialization %d", i+1)
		}
		traitByte, err := r.ReadByte()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading traits of specialization %d", i+1)
		}
		if id == 0 {
			continue
		}
		specs = append(specs, build.Specialization{
			ID:     id,
			Traits: unpackTraits(traitByte),
		})
	}
	return specs, nil
}

// decodeSkills reads the ten u16 slots in interleaved terrestrial/aquatic
// pair order and resolves each non-zero palette index through the mapper.
// Index 0 never reaches the mapper; the slot stays empty.
func decodeSkills(ctx context.Context, r *wire.Reader, mapper palettes.Mapper, profession build.Profession, legend build.Legend) (build.Skills, error) {
	var skills build.Skills

	slots := []struct {
		name string
		dst  *uint32
	}{
		{"heal", &skills.Heal},
		{"aquaticHeal", &skills.AquaticHeal},
		{"utility1", &skills.Utility1},
		{"aquaticUtility1", &skills.AquaticUtility1},
		{"utility2", &skills.Utility2},
		{"aquaticUtility2", &skills.AquaticUtility2},
		{"utility3", &skills.Utility3},
		{"aquaticUtility3", &skills.AquaticUtility3},
		{"elite", &skills.Elite},
		{"aquaticElite", &skills.AquaticElite},
	}

	for _, slot := range slots {
		index, err := r.ReadUint16()
		if err != nil {
			return skills, errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading %s slot", slot.name)
		}
		if index == 0 {
			continue
		}
		id, err := mapper.PaletteToSkill(ctx, profession, index, legend)
		if err != nil {
			return skills, errors.PaletteLookupFailedf(err, "resolving %s slot", slot.name).
				WithMeta("palette_index", index)
		}
		*slot.dst = id
	}

	return skills, nil
}

// decodeExtra reads the profession-specific region and leaves the primary
// cursor at the end of the fixed base record.
func decodeExtra(ctx context.Context, r *wire.Reader, mapper palettes.Mapper, profession build.Profession, rev *revenantLayout, skills *build.Skills) (build.ProfessionExtra, error) {
	var extra build.ProfessionExtra
	var err error

	switch profession {
	case build.ProfessionRanger:
		extra, err = decodeRangerExtra(r)
		if err != nil {
			return nil, err
		}
	case build.ProfessionRevenant:
		extra, err = resolveRevenantExtra(ctx, mapper, rev, skills)
		if err != nil {
			return nil, err
		}
	}

	// The extra region is fixed-size regardless of profession; advance the
	// cursor past whatever was not explicitly read.
	if err := r.Skip(baseLength - r.Position()); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "skipping profession extra region")
	}

	return extra, nil
}

// decodeRangerExtra reads the two pet slots. Pet IDs are raw wire bytes;
// they are never routed through the palette mapper.
func decodeRangerExtra(r *wire.Reader) (build.ProfessionExtra, error) {
	pet1, err := r.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading pet slot 1")
	}
	pet2, err := r.ReadByte()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidLength, "reading pet slot 2")
	}
	if pet1 == 0 && pet2 == 0 {
		return nil, nil
	}
	return build.RangerExtra{Pets: [2]uint8{pet1, pet2}}, nil
}

// decodeTrailer reads the optional extended suffix: a counted run of u16
// weapon type IDs followed by a counted run of u32 skill-variant IDs.
// Both values are raw, never palette-mapped. A zero count leaves the
// corresponding field nil.
func decodeTrailer(r *wire.Reader, rec *build.BuildRecord) error {
	weaponCount, err := r.ReadByte()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidLength, "reading weapon count")
	}
	if weaponCount > 0 {
		weapons := make([]uint16, weaponCount)
		for i := range weapons {
			weapons[i], err = r.ReadUint16()
			if err != nil {
				return errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading weapon %d", i+1)
			}
		}
		rec.Weapons = weapons
	}

	variantCount, err := r.ReadByte()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidLength, "reading skill variant count")
	}
	if variantCount > 0 {
		variants := make([]uint32, variantCount)
		for i := range variants {
			variants[i], err = r.ReadUint32()
			if err != nil {
				return errors.WrapWithCodef(err, errors.CodeInvalidLength, "reading skill variant %d", i+1)
			}
		}
		rec.SkillVariants = variants
	}

	return nil
}
