package codec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/codec"
	palettesmock "github.com/gw2kit/chatlink/palettes/mock"
)

// The flip rule is the least-documented corner of the format, so its
// behavior is pinned here before anything else.

func TestDecode_RevenantFlip(t *testing.T) {
	ctx := context.Background()

	data := newTemplate(build.ProfessionRevenant)
	// Primary utilities 1-3 hold the values that should be displaced.
	put16(data, offSkills+4, 1)
	put16(data, offSkills+8, 2)
	put16(data, offSkills+12, 3)
	// Legend slot 1 empty, slot 2 set: the flip case.
	data[offLegend1] = 0
	data[offLegend2] = 5
	put16(data, offInactiveUtility1, 21)
	put16(data, offInactiveUtility1+2, 22)
	put16(data, offInactiveUtility1+4, 23)

	rec, err := codec.Decode(ctx, link(data), offsetMapper{})
	require.NoError(t, err)

	extra, ok := rec.Extra.(build.RevenantExtra)
	require.True(t, ok, "expected RevenantExtra, got %T", rec.Extra)

	assert.Equal(t, []build.Legend{5}, extra.Legends, "second slot becomes the sole legend")

	// The inactive-legend values took over the primary utility bar.
	assert.Equal(t, uint32(1021), rec.Skills.Utility1)
	assert.Equal(t, uint32(1022), rec.Skills.Utility2)
	assert.Equal(t, uint32(1023), rec.Skills.Utility3)

	// The displaced primary values became the inactive set.
	assert.Equal(t, []uint32{1001, 1002, 1003}, extra.InactiveSkills)
}

func TestDecode_RevenantFlipWithEmptyPrimaries(t *testing.T) {
	ctx := context.Background()

	data := newTemplate(build.ProfessionRevenant)
	data[offLegend2] = 5
	put16(data, offInactiveUtility1, 21)
	put16(data, offInactiveUtility1+2, 22)
	put16(data, offInactiveUtility1+4, 23)

	rec, err := codec.Decode(ctx, link(data), offsetMapper{})
	require.NoError(t, err)

	extra, ok := rec.Extra.(build.RevenantExtra)
	require.True(t, ok)

	assert.Equal(t, []build.Legend{5}, extra.Legends)
	assert.Equal(t, uint32(1021), rec.Skills.Utility1)
	assert.Nil(t, extra.InactiveSkills, "all-zero displaced values must not produce an inactive set")
}

func TestDecode_RevenantBothLegends(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMapper := palettesmock.NewMockMapper(ctrl)

	data := newTemplate(build.ProfessionRevenant)
	put16(data, offSkills, 100) // heal
	data[offLegend1] = 13
	data[offLegend2] = 5
	put16(data, offInactiveUtility1, 21)

	// Skill slots resolve under the active legend, the inactive values
	// under the second legend.
	mockMapper.EXPECT().
		PaletteToSkill(ctx, build.ProfessionRevenant, uint16(100), build.Legend(13)).
		Return(uint32(27372), nil)
	mockMapper.EXPECT().
		PaletteToSkill(ctx, build.ProfessionRevenant, uint16(21), build.Legend(5)).
		Return(uint32(26821), nil)

	rec, err := codec.Decode(ctx, link(data), mockMapper)
	require.NoError(t, err)

	extra, ok := rec.Extra.(build.RevenantExtra)
	require.True(t, ok)

	assert.Equal(t, []build.Legend{13, 5}, extra.Legends)
	assert.Equal(t, uint32(27372), rec.Skills.Heal)
	assert.Equal(t, []uint32{26821, 0, 0}, extra.InactiveSkills)
}

func TestDecode_RevenantBothLegendsZeroInactive(t *testing.T) {
	ctx := context.Background()

	data := newTemplate(build.ProfessionRevenant)
	data[offLegend1] = 13
	data[offLegend2] = 5

	rec, err := codec.Decode(ctx, link(data), offsetMapper{})
	require.NoError(t, err)

	extra, ok := rec.Extra.(build.RevenantExtra)
	require.True(t, ok)

	assert.Equal(t, []build.Legend{13, 5}, extra.Legends)
	assert.Nil(t, extra.InactiveSkills)
}

func TestDecode_RevenantSingleLegend(t *testing.T) {
	ctx := context.Background()

	data := newTemplate(build.ProfessionRevenant)
	data[offLegend1] = 13
	// Garbage past the legend bytes must be ignored when slot 2 is empty.
	put16(data, offInactiveUtility1, 99)

	rec, err := codec.Decode(ctx, link(data), offsetMapper{})
	require.NoError(t, err)

	extra, ok := rec.Extra.(build.RevenantExtra)
	require.True(t, ok)

	assert.Equal(t, []build.Legend{13}, extra.Legends)
	assert.Nil(t, extra.InactiveSkills)
}

func TestDecode_RevenantNoLegends(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMapper := palettesmock.NewMockMapper(ctrl)

	data := newTemplate(build.ProfessionRevenant)
	put16(data, offSkills, 100)

	// No legend context: the slot resolves with LegendNone.
	mockMapper.EXPECT().
		PaletteToSkill(ctx, build.ProfessionRevenant, uint16(100), build.LegendNone).
		Return(uint32(27372), nil)

	rec, err := codec.Decode(ctx, link(data), mockMapper)
	require.NoError(t, err)

	assert.Nil(t, rec.Extra, "zero legend region must not produce an extra")
	assert.Equal(t, uint32(27372), rec.Skills.Heal)
}

func TestEncode_RevenantBothLegends(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMapper := palettesmock.NewMockMapper(ctrl)

	rec := &build.BuildRecord{
		Profession: build.ProfessionRevenant,
		Skills:     build.Skills{Heal: 27372},
		Extra: build.RevenantExtra{
			Legends:        []build.Legend{13, 5},
			InactiveSkills: []uint32{26821, 0, 0},
		},
	}

	mockMapper.EXPECT().
		SkillToPalette(ctx, build.ProfessionRevenant, uint32(27372), build.Legend(13)).
		Return(uint16(100), nil)
	mockMapper.EXPECT().
		SkillToPalette(ctx, build.ProfessionRevenant, uint32(26821), build.Legend(5)).
		Return(uint16(21), nil)

	out, err := codec.Encode(ctx, rec, mockMapper, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	require.Len(t, data, baseLen)

	assert.Equal(t, byte(13), data[offLegend1])
	assert.Equal(t, byte(5), data[offLegend2])
	assert.Equal(t, byte(0), data[offLegend2+1], "gap stays zero")
	assert.Equal(t, byte(0), data[offLegend2+2], "gap stays zero")
	assert.Equal(t, byte(21), data[offInactiveUtility1])
	assert.Equal(t, byte(0), data[offInactiveUtility1+1])
}

func TestEncode_RevenantFlippedForm(t *testing.T) {
	ctx := context.Background()

	// A single legend with an inactive set only exists on the wire in the
	// flipped form: legend slot 1 empty, slot 2 set, the inactive values in
	// the primary utility slots and the displaced utilities after the gap.
	rec := &build.BuildRecord{
		Profession: build.ProfessionRevenant,
		Skills: build.Skills{
			Heal:     1100,
			Utility1: 1021,
			Utility2: 1022,
			Utility3: 1023,
		},
		Extra: build.RevenantExtra{
			Legends:        []build.Legend{5},
			InactiveSkills: []uint32{1001, 1002, 1003},
		},
	}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	assert.Equal(t, byte(0), data[offLegend1])
	assert.Equal(t, byte(5), data[offLegend2])
	assert.Equal(t, byte(100), data[offSkills], "heal maps without legend context")
	assert.Equal(t, byte(1), data[offSkills+4], "inactive set takes the primary utility slots")
	assert.Equal(t, byte(2), data[offSkills+8])
	assert.Equal(t, byte(3), data[offSkills+12])
	assert.Equal(t, byte(21), data[offInactiveUtility1], "displaced utilities land after the gap")
	assert.Equal(t, byte(22), data[offInactiveUtility1+2])
	assert.Equal(t, byte(23), data[offInactiveUtility1+4])
}

func TestDecode_RevenantFlipSurvivesReencode(t *testing.T) {
	ctx := context.Background()

	data := newTemplate(build.ProfessionRevenant)
	put16(data, offSkills+4, 1)
	put16(data, offSkills+8, 2)
	put16(data, offSkills+12, 3)
	data[offLegend2] = 5
	put16(data, offInactiveUtility1, 21)
	put16(data, offInactiveUtility1+2, 22)
	put16(data, offInactiveUtility1+4, 23)

	first, err := codec.Decode(ctx, link(data), offsetMapper{})
	require.NoError(t, err)

	encoded, err := codec.Encode(ctx, first, offsetMapper{}, nil)
	require.NoError(t, err)

	second, err := codec.Decode(ctx, encoded, offsetMapper{})
	require.NoError(t, err)

	assert.Equal(t, first, second, "flip output must survive a re-encode")

	extra, ok := second.Extra.(build.RevenantExtra)
	require.True(t, ok)
	assert.Equal(t, []uint32{1001, 1002, 1003}, extra.InactiveSkills)
}

func TestEncode_RevenantLegendCountValidation(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{
		Profession: build.ProfessionRevenant,
		Extra:      build.RevenantExtra{},
	}

	_, err := codec.Encode(ctx, rec, offsetMapper{}, nil)
	assert.Error(t, err, "empty legend list must be rejected")

	rec.Extra = build.RevenantExtra{
		Legends:        []build.Legend{13},
		InactiveSkills: []uint32{1},
	}
	_, err = codec.Encode(ctx, rec, offsetMapper{}, nil)
	assert.Error(t, err, "inactive skills must carry exactly 3 values")

	rec.Extra = build.RevenantExtra{Legends: []build.Legend{build.LegendNone}}
	_, err = codec.Encode(ctx, rec, offsetMapper{}, nil)
	assert.Error(t, err, "an empty legend slot must be rejected")

	rec.Extra = build.RevenantExtra{Legends: []build.Legend{13, build.LegendNone}}
	_, err = codec.Encode(ctx, rec, offsetMapper{}, nil)
	assert.Error(t, err, "a zero second legend decodes as a different record")
}
