package codec_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/codec"
	"github.com/gw2kit/chatlink/errors"
)

func TestEncode_EmptyBuild(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{Profession: build.ProfessionWarrior}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "[&"))
	assert.True(t, strings.HasSuffix(out, "]"))

	data := mustBase64(t, out[2:len(out)-1])
	require.Len(t, data, baseLen, "no trailer without weapons or variants")
	assert.Equal(t, byte(0x0D), data[0])
	assert.Equal(t, byte(build.ProfessionWarrior), data[offProfession])
	for i := offSpecs; i < baseLen; i++ {
		assert.Zero(t, data[i], "byte %d must be zero in an empty build", i)
	}
}

func TestEncode_NoWrapOption(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{Profession: build.ProfessionWarrior}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(out, "[&"))
	data := mustBase64(t, out)
	assert.Len(t, data, baseLen)
}

func TestEncode_SpecializationPadding(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{
		Profession: build.ProfessionNecromancer,
		Specializations: []build.Specialization{
			{ID: 53, Traits: [3]build.TraitChoice{build.TraitTop, build.TraitMiddle, build.TraitBottom}},
		},
	}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	assert.Equal(t, byte(53), data[offSpecs])
	assert.Equal(t, byte(0x39), data[offSpecs+1], "traits pack 2 bits per tier")
	// Absent slots are written as (0, 0) pairs.
	for i := offSpecs + 2; i < offSkills; i++ {
		assert.Zero(t, data[i])
	}
}

func TestEncode_SkillsInterleavedOrder(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{
		Profession: build.ProfessionThief,
		Skills: build.Skills{
			Heal:            1010,
			AquaticHeal:     1011,
			Utility1:        1012,
			AquaticUtility2: 1013,
			Elite:           1014,
		},
	}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	assert.Equal(t, byte(10), data[offSkills])
	assert.Equal(t, byte(11), data[offSkills+2])
	assert.Equal(t, byte(12), data[offSkills+4])
	assert.Equal(t, byte(0), data[offSkills+6], "empty aquaticUtility1 stays zero")
	assert.Equal(t, byte(13), data[offSkills+10])
	assert.Equal(t, byte(14), data[offSkills+16])
}

func TestEncode_RangerPets(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{
		Profession: build.ProfessionRanger,
		Extra:      build.RangerExtra{Pets: [2]uint8{17, 42}},
	}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	assert.Equal(t, byte(17), data[offExtra])
	assert.Equal(t, byte(42), data[offExtra+1])
}

func TestEncode_Trailer(t *testing.T) {
	ctx := context.Background()

	t.Run("both sections", func(t *testing.T) {
		rec := &build.BuildRecord{
			Profession:    build.ProfessionWarrior,
			Weapons:       []uint16{35, 46},
			SkillVariants: []uint32{70000},
		}

		out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
		require.NoError(t, err)

		data := mustBase64(t, out)
		require.Len(t, data, baseLen+1+4+1+4)
		assert.Equal(t, byte(2), data[baseLen])
		assert.Equal(t, byte(35), data[baseLen+1])
		assert.Equal(t, byte(46), data[baseLen+3])
		assert.Equal(t, byte(1), data[baseLen+5])
	})

	t.Run("weapons only still writes variant count", func(t *testing.T) {
		rec := &build.BuildRecord{
			Profession: build.ProfessionWarrior,
			Weapons:    []uint16{35},
		}

		out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
		require.NoError(t, err)

		data := mustBase64(t, out)
		require.Len(t, data, baseLen+1+2+1)
		assert.Equal(t, byte(1), data[baseLen])
		assert.Equal(t, byte(0), data[len(data)-1], "variant count byte present even when empty")
	})
}

func TestEncode_Validation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		rec      *build.BuildRecord
		wantCode errors.Code
	}{
		{
			name:     "nil record",
			rec:      nil,
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "invalid profession",
			rec:      &build.BuildRecord{Profession: 12},
			wantCode: errors.CodeInvalidProfession,
		},
		{
			name: "too many specializations",
			rec: &build.BuildRecord{
				Profession:      build.ProfessionWarrior,
				Specializations: make([]build.Specialization, 4),
			},
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name: "extra on wrong profession",
			rec: &build.BuildRecord{
				Profession: build.ProfessionWarrior,
				Extra:      build.RangerExtra{Pets: [2]uint8{17, 0}},
			},
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Encode(ctx, tc.rec, offsetMapper{}, nil)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, errors.GetCode(err))
		})
	}

	t.Run("nil mapper", func(t *testing.T) {
		_, err := codec.Encode(ctx, &build.BuildRecord{Profession: build.ProfessionWarrior}, nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestEncode_EngineerExtraNeverWritten(t *testing.T) {
	ctx := context.Background()

	rec := &build.BuildRecord{
		Profession: build.ProfessionEngineer,
		Extra:      build.EngineerExtra{},
	}

	out, err := codec.Encode(ctx, rec, offsetMapper{}, &codec.EncodeOptions{NoWrap: true})
	require.NoError(t, err)

	data := mustBase64(t, out)
	for i := offExtra; i < baseLen; i++ {
		assert.Zero(t, data[i], "engineer extra region must stay zero")
	}
}
