package codec_test

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gw2kit/chatlink/build"
)

// Wire offsets used by the test fixtures.
const (
	offProfession = 1
	offSpecs      = 2
	offSkills     = 8
	offExtra      = 28

	offLegend1          = 28
	offLegend2          = 29
	offInactiveUtility1 = 32

	baseLen = 44
)

// newTemplate returns a minimal valid 44-byte build template buffer.
func newTemplate(profession build.Profession) []byte {
	data := make([]byte, baseLen)
	data[0] = 0x0D
	data[offProfession] = byte(profession)
	return data
}

func put16(data []byte, offset int, val uint16) {
	binary.LittleEndian.PutUint16(data[offset:], val)
}

func put32(data []byte, offset int, val uint32) {
	binary.LittleEndian.PutUint32(data[offset:], val)
}

func link(data []byte) string {
	return "[&" + base64.StdEncoding.EncodeToString(data) + "]"
}

func mustBase64(t *testing.T, body string) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(body)
	require.NoError(t, err)
	return data
}

// offsetMapper is a deterministic, legend-blind mapper whose directions are
// true inverses: skill ID = palette index + 1000.
type offsetMapper struct{}

func (offsetMapper) PaletteToSkill(_ context.Context, _ build.Profession, paletteIndex uint16, _ build.Legend) (uint32, error) {
	return uint32(paletteIndex) + 1000, nil
}

func (offsetMapper) SkillToPalette(_ context.Context, _ build.Profession, skillID uint32, _ build.Legend) (uint16, error) {
	return uint16(skillID - 1000), nil
}
