// Package palettes is the location for the palette-mapping collaborator
// consumed by the codec.
//
// Build templates store skills as profession-local palette indices, not
// stable skill IDs. Resolving between the two requires external game data,
// so the mapping is injected: the codec calls a Mapper for every non-zero
// slot and never implements the mapping itself.
package palettes

//go:generate mockgen -destination=mock/mock_mapper.go -package=palettesmock github.com/gw2kit/chatlink/palettes Mapper

import (
	"context"

	"github.com/gw2kit/chatlink/build"
)

// Mapper resolves palette indices to skill IDs and back.
//
// For Revenant builds the palette space depends on the equipped legend, so
// both directions take the legend in effect for the slot being resolved;
// every other profession passes build.LegendNone. Implementations may be
// network-backed; both methods honor ctx.
type Mapper interface {
	// PaletteToSkill resolves a non-zero palette index to a skill ID.
	PaletteToSkill(ctx context.Context, profession build.Profession, paletteIndex uint16, legend build.Legend) (uint32, error)

	// SkillToPalette resolves a non-zero skill ID back to its palette index.
	SkillToPalette(ctx context.Context, profession build.Profession, skillID uint32, legend build.Legend) (uint16, error)
}
