// Package codec decodes and encodes Guild Wars 2 build-template chat links.
//
// A chat link is the base64 form of a fixed 44-byte record (optionally
// followed by a variable-length trailer), usually wrapped in "[&...]".
// Decode turns the string into a build.BuildRecord, resolving every skill
// slot through the injected palettes.Mapper; Encode is the exact mirror.
//
// Neither function caches, retries, or issues concurrent lookups: mapper
// calls happen one at a time in wire order, and the first failure aborts
// the whole operation.
package codec

import (
	"strings"

	"github.com/gw2kit/chatlink/build"
)

const (
	// typeBuildTemplate is the type indicator carried in byte 0.
	typeBuildTemplate = 0x0D

	// baseLength is the fixed record size; anything longer carries a trailer.
	baseLength = 44

	// specializationSlots is the number of trait-line pairs on the wire.
	specializationSlots = 3

	// skillsLength is the size of the ten u16 skill slots.
	skillsLength = 20

	// extraOffset is where the profession-specific region starts.
	extraOffset = 8 + skillsLength

	// revenantGap separates the legend bytes from the inactive-skill slots.
	revenantGap = 2

	linkPrefix = "[&"
	linkSuffix = "]"
)

// stripWrapper removes the "[&...]" chat-link syntax if present. Raw
// base64 bodies pass through untouched.
func stripWrapper(chatLink string) string {
	if strings.HasPrefix(chatLink, linkPrefix) && strings.HasSuffix(chatLink, linkSuffix) {
		return chatLink[len(linkPrefix) : len(chatLink)-len(linkSuffix)]
	}
	return chatLink
}

// packTraits packs the three tier choices into one byte: Adept in bits 0-1,
// Master in 2-3, Grandmaster in 4-5. Bits 6-7 are always zero.
func packTraits(traits [3]build.TraitChoice) byte {
	return byte(traits[0]&0x03) | byte(traits[1]&0x03)<<2 | byte(traits[2]&0x03)<<4
}

// unpackTraits is the inverse of packTraits. Bits 6-7 are ignored.
func unpackTraits(b byte) [3]build.TraitChoice {
	return [3]build.TraitChoice{
		build.TraitChoice(b & 0x03),
		build.TraitChoice(b >> 2 & 0x03),
		build.TraitChoice(b >> 4 & 0x03),
	}
}
