// Package metadata is the location for the game-metadata collaborator
// consumed by the validator.
//
// The validator cross-checks decoded IDs against whatever metadata source
// the caller supplies (the official API, a local dump, a fixture set). The
// package defines only the interfaces and info structs; no retrieval lives
// in this module.
package metadata

//go:generate mockgen -destination=mock/mock_provider.go -package=metadatamock github.com/gw2kit/chatlink/metadata Provider,PetProvider

import (
	"context"

	"github.com/gw2kit/chatlink/build"
)

// SkillInfo represents skill information from the metadata source
type SkillInfo struct {
	ID          uint32
	Name        string
	Professions []build.Profession
}

// AllowsProfession reports whether the skill is usable by the profession.
func (s *SkillInfo) AllowsProfession(p build.Profession) bool {
	for _, allowed := range s.Professions {
		if allowed == p {
			return true
		}
	}
	return false
}

// SpecializationInfo represents trait-line information from the metadata source
type SpecializationInfo struct {
	ID         uint32
	Name       string
	Profession build.Profession
}

// PetInfo represents Ranger pet information from the metadata source
type PetInfo struct {
	ID   uint32
	Name string
}

// Provider defines the interface for metadata lookups.
//
// A lookup for an ID the source does not know returns an error with
// errors.CodeNotFound; any other error is an infrastructure failure.
type Provider interface {
	// GetSkillInfo fetches skill information by skill ID
	GetSkillInfo(ctx context.Context, id uint32) (*SkillInfo, error)

	// GetSpecializationInfo fetches trait-line information by spec ID
	GetSpecializationInfo(ctx context.Context, id uint32) (*SpecializationInfo, error)
}

// PetProvider is the optional pet-lookup capability. Providers that also
// implement it get Ranger pet IDs checked during validation; providers
// that don't simply skip those checks.
type PetProvider interface {
	// GetPetInfo fetches pet information by pet ID
	GetPetInfo(ctx context.Context, id uint32) (*PetInfo, error)
}
