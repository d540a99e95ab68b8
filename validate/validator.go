// Package validate cross-checks decoded build records against external
// game metadata.
//
// Validation is read-only and never fail-fast: every check runs, findings
// accumulate in the Result, and Validate itself only returns an error when
// the metadata provider fails for a reason other than "not found".
package validate

import (
	"context"
	"fmt"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/errors"
	"github.com/gw2kit/chatlink/metadata"
)

// Code identifies a validation finding. These are non-fatal by design and
// distinct from the codec's error codes.
type Code string

// Validation issue codes
const (
	CodeInvalidSkillID                 Code = "INVALID_SKILL_ID"
	CodeSkillNotForProfession          Code = "SKILL_NOT_FOR_PROFESSION"
	CodeInvalidSpecializationID        Code = "INVALID_SPECIALIZATION_ID"
	CodeSpecializationNotForProfession Code = "SPECIALIZATION_NOT_FOR_PROFESSION"
	CodeInvalidPetID                   Code = "INVALID_PET_ID"
)

// Issue is a single validation finding. ID is the offending skill, spec,
// or pet ID the message refers to.
type Issue struct {
	Code    Code
	Message string
	ID      uint32
}

// Result is the outcome of a validation pass. Valid is true exactly when
// Errors is empty. Warnings is reserved; nothing populates it yet.
type Result struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

// Config holds the validator's dependencies
type Config struct {
	Provider metadata.Provider
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Provider == nil {
		return errors.InvalidArgument("metadata provider is required")
	}
	return nil
}

// Validator cross-references build records against a metadata provider.
type Validator struct {
	provider metadata.Provider
}

// New creates a validator from the config.
func New(cfg *Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Validator{provider: cfg.Provider}, nil
}

// Validate runs every check against rec and reports the accumulated
// findings. Provider lookups happen sequentially; a provider failure other
// than not-found aborts with that error.
func (v *Validator) Validate(ctx context.Context, rec *build.BuildRecord) (*Result, error) {
	if rec == nil {
		return nil, errors.InvalidArgument("build record is required")
	}

	result := &Result{}

	if err := v.checkSkills(ctx, rec, result); err != nil {
		return nil, err
	}
	if err := v.checkSpecializations(ctx, rec, result); err != nil {
		return nil, err
	}
	if err := v.checkPets(ctx, rec, result); err != nil {
		return nil, err
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

func (v *Validator) checkSkills(ctx context.Context, rec *build.BuildRecord, result *Result) error {
	for _, slot := range rec.Skills.Slots() {
		if slot.ID == 0 {
			continue
		}

		info, err := v.provider.GetSkillInfo(ctx, slot.ID)
		if err != nil {
			if errors.IsNotFound(err) {
				result.Errors = append(result.Errors, Issue{
					Code:    CodeInvalidSkillID,
					Message: fmt.Sprintf("skill %d in %s slot does not exist", slot.ID, slot.Name),
					ID:      slot.ID,
				})
				continue
			}
			return errors.Wrapf(err, "looking up skill %d", slot.ID)
		}

		if !info.AllowsProfession(rec.Profession) {
			result.Errors = append(result.Errors, Issue{
				Code:    CodeSkillNotForProfession,
				Message: fmt.Sprintf("skill %s (%d) is not usable by profession %s", info.Name, slot.ID, rec.Profession),
				ID:      slot.ID,
			})
		}
	}
	return nil
}

func (v *Validator) checkSpecializations(ctx context.Context, rec *build.BuildRecord, result *Result) error {
	for _, spec := range rec.Specializations {
		id := uint32(spec.ID)

		info, err := v.provider.GetSpecializationInfo(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				result.Errors = append(result.Errors, Issue{
					Code:    CodeInvalidSpecializationID,
					Message: fmt.Sprintf("specialization %d does not exist", id),
					ID:      id,
				})
				continue
			}
			return errors.Wrapf(err, "looking up specialization %d", id)
		}

		if info.Profession != rec.Profession {
			result.Errors = append(result.Errors, Issue{
				Code:    CodeSpecializationNotForProfession,
				Message: fmt.Sprintf("specialization %s (%d) belongs to %s, not %s", info.Name, id, info.Profession, rec.Profession),
				ID:      id,
			})
		}
	}
	return nil
}

// checkPets validates Ranger pet slots when the provider supports pet
// lookups. Providers without the PetProvider capability skip this check.
func (v *Validator) checkPets(ctx context.Context, rec *build.BuildRecord, result *Result) error {
	extra, ok := rec.Extra.(build.RangerExtra)
	if !ok {
		return nil
	}
	pets, ok := v.provider.(metadata.PetProvider)
	if !ok {
		return nil
	}

	for _, petID := range extra.Pets {
		if petID == 0 {
			continue
		}
		id := uint32(petID)

		if _, err := pets.GetPetInfo(ctx, id); err != nil {
			if errors.IsNotFound(err) {
				result.Errors = append(result.Errors, Issue{
					Code:    CodeInvalidPetID,
					Message: fmt.Sprintf("pet %d does not exist", id),
					ID:      id,
				})
				continue
			}
			return errors.Wrapf(err, "looking up pet %d", id)
		}
	}
	return nil
}
