// Package errors provides the structured error type used across the
// chatlink module.
//
// Every failure the codec can produce carries a machine-readable Code, a
// human message, and optionally the wrapped cause plus metadata about the
// offending value.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidProfessionf("profession byte %d outside 1-9", b)
//
// Wrapping a collaborator failure:
//
//	if err := mapper.PaletteToSkill(ctx, prof, idx, legend); err != nil {
//	    return errors.WrapWithCode(err, errors.CodePaletteLookupFailed, "resolving heal skill").
//	        WithMeta("palette_index", idx)
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsInvalidLength(err) {
//	    // input was truncated
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
package errors
