// Package errors provides structured errors for rpg-dungeon.
//
// Errors carry a Code, a message, an optional cause and free-form metadata.
// Gameplay outcomes such as a blocked move or a full inventory are never
// errors; this package is for invalid configuration, unknown level IDs and
// failures of injected collaborators like the dice roller.
//
// # Basic Usage
//
//	err := errors.NotFound("level not found").WithMeta("level_id", id)
//	err := errors.InvalidArgumentf("width must be at least %d", minWidth)
//
// Wrapping keeps the code of an existing Error:
//
//	if _, err := roller.Roll(5); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInternal, "damage roll failed")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("width", cfg.Width, 8, 1024, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
