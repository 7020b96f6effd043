// Package validator provides small, composable field-validation rules for
// request schemas.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Rules are evaluated with Apply, which aggregates failures into
// a ValidationErrors slice satisfying the error interface, so a schema can
// return every field problem through a single error value.
//
// Messages are phrased to read as a sentence when prefixed with the field
// name ("code must be at least 2 characters long"), which is the shape the
// HTTP layer puts on the wire.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MaxLen("name", name, 100),
//	    validator.OneOf("unit", unit, []string{"days", "months"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect field-level failures
//	}
//
// The package holds no state; every helper is a pure function and safe for
// concurrent use.
package validator
