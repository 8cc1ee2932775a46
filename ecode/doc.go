// Package ecode defines the business error codes returned in API responses
// and helpers that build short field messages.
//
// Codes follow a negative numbering scheme:
//   - 0: Success (OK)
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// Retrieve human-readable messages:
//
//	message := ecode.Text(ecode.ParamErr)
//	// Returns: "Invalid parameters"
//
// Register application specific codes:
//
//	ecode.Register(-1001, "Habit already archived")
//
// Field helpers produce the short messages used in validation errors:
//
//	ecode.FieldIsInvalid("fields") // "fields invalid"
package ecode
