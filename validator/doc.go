// Package validator wraps go-playground/validator for request structs.
//
// Field names in the returned map are the names clients send: the form
// tag for query parameters, the json tag for bodies. The isodate tag
// accepts the layouts of types.ParseDate.
package validator
