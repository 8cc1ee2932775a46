package ecode

import "fmt"

const (
	requiredMsg = "required"
	invalidMsg  = "invalid"
	notExistMsg = "does not exist"
)

func withSubject(msg string, k []string) string {
	if len(k) > 0 && k[0] != "" {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string { return withSubject(requiredMsg, k) }

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string { return withSubject(invalidMsg, k) }

// NotExist returns not exist message
func NotExist(k ...string) string { return withSubject(notExistMsg, k) }
