package ecode

import "testing"

func TestText(t *testing.T) {
	if got := Text(ParamErr); got != "Invalid parameters" {
		t.Errorf("Text(ParamErr) = %q", got)
	}
	if got := Text(-9999); got != Text(ServerErr) {
		t.Errorf("unknown code should fall back to server error, got %q", got)
	}
}

func TestRegister(t *testing.T) {
	Register(-1001, "Habit already archived")
	if got := Text(-1001); got != "Habit already archived" {
		t.Errorf("Text(-1001) = %q", got)
	}
}

func TestFieldIsInvalid(t *testing.T) {
	if got := FieldIsInvalid("fields"); got != "fields invalid" {
		t.Errorf("FieldIsInvalid = %q", got)
	}
	if got := FieldIsInvalid(); got != "invalid" {
		t.Errorf("FieldIsInvalid() = %q", got)
	}
}
