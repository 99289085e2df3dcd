package zmerr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(422, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestViolationsCopy(t *testing.T) {
	e := NewInvalidViolations([]string{"name is required"})
	if ErrInvalidReq.Extras != nil {
		t.Error("Expected ErrInvalidReq sentinel to stay without extras")
	}
	if e.Extras == nil {
		t.Error("Expected violations to be attached to the copy")
	}
}
