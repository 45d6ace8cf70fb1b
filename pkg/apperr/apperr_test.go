package apperr

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(Invalid("bad input")) != KindInvalid {
		t.Error("expected KindInvalid")
	}
	if KindOf(NotFound("missing")) != KindNotFound {
		t.Error("expected KindNotFound")
	}
	if KindOf(Conflict("duplicate")) != KindConflict {
		t.Error("expected KindConflict")
	}
	if KindOf(Unauthorized("nope")) != KindUnauthorized {
		t.Error("expected KindUnauthorized")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("expected KindInternal for plain errors")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Invalid("field %s is required", "name")
	if err.Error() != "field name is required" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
