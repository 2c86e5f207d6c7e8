package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(Invalid("bad input")) != KindInvalid {
		t.Fatalf("expected invalid kind")
	}
	if KindOf(NotFound("missing")) != KindNotFound {
		t.Fatalf("expected not-found kind")
	}
	if KindOf(Conflict("duplicate")) != KindConflict {
		t.Fatalf("expected conflict kind")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Fatalf("expected zero kind for plain error")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("save course: %w", Conflict("course exists"))
	if KindOf(wrapped) != KindConflict {
		t.Fatalf("expected conflict kind through wrap")
	}
}
