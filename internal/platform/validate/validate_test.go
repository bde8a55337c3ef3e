package validate

import (
	"testing"

	"petify-api/internal/platform/apperr"
)

type sample struct {
	PetID  string  `json:"petId" validate:"required"`
	Email  string  `json:"requesterEmail" validate:"required,email"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Status string  `json:"status" validate:"omitempty,oneof=active paused"`
}

func TestStruct_UsesJSONNamesAndFirstFailure(t *testing.T) {
	err := Struct(sample{Email: "x@y.z", Amount: 1})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
	if got := apperr.Message(err); got != "petId is required" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStruct_Params(t *testing.T) {
	err := Struct(sample{PetID: "p", Email: "x@y.z", Amount: 0})
	if got := apperr.Message(err); got != "amount must be greater than 0" {
		t.Fatalf("unexpected message %q", got)
	}

	err = Struct(sample{PetID: "p", Email: "x@y.z", Amount: 2, Status: "cancelled"})
	if got := apperr.Message(err); got != "status must be one of [active paused]" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(&sample{PetID: "p", Email: "x@y.z", Amount: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFields(t *testing.T) {
	got := Fields(sample{})
	if _, ok := got["petId"]; !ok {
		t.Fatalf("expected petId in %v", got)
	}
	if _, ok := got["requesterEmail"]; !ok {
		t.Fatalf("expected requesterEmail in %v", got)
	}
}
