package models

import "testing"

func TestOrderStatusHappyPath(t *testing.T) {
	steps := []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered}

	current := StatusPending
	for _, next := range steps {
		if !current.CanTransitionTo(next) {
			t.Fatalf("expected transition %s -> %s to be allowed", current, next)
		}
		current = next
	}
}

func TestOrderStatusCancellation(t *testing.T) {
	if !StatusPending.CanTransitionTo(StatusCancelled) {
		t.Fatal("expected pending -> cancelled to be allowed")
	}
	if !StatusProcessing.CanTransitionTo(StatusCancelled) {
		t.Fatal("expected processing -> cancelled to be allowed")
	}
	if StatusShipped.CanTransitionTo(StatusCancelled) {
		t.Fatal("expected shipped -> cancelled to be rejected")
	}
}

func TestOrderStatusReturnBranch(t *testing.T) {
	if !StatusDelivered.CanTransitionTo(StatusReturnRequested) {
		t.Fatal("expected delivered -> return requested to be allowed")
	}
	if !StatusReturnRequested.CanTransitionTo(StatusReturnAccepted) {
		t.Fatal("expected return requested -> return accepted to be allowed")
	}
	if !StatusReturnRequested.CanTransitionTo(StatusReturnCancelled) {
		t.Fatal("expected return requested -> return cancelled to be allowed")
	}
	// a cancelled return keeps delivered semantics
	if !StatusReturnCancelled.CanTransitionTo(StatusReturnRequested) {
		t.Fatal("expected return cancelled -> return requested to be allowed")
	}
}

func TestOrderStatusRejectsBackwardSteps(t *testing.T) {
	invalid := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{StatusDelivered, StatusPending},
		{StatusShipped, StatusProcessing},
		{StatusCancelled, StatusProcessing},
		{StatusReturnAccepted, StatusReturnRequested},
		{StatusPending, StatusDelivered},
	}
	for _, tc := range invalid {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected transition %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !StatusReturnRequested.Valid() {
		t.Fatal("expected 'return requested' to be a known status")
	}
	if OrderStatus("refunded").Valid() {
		t.Fatal("expected 'refunded' to be unknown")
	}
}
