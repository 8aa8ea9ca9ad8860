package enums

import "testing"

func TestOrderStatusParseAndTerminal(t *testing.T) {
	status, err := ParseOrderStatus("shipping")
	if err != nil || status != OrderStatusShipping {
		t.Fatalf("expected shipping, got %v (%v)", status, err)
	}
	if _, err := ParseOrderStatus("teleported"); err == nil {
		t.Fatalf("expected error for unknown status")
	}

	if OrderStatusPreparing.IsTerminal() {
		t.Fatalf("preparing must not be terminal")
	}
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatalf("delivered and cancelled are terminal")
	}
}

func TestBookingStatusParseAndTerminal(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	if err != nil || status != BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %v (%v)", status, err)
	}
	if !BookingStatusCompleted.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Fatalf("completed and cancelled are terminal")
	}
	if BookingStatusPending.IsTerminal() {
		t.Fatalf("pending must not be terminal")
	}
}

func TestSessionTypeAndGoalValidity(t *testing.T) {
	for _, s := range []SessionType{SessionTypePersonal, SessionTypeGroup, SessionTypeEvaluation} {
		if !s.IsValid() {
			t.Fatalf("session type %s should be valid", s)
		}
	}
	if SessionType("cardio").IsValid() {
		t.Fatalf("unknown session type accepted")
	}

	if _, err := ParseGoal("weight-loss"); err != nil {
		t.Fatalf("weight-loss should parse: %v", err)
	}
	if _, err := ParseGoal("bulk"); err == nil {
		t.Fatalf("unknown goal accepted")
	}
}

func TestPaymentMethodParse(t *testing.T) {
	if _, err := ParsePaymentMethod("wave"); err != nil {
		t.Fatalf("wave should parse: %v", err)
	}
	if _, err := ParsePaymentMethod("orange_money"); err != nil {
		t.Fatalf("orange_money should parse: %v", err)
	}
	if _, err := ParsePaymentMethod("cash"); err == nil {
		t.Fatalf("cash is not a wallet")
	}
}

func TestDateBucketParse(t *testing.T) {
	for _, raw := range []string{"today", "this-week", "this-month", "past"} {
		if _, err := ParseDateBucket(raw); err != nil {
			t.Fatalf("%s should parse: %v", raw, err)
		}
	}
	if _, err := ParseDateBucket("yesterday"); err == nil {
		t.Fatalf("unknown bucket accepted")
	}
}
