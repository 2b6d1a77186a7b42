package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderStatusDelivered.IsTerminal() {
		t.Fatalf("delivered should be terminal")
	}
	if !OrderStatusCancelled.IsTerminal() {
		t.Fatalf("cancelled should be terminal")
	}
	if OrderStatusShipped.IsTerminal() {
		t.Fatalf("shipped should not be terminal")
	}
	if OrderStatus("bogus").IsTerminal() {
		t.Fatalf("unknown status is not terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != OrderStatusShipped {
		t.Fatalf("expected shipped got %s", status)
	}
	if _, err := ParseOrderStatus("returned"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseProductCategory(t *testing.T) {
	for _, value := range []string{"perfume", "cologne", "clothing"} {
		if _, err := ParseProductCategory(value); err != nil {
			t.Fatalf("expected %q to parse: %v", value, err)
		}
	}
	if _, err := ParseProductCategory("gadget"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
