package domain

import "testing"

func TestOrderStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderDelivered, false},
		{OrderProcessing, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderRefunded, true},
		{OrderCancelled, OrderProcessing, false},
		{OrderRefunded, OrderPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleCustomer, RoleStaff, RoleAdmin, RoleManager} {
		if !ValidRole(role) {
			t.Errorf("expected %q to be valid", role)
		}
	}
	if ValidRole("superuser") || ValidRole("") {
		t.Errorf("unknown roles must be rejected")
	}
}
