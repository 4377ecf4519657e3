package domain

import "testing"

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusNew, OrderStatusPending, OrderStatusConfirmed,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	for _, s := range []OrderStatus{"", "created", "PENDING", "done"} {
		if s.IsValid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusNew, OrderStatusConfirmed, true},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusNew, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("expected delivered and cancelled to be terminal")
	}
	if OrderStatusShipped.IsTerminal() {
		t.Fatal("expected shipped to be non-terminal")
	}
}

func TestDefaultStockPolicy(t *testing.T) {
	policy := DefaultStockPolicy()

	if policy.EffectFor(OrderStatusCancelled) != StockEffectRestock {
		t.Fatal("expected restock on cancellation")
	}
	for _, s := range []OrderStatus{OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered} {
		if policy.EffectFor(s) != StockEffectNone {
			t.Fatalf("expected no ledger effect for %q", s)
		}
	}
}

func TestCalculateTotalAmount(t *testing.T) {
	items := []OrderItem{
		{ProductID: "aabbccddee112233aabbccd1", Quantity: 2, UnitPrice: Amount(1000)},
		{ProductID: "aabbccddee112233aabbccd2", Quantity: 1, UnitPrice: Amount(500)},
	}

	total := CalculateTotalAmount(items)
	if total != Amount(2500) {
		t.Fatalf("expected total 2500, got %d", total)
	}
}

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "aabbccddee112233aabbccd1", Quantity: 3, UnitPrice: Amount(1500)},
	}

	order := NewOrder("ccddaabbee112233aabbccdd", "acme-supplies", OrderStatusPending, items)

	if order.Status != OrderStatusPending {
		t.Fatalf("expected status pending, got %s", order.Status)
	}
	if order.TotalAmount != Amount(4500) {
		t.Fatalf("expected total 4500, got %d", order.TotalAmount)
	}
	if order.AccountName != "acme-supplies" {
		t.Fatalf("unexpected account name %q", order.AccountName)
	}
}
