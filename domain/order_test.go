package domain

import "testing"

func TestNewOrderInitialState(t *testing.T) {
	o := NewOrder(GoodTillCancel, 1, Buy, 100, 10)

	if o.RemainingQuantity() != 10 {
		t.Errorf("expected remaining 10, got %d", o.RemainingQuantity())
	}
	if o.FilledQuantity() != 0 {
		t.Errorf("expected filled 0, got %d", o.FilledQuantity())
	}
	if o.IsFilled() {
		t.Error("expected fresh order to not be filled")
	}
}

func TestOrderFillPartialThenFull(t *testing.T) {
	o := NewOrder(GoodTillCancel, 1, Buy, 100, 10)

	o.Fill(4)
	if o.RemainingQuantity() != 6 {
		t.Errorf("expected remaining 6, got %d", o.RemainingQuantity())
	}
	if o.IsFilled() {
		t.Error("expected order to not be filled after partial fill")
	}

	o.Fill(6)
	if o.RemainingQuantity() != 0 {
		t.Errorf("expected remaining 0, got %d", o.RemainingQuantity())
	}
	if !o.IsFilled() {
		t.Error("expected order to be filled")
	}
}

func TestOrderFillMoreThanRemainingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Fill to panic when overfilling")
		}
	}()

	o := NewOrder(GoodTillCancel, 1, Buy, 100, 10)
	o.Fill(11)
}

func TestMarketOrderRepricesToGoodTillCancel(t *testing.T) {
	o := NewMarketOrder(5, Sell, 20)

	if o.OrderType() != Market {
		t.Fatalf("expected Market type, got %v", o.OrderType())
	}

	o.ToGoodTillCancel(150)

	if o.OrderType() != GoodTillCancel {
		t.Errorf("expected GoodTillCancel after reprice, got %v", o.OrderType())
	}
	if o.Price() != 150 {
		t.Errorf("expected price 150, got %d", o.Price())
	}
}

func TestToGoodTillCancelPanicsOnNonMarketOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected ToGoodTillCancel to panic on a non-Market order")
		}
	}()

	o := NewOrder(GoodTillCancel, 1, Buy, 100, 10)
	o.ToGoodTillCancel(200)
}

func TestOrderHandleRoundTrip(t *testing.T) {
	o := NewOrder(GoodTillCancel, 1, Buy, 100, 10)
	if o.Handle() != nil {
		t.Error("expected fresh order to have a nil handle")
	}

	o.SetHandle("sentinel")
	if o.Handle() != "sentinel" {
		t.Errorf("expected handle to round-trip, got %v", o.Handle())
	}
}
