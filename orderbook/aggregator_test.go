package orderbook

import "testing"

func TestLevelAggregatorAddAccumulates(t *testing.T) {
	agg := newLevelAggregator()
	agg.add(100, 5)
	agg.add(100, 3)

	d, ok := agg.get(100)
	if !ok {
		t.Fatalf("expected level 100 to exist")
	}
	if d.count != 2 || d.totalQuantity != 8 {
		t.Fatalf("expected count=2 totalQuantity=8, got %+v", d)
	}
}

func TestLevelAggregatorRemoveDeletesWhenCountHitsZero(t *testing.T) {
	agg := newLevelAggregator()
	agg.add(100, 5)
	agg.remove(100, 5)

	if _, ok := agg.get(100); ok {
		t.Fatalf("expected level 100 to be gone once its only order left")
	}
}

func TestLevelAggregatorRemoveKeepsLevelWhileOrdersRemain(t *testing.T) {
	agg := newLevelAggregator()
	agg.add(100, 5)
	agg.add(100, 3)
	agg.remove(100, 5)

	d, ok := agg.get(100)
	if !ok {
		t.Fatalf("expected level 100 to still exist")
	}
	if d.count != 1 || d.totalQuantity != 3 {
		t.Fatalf("expected count=1 totalQuantity=3, got %+v", d)
	}
}

func TestLevelAggregatorMatchReducesQuantityWithoutChangingCount(t *testing.T) {
	agg := newLevelAggregator()
	agg.add(100, 10)
	agg.match(100, 4)

	d, ok := agg.get(100)
	if !ok {
		t.Fatalf("expected level 100 to still exist")
	}
	if d.count != 1 || d.totalQuantity != 6 {
		t.Fatalf("expected count=1 totalQuantity=6 after a partial match, got %+v", d)
	}
}

func TestLevelAggregatorUnknownPriceIsNoOp(t *testing.T) {
	agg := newLevelAggregator()
	agg.remove(999, 1) // must not panic
	agg.match(999, 1)  // must not panic

	if _, ok := agg.get(999); ok {
		t.Fatalf("expected no level to have been created")
	}
}
