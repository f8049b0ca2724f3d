package orderbook

import (
	"container/list"

	"github.com/inagib21/Orderbook/domain"
)

// hashListPriceIndex keeps one hash map from price to its level plus a
// doubly-linked chain through the levels themselves, ordered best-first. This
// is the simple, always-correct implementation: it works for any Price,
// including negative ticks, and gives O(1) best-price access at the cost of
// an O(levels) walk to insert a level that doesn't already exist (rare —
// most order flow arrives near the existing best price).
type hashListPriceIndex struct {
	levels     map[domain.Price]*linkedLevel
	head       *linkedLevel // best level
	descending bool         // true for bids (higher is better), false for asks
}

type linkedLevel struct {
	priceLevel
	next, prev *linkedLevel
}

func newHashListPriceIndex(descending bool) *hashListPriceIndex {
	return &hashListPriceIndex{
		levels:     make(map[domain.Price]*linkedLevel),
		descending: descending,
	}
}

var _ priceIndex = (*hashListPriceIndex)(nil)

func (idx *hashListPriceIndex) isBetter(a, b domain.Price) bool {
	if idx.descending {
		return a > b
	}
	return a < b
}

func (idx *hashListPriceIndex) insert(order *domain.Order) {
	price := order.Price()
	level, ok := idx.levels[price]
	if !ok {
		level = &linkedLevel{priceLevel: priceLevel{price: price, orders: list.New()}}
		idx.levels[price] = level
		idx.linkIn(level)
	}
	elem := level.orders.PushBack(order)
	order.SetHandle(elem)
}

func (idx *hashListPriceIndex) remove(order *domain.Order) {
	level, ok := idx.levels[order.Price()]
	if !ok {
		return
	}
	if elem, ok := order.Handle().(*list.Element); ok && elem != nil {
		level.orders.Remove(elem)
		order.SetHandle(nil)
	}
	if level.orders.Len() == 0 {
		idx.unlink(level)
		delete(idx.levels, level.price)
	}
}

func (idx *hashListPriceIndex) best() *priceLevel {
	if idx.head == nil {
		return nil
	}
	return &idx.head.priceLevel
}

func (idx *hashListPriceIndex) bestPrice() (domain.Price, bool) {
	if idx.head == nil {
		return 0, false
	}
	return idx.head.price, true
}

func (idx *hashListPriceIndex) prices(max int) []domain.Price {
	if idx.head == nil {
		return nil
	}
	out := make([]domain.Price, 0, len(idx.levels))
	for l := idx.head; l != nil; l = l.next {
		if max > 0 && len(out) >= max {
			break
		}
		out = append(out, l.price)
	}
	return out
}

func (idx *hashListPriceIndex) isEmpty() bool { return idx.head == nil }
func (idx *hashListPriceIndex) size() int     { return len(idx.levels) }

// linkIn splices a newly created level into the best-first chain.
func (idx *hashListPriceIndex) linkIn(level *linkedLevel) {
	if idx.head == nil {
		idx.head = level
		return
	}
	if idx.isBetter(level.price, idx.head.price) {
		level.next = idx.head
		idx.head.prev = level
		idx.head = level
		return
	}
	cur := idx.head
	for cur.next != nil && !idx.isBetter(level.price, cur.next.price) {
		cur = cur.next
	}
	level.next = cur.next
	level.prev = cur
	if cur.next != nil {
		cur.next.prev = level
	}
	cur.next = level
}

func (idx *hashListPriceIndex) unlink(level *linkedLevel) {
	if level.prev != nil {
		level.prev.next = level.next
	} else {
		idx.head = level.next
	}
	if level.next != nil {
		level.next.prev = level.prev
	}
	level.next, level.prev = nil, nil
}
