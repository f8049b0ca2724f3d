package orderbook

import (
	"container/list"

	"github.com/inagib21/Orderbook/domain"
)

// priceLevel holds every resting order at one price, in arrival order. Orders
// carry their own *list.Element as their domain.Order handle, so removing a
// specific order from the middle of the queue (a cancel, not a match at the
// front) is O(1).
type priceLevel struct {
	price  domain.Price
	orders *list.List
}

func newPriceLevel(price domain.Price) *priceLevel {
	return &priceLevel{price: price, orders: list.New()}
}

func (l *priceLevel) front() *domain.Order {
	if l.orders.Len() == 0 {
		return nil
	}
	return l.orders.Front().Value.(*domain.Order)
}

// priceIndex orders the resting levels on one side of the book — descending
// for bids, ascending for asks — and gives the matcher O(1) access to the
// best level. Two implementations satisfy this interface: a doubly-linked
// hash map (simple, correct for any price including negative ticks) and a
// sharded red-black tree of price buckets (faster once the level count grows
// large, ordered via github.com/emirpasic/gods/v2/trees/redblacktree).
type priceIndex interface {
	// insert appends order to the tail of its price level's FIFO queue,
	// creating the level if this is the first order at that price. It sets
	// order's handle so remove can later find it in O(1).
	insert(order *domain.Order)

	// remove erases order from its level's queue using its stored handle,
	// and erases the level itself if the queue becomes empty. A no-op if
	// order does not belong to this index (defensive; callers only remove
	// orders they know are resting here).
	remove(order *domain.Order)

	// best returns the highest-priority level (best bid or best ask), or nil
	// if the side is empty.
	best() *priceLevel

	// bestPrice reports the best price and whether one exists.
	bestPrice() (domain.Price, bool)

	// prices returns up to max active prices in priority order (0 means all).
	prices(max int) []domain.Price

	isEmpty() bool
	size() int
}
