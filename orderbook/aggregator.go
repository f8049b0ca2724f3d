package orderbook

import "github.com/inagib21/Orderbook/domain"

// levelData is the (count, totalRemaining) pair tracked per active price.
type levelData struct {
	count         uint64
	totalQuantity domain.Quantity
}

// levelAggregator is a derived view of both sides' resting orders, keyed by
// price alone — bids and asks never hold a resting level at the same price
// simultaneously in a consistent book, since that would already have crossed
// and matched. It is the sole source of truth for GetOrderInfos and for
// CanFullyFill, and must be updated on exactly the same code paths that
// mutate the FIFO queues: add on admission, remove on cancel or full fill,
// match on every partial fill.
type levelAggregator struct {
	data map[domain.Price]*levelData
}

func newLevelAggregator() *levelAggregator {
	return &levelAggregator{data: make(map[domain.Price]*levelData)}
}

// add records a newly admitted order resting at price with its initial
// quantity.
func (a *levelAggregator) add(price domain.Price, quantity domain.Quantity) {
	d, ok := a.data[price]
	if !ok {
		d = &levelData{}
		a.data[price] = d
	}
	d.count++
	d.totalQuantity += quantity
}

// remove records an order leaving price (cancelled, or fully filled) by its
// remaining quantity at the time of removal.
func (a *levelAggregator) remove(price domain.Price, quantity domain.Quantity) {
	d, ok := a.data[price]
	if !ok {
		return
	}
	d.count--
	d.totalQuantity -= quantity
	if d.count == 0 {
		delete(a.data, price)
	}
}

// match records a partial fill of traded quantity at price that did not
// empty the order (the order stays resting, just smaller). Fully-filled
// matches go through remove instead, since the order also leaves its level.
func (a *levelAggregator) match(price domain.Price, quantity domain.Quantity) {
	d, ok := a.data[price]
	if !ok {
		return
	}
	d.totalQuantity -= quantity
}

func (a *levelAggregator) get(price domain.Price) (levelData, bool) {
	d, ok := a.data[price]
	if !ok {
		return levelData{}, false
	}
	return *d, true
}
