// Package orderbook implements a single-instrument limit order book with a
// continuous double-auction matching engine: price-time priority queues on
// both sides, an orderId index for O(1) cancel/amend, the order-type
// policies (GoodTillCancel, FillAndKill, FillOrKill, GoodForDay, Market), a
// level aggregator kept in sync with the queues, and a background pruner for
// day orders. The whole surface is synchronous: every exported method takes
// one mutex for its full duration, so callers see submission-ordered effects
// with no further synchronization of their own.
package orderbook

import (
	"sync"

	"github.com/inagib21/Orderbook/domain"
)

// Orderbook is a single instrument's order book. The zero value is not
// usable; construct one with New.
type Orderbook struct {
	mu sync.Mutex

	bids priceIndex
	asks priceIndex

	orders map[domain.OrderId]*domain.Order
	levels *levelAggregator

	cfg config

	shutdown     chan struct{}
	shutdownOnce sync.Once
	pruneDone    chan struct{}
}

// New constructs an Orderbook and starts its day-order pruner goroutine.
// Call Close when the book is no longer needed to stop that goroutine.
func New(opts ...Option) *Orderbook {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	book := &Orderbook{
		bids:      newPriceIndex(cfg, true),
		asks:      newPriceIndex(cfg, false),
		orders:    make(map[domain.OrderId]*domain.Order),
		levels:    newLevelAggregator(),
		cfg:       cfg,
		shutdown:  make(chan struct{}),
		pruneDone: make(chan struct{}),
	}

	go book.runPruner()

	return book
}

func newPriceIndex(cfg config, descending bool) priceIndex {
	switch cfg.priceIndexKind {
	case HashList:
		return newHashListPriceIndex(descending)
	default:
		return newShardedPriceIndex(descending, cfg.bucketSize)
	}
}

// Close stops the day-order pruner and waits for it to exit. Safe to call
// more than once; only the first call has any effect.
func (b *Orderbook) Close() {
	b.shutdownOnce.Do(func() {
		close(b.shutdown)
	})
	<-b.pruneDone
}

// Size returns the number of resting orders across both sides.
func (b *Orderbook) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orders)
}

// GetOrderInfos returns a consistent, by-value snapshot of both sides:
// bids descending by price, asks ascending, each level's total remaining
// quantity drawn from the level aggregator.
func (b *Orderbook) GetOrderInfos() domain.OrderbookLevelInfos {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Orderbook) snapshotLocked() domain.OrderbookLevelInfos {
	bidPrices := b.bids.prices(0)
	askPrices := b.asks.prices(0)

	infos := domain.OrderbookLevelInfos{
		Bids: make([]domain.LevelInfo, 0, len(bidPrices)),
		Asks: make([]domain.LevelInfo, 0, len(askPrices)),
	}
	for _, p := range bidPrices {
		if d, ok := b.levels.get(p); ok {
			infos.Bids = append(infos.Bids, domain.LevelInfo{Price: p, Quantity: d.totalQuantity})
		}
	}
	for _, p := range askPrices {
		if d, ok := b.levels.get(p); ok {
			infos.Asks = append(infos.Asks, domain.LevelInfo{Price: p, Quantity: d.totalQuantity})
		}
	}
	return infos
}

// AddOrder admits order into the book per its OrderType's policy, runs the
// matcher, and returns every trade produced by this call in pairing order.
// A duplicate id, or an order the admission policy rejects outright, yields
// an empty (nil) slice — never an error.
func (b *Orderbook) AddOrder(order *domain.Order) domain.Trades {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.orders[order.OrderId()]; exists {
		return nil
	}

	switch order.OrderType() {
	case domain.Market:
		opposite := b.oppositeSide(order.Side())
		if opposite.isEmpty() {
			return nil
		}
		worst, _ := b.worstPrice(opposite)
		order.ToGoodTillCancel(worst)

	case domain.FillAndKill:
		if !b.canMatch(order.Side(), order.Price()) {
			return nil
		}

	case domain.FillOrKill:
		if !b.canFullyFill(order.Side(), order.Price(), order.RemainingQuantity()) {
			return nil
		}
	}

	b.insertLocked(order)
	trades := b.matchOrders()

	return trades
}

// CancelOrder removes a resting order. An unknown id is a silent no-op.
func (b *Orderbook) CancelOrder(id domain.OrderId) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelOrderLocked(id)
}

// cancelOrdersLocked cancels a batch of ids under a single critical section,
// so a group cancellation (e.g. the day-order pruner's sweep) is atomically
// visible to any concurrent reader. Callers must already hold b.mu.
func (b *Orderbook) cancelOrdersLocked(ids []domain.OrderId) {
	for _, id := range ids {
		b.cancelOrderLocked(id)
	}
}

func (b *Orderbook) cancelOrderLocked(id domain.OrderId) {
	order, exists := b.orders[id]
	if !exists {
		return
	}
	delete(b.orders, id)

	side := b.sideIndex(order.Side())
	side.remove(order)

	b.levels.remove(order.Price(), order.RemainingQuantity())
}

// ModifyOrder cancels the resting order identified by mod.Id and re-admits
// it with the amended side/price/quantity under its original, preserved
// OrderType. The amendment loses time priority: it is appended to the tail
// of its new level's queue, not spliced back into its old position. An
// unknown id returns an empty slice.
func (b *Orderbook) ModifyOrder(mod domain.OrderModify) domain.Trades {
	b.mu.Lock()
	defer b.mu.Unlock()

	original, exists := b.orders[mod.Id]
	if !exists {
		return nil
	}
	preservedType := original.OrderType()

	b.cancelOrderLocked(mod.Id)

	replacement := mod.ToOrder(preservedType)
	// Re-run the same admission policy AddOrder would, without re-acquiring
	// the lock (we already hold it) or re-checking for a duplicate id, since
	// we just freed that id ourselves.
	return b.admitAndMatch(replacement)
}

// admitAndMatch runs the admission policy and matcher for an order already
// known not to collide with a resting id. Callers must hold b.mu.
func (b *Orderbook) admitAndMatch(order *domain.Order) domain.Trades {
	switch order.OrderType() {
	case domain.Market:
		opposite := b.oppositeSide(order.Side())
		if opposite.isEmpty() {
			return nil
		}
		worst, _ := b.worstPrice(opposite)
		order.ToGoodTillCancel(worst)

	case domain.FillAndKill:
		if !b.canMatch(order.Side(), order.Price()) {
			return nil
		}

	case domain.FillOrKill:
		if !b.canFullyFill(order.Side(), order.Price(), order.RemainingQuantity()) {
			return nil
		}
	}

	b.insertLocked(order)
	return b.matchOrders()
}

func (b *Orderbook) insertLocked(order *domain.Order) {
	side := b.sideIndex(order.Side())
	side.insert(order)
	b.orders[order.OrderId()] = order
	b.levels.add(order.Price(), order.InitialQuantity())
}

func (b *Orderbook) sideIndex(side domain.Side) priceIndex {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

func (b *Orderbook) oppositeSide(side domain.Side) priceIndex {
	if side == domain.Buy {
		return b.asks
	}
	return b.bids
}

// worstPrice is the price a Market order reprices to: the far touch of the
// opposite side (highest ask for a Buy, lowest bid for a Sell), so it sweeps
// every resting level with any hope of a fill.
func (b *Orderbook) worstPrice(opposite priceIndex) (domain.Price, bool) {
	prices := opposite.prices(0)
	if len(prices) == 0 {
		return 0, false
	}
	return prices[len(prices)-1], true
}

// canMatch reports whether an order on side at price would cross the book
// right now.
func (b *Orderbook) canMatch(side domain.Side, price domain.Price) bool {
	if side == domain.Buy {
		bestAsk, ok := b.asks.bestPrice()
		return ok && price >= bestAsk
	}
	bestBid, ok := b.bids.bestPrice()
	return ok && price <= bestBid
}

// canFullyFill reports whether quantity worth of side at price can be
// entirely absorbed by the opposite book's marketable levels, using only the
// level aggregator's totals — O(levels examined), never O(orders).
func (b *Orderbook) canFullyFill(side domain.Side, price domain.Price, quantity domain.Quantity) bool {
	opposite := b.oppositeSide(side)
	var marketable func(domain.Price) bool
	if side == domain.Buy {
		marketable = func(levelPrice domain.Price) bool { return levelPrice <= price }
	} else {
		marketable = func(levelPrice domain.Price) bool { return levelPrice >= price }
	}

	var sum domain.Quantity
	for _, p := range opposite.prices(0) {
		if !marketable(p) {
			break
		}
		d, ok := b.levels.get(p)
		if !ok {
			continue
		}
		sum += d.totalQuantity
		if sum >= quantity {
			return true
		}
	}
	return false
}
