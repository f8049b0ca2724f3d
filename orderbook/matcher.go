package orderbook

import "github.com/inagib21/Orderbook/domain"

// matchOrders runs the crossing loop: while both sides are non-empty and the
// best bid is at least the best ask, pair their front orders, trade the
// smaller remaining quantity, and remove any side whose front order is now
// fully filled. Strict price-then-time priority — ties at a price are broken
// purely by arrival order in that level's FIFO queue, never by size.
//
// After the loop can no longer cross, a cleanup cancels a FillAndKill order
// left resting at the very top of either side. Admission only inserts a
// FillAndKill that crosses (CanMatch gates it), so any unfilled remainder it
// leaves is at the top of its side, and this cleanup is what cancels it —
// "execute what's possible, kill the rest". Callers must hold b.mu.
func (b *Orderbook) matchOrders() domain.Trades {
	var trades domain.Trades

	for {
		bidLevel := b.bids.best()
		askLevel := b.asks.best()
		if bidLevel == nil || askLevel == nil {
			break
		}
		if bidLevel.price < askLevel.price {
			break
		}

		bidOrder := bidLevel.front()
		askOrder := askLevel.front()
		if bidOrder == nil || askOrder == nil {
			break
		}

		quantity := bidOrder.RemainingQuantity()
		if askOrder.RemainingQuantity() < quantity {
			quantity = askOrder.RemainingQuantity()
		}

		bidOrder.Fill(quantity)
		askOrder.Fill(quantity)

		if bidOrder.IsFilled() {
			b.removeFilledLocked(bidOrder, quantity)
		} else {
			b.levels.match(bidOrder.Price(), quantity)
		}
		if askOrder.IsFilled() {
			b.removeFilledLocked(askOrder, quantity)
		} else {
			b.levels.match(askOrder.Price(), quantity)
		}

		trades = append(trades, domain.Trade{
			Bid: domain.TradeInfo{OrderId: bidOrder.OrderId(), Price: bidOrder.Price(), Quantity: quantity},
			Ask: domain.TradeInfo{OrderId: askOrder.OrderId(), Price: askOrder.Price(), Quantity: quantity},
		})
	}

	b.cancelRestingFillAndKillLocked(b.bids)
	b.cancelRestingFillAndKillLocked(b.asks)

	return trades
}

// removeFilledLocked erases an order that the matcher just reduced to zero
// remaining quantity from its side's queue, its index entry, and the level
// aggregator — as a Remove, not a Match, since it no longer rests. tradedQty
// is the amount just traded, which equals the order's entire remaining
// quantity immediately before this fill (that is what made it fully filled).
func (b *Orderbook) removeFilledLocked(order *domain.Order, tradedQty domain.Quantity) {
	side := b.sideIndex(order.Side())
	side.remove(order)
	delete(b.orders, order.OrderId())
	b.levels.remove(order.Price(), tradedQty)
}

func (b *Orderbook) cancelRestingFillAndKillLocked(side priceIndex) {
	level := side.best()
	if level == nil {
		return
	}
	order := level.front()
	if order == nil || order.OrderType() != domain.FillAndKill {
		return
	}
	b.cancelOrderLocked(order.OrderId())
}
