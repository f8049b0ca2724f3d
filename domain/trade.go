package domain

// TradeInfo records one side's contribution to a trade: the resting order
// that participated, the price it rested at, and the quantity exchanged.
type TradeInfo struct {
	OrderId  OrderId
	Price    Price
	Quantity Quantity
}

// Trade is a single pairing produced by the matcher. The two sides are kept
// separate rather than collapsed into one trade price, since a bid and an ask
// can legitimately rest at different prices when they cross.
type Trade struct {
	Bid TradeInfo
	Ask TradeInfo
}

// Trades is the ordered result of one AddOrder/ModifyOrder call, in the order
// the matcher produced them.
type Trades []Trade
