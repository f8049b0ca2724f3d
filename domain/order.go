package domain

import "fmt"

// Order is a single resting or transient order. Identity (Id, Side,
// initial quantity) never changes after construction; Type and Price change
// exactly once, when AddOrder reprices a Market order to the opposite side's
// worst touch. Remaining is mutated only by Fill, which the matcher calls
// under the book's lock.
type Order struct {
	orderType         OrderType
	id                OrderId
	side              Side
	price             Price
	initialQuantity   Quantity
	remainingQuantity Quantity

	// handle is an opaque back-reference into the book's FIFO queue for this
	// order (a *list.Element once the order is resting). It is set by the
	// book on insertion and cleared on removal; orderbook is the only package
	// that ever type-asserts it. Kept as `any` here so this package does not
	// need to import container/list or anything book-internal.
	handle any
}

// NewOrder creates a limit-priced order of the given type. Market orders are
// normally built with NewMarketOrder instead, since they carry no price yet.
func NewOrder(orderType OrderType, id OrderId, side Side, price Price, quantity Quantity) *Order {
	return &Order{
		orderType:         orderType,
		id:                id,
		side:              side,
		price:             price,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

// NewMarketOrder creates a Market order. Its price is InvalidPrice until
// AddOrder resolves it via ToGoodTillCancel.
func NewMarketOrder(id OrderId, side Side, quantity Quantity) *Order {
	return NewOrder(Market, id, side, InvalidPrice, quantity)
}

func (o *Order) OrderId() OrderId            { return o.id }
func (o *Order) Side() Side                  { return o.side }
func (o *Order) Price() Price                { return o.price }
func (o *Order) OrderType() OrderType        { return o.orderType }
func (o *Order) InitialQuantity() Quantity   { return o.initialQuantity }
func (o *Order) RemainingQuantity() Quantity { return o.remainingQuantity }
func (o *Order) FilledQuantity() Quantity    { return o.initialQuantity - o.remainingQuantity }
func (o *Order) IsFilled() bool              { return o.remainingQuantity == 0 }

// Fill reduces the remaining quantity by qty. It panics if qty exceeds what
// remains — that can only happen from a bug in the matcher's pairing math.
func (o *Order) Fill(qty Quantity) {
	if qty > o.remainingQuantity {
		panic(fmt.Sprintf("order (%d) cannot be filled for more than its remaining quantity", o.id))
	}
	o.remainingQuantity -= qty
}

// ToGoodTillCancel converts a Market order to a priced GoodTillCancel order.
// It panics if called on any other order type — only AddOrder's admission
// path for Market orders may call this, exactly once, per order.
func (o *Order) ToGoodTillCancel(price Price) {
	if o.orderType != Market {
		panic(fmt.Sprintf("order (%d) cannot have its price adjusted, only market orders can", o.id))
	}
	o.price = price
	o.orderType = GoodTillCancel
}

// Handle and SetHandle give the orderbook package a typed-but-opaque place to
// stash the order's position inside its resting FIFO queue, without this
// package needing to import anything book-internal. Callers outside the
// book's own package have no reason to call these.
func (o *Order) Handle() any     { return o.handle }
func (o *Order) SetHandle(h any) { o.handle = h }
