package domain

// OrderModify carries an amendment to a resting order: its id, and the new
// side, price, and quantity it should have. ModifyOrder looks up the
// original order's type, which this value does not carry — the type survives
// the modification unchanged.
type OrderModify struct {
	Id       OrderId
	Side     Side
	Price    Price
	Quantity Quantity
}

// ToOrder builds a fresh Order from the amendment under the given type. The
// type is supplied by the caller (ModifyOrder passes the original resting
// order's preserved type) rather than re-derived here.
func (m OrderModify) ToOrder(orderType OrderType) *Order {
	return NewOrder(orderType, m.Id, m.Side, m.Price, m.Quantity)
}
