package main

import (
	"fmt"

	"github.com/inagib21/Orderbook/domain"
	"github.com/inagib21/Orderbook/orderbook"
)

func main() {
	book := orderbook.New()
	defer book.Close()

	fmt.Println("Order book started")

	// Sell 100000000 units at price 50000.
	sellOrder := domain.NewOrder(domain.GoodTillCancel, 1, domain.Sell, 50000, 100000000)
	book.AddOrder(sellOrder)
	fmt.Println("Submitted sell order: 100000000 @ 50000")

	// Buy half that quantity at the same price — crosses the resting sell.
	buyOrder := domain.NewOrder(domain.GoodTillCancel, 2, domain.Buy, 50000, 50000000)
	trades := book.AddOrder(buyOrder)
	fmt.Println("Submitted buy order: 50000000 @ 50000")

	for _, trade := range trades {
		fmt.Printf("Trade executed: bid order %d / ask order %d - price %d, quantity %d\n",
			trade.Bid.OrderId, trade.Ask.OrderId, trade.Ask.Price, trade.Ask.Quantity)
	}

	infos := book.GetOrderInfos()
	fmt.Printf("Resting levels - bids: %d, asks: %d\n", len(infos.Bids), len(infos.Asks))
}
