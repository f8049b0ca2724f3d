package main

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/inagib21/Orderbook/domain"
	"github.com/inagib21/Orderbook/orderbook"
)

func main() {
	fmt.Println("=== 订单簿撮合性能测试 ===")

	// 订单簿本身是同步的：每次 AddOrder 都持有同一把锁，
	// 这里用多个 goroutine 并发提交来测量锁竞争下的吞吐量。
	book := orderbook.New()
	defer book.Close()

	testDuration := 5 * time.Second
	numCPU := runtime.NumCPU()
	numWorkers := numCPU - 1 // 1 个核心留给 GC/调度
	if numWorkers < 1 {
		numWorkers = 1
	}

	var (
		orderCount atomic.Int64
		tradeCount atomic.Int64
	)

	fmt.Printf("开始测试...\n")
	fmt.Printf("CPU 核心数: %d\n", numCPU)
	fmt.Printf("生产者数量: %d (NumCPU - 1)\n", numWorkers)
	fmt.Printf("测试时长: %v\n\n", testDuration)

	startTime := time.Now()
	stopChan := make(chan struct{})

	// 启动多个生产者，交替提交买单和卖单，价格区间重叠以产生成交。
	for w := 0; w < numWorkers; w++ {
		go func(workerID int) {
			var orderID domain.OrderId
			for {
				select {
				case <-stopChan:
					return
				default:
				}

				var side domain.Side
				if orderID%2 == 0 {
					side = domain.Buy
				} else {
					side = domain.Sell
				}
				price := domain.Price(50000 + int64(orderID%200))

				id := domain.OrderId(workerID)<<48 | orderID
				order := domain.NewOrder(domain.GoodTillCancel, id, side, price, 1)

				trades := book.AddOrder(order)
				orderCount.Add(1)
				tradeCount.Add(int64(len(trades)))
				orderID++
			}
		}(w)
	}

	// 实时显示进度。
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			elapsed := time.Since(startTime)
			orders := orderCount.Load()
			trades := tradeCount.Load()
			qps := float64(orders) / elapsed.Seconds()
			tps := float64(trades) / elapsed.Seconds()
			fmt.Printf("[%.0fs] 订单: %d (%.0f/s) | 成交: %d (%.0f/s)\n",
				elapsed.Seconds(), orders, qps, trades, tps)
		}
	}()

	time.Sleep(testDuration)
	close(stopChan)
	ticker.Stop()
	time.Sleep(200 * time.Millisecond)

	elapsed := time.Since(startTime)
	totalOrders := orderCount.Load()
	totalTrades := tradeCount.Load()

	qps := float64(totalOrders) / elapsed.Seconds()
	tps := float64(totalTrades) / elapsed.Seconds()
	matchRate := float64(totalTrades) / float64(totalOrders) * 100

	fmt.Println("\n=== 性能测试结果 ===")
	fmt.Printf("测试时长:     %v\n", elapsed)
	fmt.Printf("总订单数:     %d\n", totalOrders)
	fmt.Printf("总成交数:     %d\n", totalTrades)
	fmt.Printf("订单吞吐量:   %.0f orders/sec\n", qps)
	fmt.Printf("成交吞吐量:   %.0f trades/sec\n", tps)
	fmt.Printf("撮合率:       %.2f%%\n", matchRate)

	infos := book.GetOrderInfos()
	fmt.Println("\n=== 订单簿状态 ===")
	if len(infos.Bids) > 0 {
		fmt.Printf("最佳买价:     %d\n", infos.Bids[0].Price)
	}
	if len(infos.Asks) > 0 {
		fmt.Printf("最佳卖价:     %d\n", infos.Asks[0].Price)
	}

	fmt.Println("\n买单深度 (前5档):")
	for i, level := range infos.Bids {
		if i >= 5 {
			break
		}
		fmt.Printf("  %d. 价格: %d, 数量: %d\n", i+1, level.Price, level.Quantity)
	}

	fmt.Println("\n卖单深度 (前5档):")
	for i, level := range infos.Asks {
		if i >= 5 {
			break
		}
		fmt.Printf("  %d. 价格: %d, 数量: %d\n", i+1, level.Price, level.Quantity)
	}
}
