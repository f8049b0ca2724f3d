package orderbook

import (
	"math/rand"
	"testing"

	"github.com/inagib21/Orderbook/domain"
)

// generatePrices returns n unique prices in a random order, so each benchmark
// iteration exercises insertion into unpredictable positions rather than
// always appending at the best or worst end.
func generatePrices(n int) []domain.Price {
	prices := make([]domain.Price, n)
	for i := range prices {
		prices[i] = domain.Price(50000 + i)
	}
	rand.Shuffle(n, func(i, j int) { prices[i], prices[j] = prices[j], prices[i] })
	return prices
}

func benchmarkInsert(b *testing.B, newIndex func(bool) priceIndex, n int) {
	prices := generatePrices(n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		idx := newIndex(true)
		for id, price := range prices {
			idx.insert(domain.NewOrder(domain.GoodTillCancel, domain.OrderId(id), domain.Buy, price, 1))
		}
	}
}

func BenchmarkHashListInsert100(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newHashListPriceIndex(d) }, 100)
}

func BenchmarkHashListInsert1000(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newHashListPriceIndex(d) }, 1000)
}

func BenchmarkHashListInsert10000(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newHashListPriceIndex(d) }, 10000)
}

func BenchmarkShardedInsert100(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newShardedPriceIndex(d, 128) }, 100)
}

func BenchmarkShardedInsert1000(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newShardedPriceIndex(d, 128) }, 1000)
}

func BenchmarkShardedInsert10000(b *testing.B) {
	benchmarkInsert(b, func(d bool) priceIndex { return newShardedPriceIndex(d, 128) }, 10000)
}

func benchmarkBestPrice(b *testing.B, idx priceIndex, prices []domain.Price) {
	for id, price := range prices {
		idx.insert(domain.NewOrder(domain.GoodTillCancel, domain.OrderId(id), domain.Buy, price, 1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.bestPrice()
	}
}

func BenchmarkHashListBestPrice(b *testing.B) {
	benchmarkBestPrice(b, newHashListPriceIndex(true), generatePrices(100))
}

func BenchmarkShardedBestPrice(b *testing.B) {
	benchmarkBestPrice(b, newShardedPriceIndex(true, 128), generatePrices(100))
}

func benchmarkRemove(b *testing.B, newIndex func(bool) priceIndex, n int) {
	prices := generatePrices(n)
	orders := make([]*domain.Order, n)
	for i, price := range prices {
		orders[i] = domain.NewOrder(domain.GoodTillCancel, domain.OrderId(i), domain.Buy, price, 1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		idx := newIndex(true)
		for _, order := range orders {
			idx.insert(order)
		}
		b.StartTimer()

		for _, order := range orders {
			idx.remove(order)
		}
	}
}

func BenchmarkHashListRemove(b *testing.B) {
	benchmarkRemove(b, func(d bool) priceIndex { return newHashListPriceIndex(d) }, 100)
}

func BenchmarkShardedRemove(b *testing.B) {
	benchmarkRemove(b, func(d bool) priceIndex { return newShardedPriceIndex(d, 128) }, 100)
}
