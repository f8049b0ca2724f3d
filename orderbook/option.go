package orderbook

import "time"

// priceIndexKind selects which priceIndex implementation backs each side of
// a new Orderbook.
type priceIndexKind int

const (
	// Sharded buckets price levels and orders the buckets with a red-black
	// tree. It is the default because it stays fast once a side accumulates
	// many distinct price levels.
	Sharded priceIndexKind = iota
	// HashList is the simpler doubly-linked hash map index.
	HashList
)

type config struct {
	clock          func() time.Time
	sessionEnd     time.Duration
	priceIndexKind priceIndexKind
	bucketSize     int64
}

func defaultConfig() config {
	return config{
		clock:          time.Now,
		sessionEnd:     16 * time.Hour, // 16:00 local, matching the reference engine
		priceIndexKind: Sharded,
		bucketSize:     128,
	}
}

// Option customizes a new Orderbook at construction time.
type Option func(*config)

// WithClock injects the wall-clock source the day-order pruner uses to
// compute the next session close. Tests use this to simulate end-of-session
// without sleeping in real time.
func WithClock(clock func() time.Time) Option {
	return func(c *config) { c.clock = clock }
}

// WithSessionEnd sets the local time-of-day (as a duration since midnight) at
// which resting GoodForDay orders are pruned. Defaults to 16:00.
func WithSessionEnd(d time.Duration) Option {
	return func(c *config) { c.sessionEnd = d }
}

// WithPriceIndex selects the price-ordering implementation for both sides.
func WithPriceIndex(kind priceIndexKind) Option {
	return func(c *config) { c.priceIndexKind = kind }
}

// WithBucketSize overrides the sharded index's bucket width in ticks. Only
// meaningful together with WithPriceIndex(Sharded).
func WithBucketSize(size int64) Option {
	return func(c *config) { c.bucketSize = size }
}
