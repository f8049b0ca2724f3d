package orderbook

import (
	"container/list"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/inagib21/Orderbook/domain"
)

// shardedPriceIndex groups price levels into buckets of bucketSize
// consecutive ticks, orders the buckets with a red-black tree, and orders the
// levels within a bucket with a small doubly-linked chain. This trades a bit
// of insert cost for a tree that stays shallow (O(log buckets) instead of
// O(log levels)) once a side accumulates many distinct price levels.
//
// Buckets index their levels with a map rather than a fixed-size array
// addressed by bit-masking: masking only behaves for non-negative prices and
// power-of-two bucket sizes, and Price is allowed to be negative, so a map
// keeps this correct for every input.
type shardedPriceIndex struct {
	buckets    *rbt.Tree[int64, *priceBucket]
	bestBucket *priceBucket
	descending bool
	bucketSize int64
	count      int // total active levels across all buckets
}

type priceBucket struct {
	id     int64
	levels map[domain.Price]*bucketedLevel
	head   *bucketedLevel // best level within this bucket
}

type bucketedLevel struct {
	priceLevel
	next, prev *bucketedLevel
}

// newShardedPriceIndex builds a sharded index. bucketSize must be positive;
// 128 ticks per bucket is a reasonable default for most instruments.
func newShardedPriceIndex(descending bool, bucketSize int64) *shardedPriceIndex {
	var cmp func(a, b int64) int
	if descending {
		cmp = func(a, b int64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		}
	} else {
		cmp = func(a, b int64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}

	return &shardedPriceIndex{
		buckets:    rbt.NewWith[int64, *priceBucket](cmp),
		descending: descending,
		bucketSize: bucketSize,
	}
}

var _ priceIndex = (*shardedPriceIndex)(nil)

func bucketID(price domain.Price, bucketSize int64) int64 {
	p := int64(price)
	// floor division so negative prices bucket consistently
	if p < 0 && p%bucketSize != 0 {
		return p/bucketSize - 1
	}
	return p / bucketSize
}

func (idx *shardedPriceIndex) isBetter(a, b domain.Price) bool {
	if idx.descending {
		return a > b
	}
	return a < b
}

func (idx *shardedPriceIndex) insert(order *domain.Order) {
	price := order.Price()
	id := bucketID(price, idx.bucketSize)

	bucket, found := idx.buckets.Get(id)
	if !found {
		bucket = &priceBucket{id: id, levels: make(map[domain.Price]*bucketedLevel)}
		idx.buckets.Put(id, bucket)
	}

	level, ok := bucket.levels[price]
	if !ok {
		level = &bucketedLevel{priceLevel: priceLevel{price: price, orders: list.New()}}
		bucket.levels[price] = level
		idx.linkIntoBucket(bucket, level)
		idx.count++
	}

	elem := level.orders.PushBack(order)
	order.SetHandle(elem)

	idx.refreshBestBucket(bucket)
}

func (idx *shardedPriceIndex) remove(order *domain.Order) {
	price := order.Price()
	id := bucketID(price, idx.bucketSize)

	bucket, found := idx.buckets.Get(id)
	if !found {
		return
	}
	level, ok := bucket.levels[price]
	if !ok {
		return
	}

	if elem, ok := order.Handle().(*list.Element); ok && elem != nil {
		level.orders.Remove(elem)
		order.SetHandle(nil)
	}

	if level.orders.Len() != 0 {
		return
	}

	idx.unlinkFromBucket(bucket, level)
	delete(bucket.levels, price)
	idx.count--

	if len(bucket.levels) == 0 {
		idx.buckets.Remove(id)
		if idx.bestBucket == bucket {
			idx.bestBucket = nil
			idx.recomputeBestBucket()
		}
	} else if idx.bestBucket == bucket {
		idx.recomputeBestBucket()
	}
}

func (idx *shardedPriceIndex) best() *priceLevel {
	if idx.bestBucket == nil || idx.bestBucket.head == nil {
		return nil
	}
	return &idx.bestBucket.head.priceLevel
}

func (idx *shardedPriceIndex) bestPrice() (domain.Price, bool) {
	l := idx.best()
	if l == nil {
		return 0, false
	}
	return l.price, true
}

func (idx *shardedPriceIndex) prices(max int) []domain.Price {
	if idx.buckets.Empty() {
		return nil
	}
	out := make([]domain.Price, 0, idx.count)
	it := idx.buckets.Iterator()
	for it.Next() {
		bucket := it.Value()
		for l := bucket.head; l != nil; l = l.next {
			if max > 0 && len(out) >= max {
				return out
			}
			out = append(out, l.price)
		}
	}
	return out
}

func (idx *shardedPriceIndex) isEmpty() bool { return idx.buckets.Empty() }
func (idx *shardedPriceIndex) size() int     { return idx.count }

func (idx *shardedPriceIndex) linkIntoBucket(bucket *priceBucket, level *bucketedLevel) {
	if bucket.head == nil {
		bucket.head = level
		return
	}
	if idx.isBetter(level.price, bucket.head.price) {
		level.next = bucket.head
		bucket.head.prev = level
		bucket.head = level
		return
	}
	cur := bucket.head
	for cur.next != nil && !idx.isBetter(level.price, cur.next.price) {
		cur = cur.next
	}
	level.next = cur.next
	level.prev = cur
	if cur.next != nil {
		cur.next.prev = level
	}
	cur.next = level
}

func (idx *shardedPriceIndex) unlinkFromBucket(bucket *priceBucket, level *bucketedLevel) {
	if level.prev != nil {
		level.prev.next = level.next
	} else {
		bucket.head = level.next
	}
	if level.next != nil {
		level.next.prev = level.prev
	}
	level.next, level.prev = nil, nil
}

// refreshBestBucket updates the cached best bucket after an insert, which can
// only ever make a bucket's own best level better (never worse).
func (idx *shardedPriceIndex) refreshBestBucket(bucket *priceBucket) {
	if idx.bestBucket == nil {
		idx.bestBucket = bucket
		return
	}
	if bucket == idx.bestBucket {
		return
	}
	if idx.isBetterBucket(bucket.id, idx.bestBucket.id) {
		idx.bestBucket = bucket
	}
}

func (idx *shardedPriceIndex) isBetterBucket(a, b int64) bool {
	if idx.descending {
		return a > b
	}
	return a < b
}

// recomputeBestBucket falls back to the red-black tree's leftmost node, which
// is by construction the best-ordered bucket.
func (idx *shardedPriceIndex) recomputeBestBucket() {
	if idx.buckets.Empty() {
		idx.bestBucket = nil
		return
	}
	node := idx.buckets.Left()
	if node != nil {
		idx.bestBucket = node.Value
	}
}
