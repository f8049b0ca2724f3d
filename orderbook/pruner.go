package orderbook

import (
	"time"

	"github.com/inagib21/Orderbook/domain"
)

// pruneBuffer is added past the computed session-close instant before the
// pruner wakes to scan, mirroring the reference engine's 100ms buffer.
const pruneBuffer = 100 * time.Millisecond

// runPruner is the day-order pruner's entire lifecycle: wait until the next
// session close (or until told to shut down), then sweep every resting
// GoodForDay order and cancel it as one batch, and repeat. It is started
// once by New and torn down by Close.
//
// State machine: Idle-Until-Deadline -> Scanning -> Cancelling ->
// Idle-Until-Deadline, with Shutdown reachable from the idle wait at any
// time.
func (b *Orderbook) runPruner() {
	defer close(b.pruneDone)

	for {
		wait := b.timeUntilNextSessionEnd()

		timer := time.NewTimer(wait)
		select {
		case <-b.shutdown:
			timer.Stop()
			return
		case <-timer.C:
		}

		ids := b.scanGoodForDayIds()
		if len(ids) > 0 {
			b.mu.Lock()
			b.cancelOrdersLocked(ids)
			b.mu.Unlock()
		}
	}
}

// timeUntilNextSessionEnd computes the duration from now until the next
// occurrence of the configured session-end time-of-day, plus a small buffer,
// using the book's (possibly injected) clock source.
func (b *Orderbook) timeUntilNextSessionEnd() time.Duration {
	now := b.cfg.clock()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := midnight.Add(b.cfg.sessionEnd)

	if !end.After(now) {
		end = end.Add(24 * time.Hour)
	}

	return end.Sub(now) + pruneBuffer
}

// scanGoodForDayIds takes the lock just long enough to collect the ids of
// every resting GoodForDay order, then releases it before the batch cancel —
// matching the reference engine's "scan, then cancel" split so the scan
// itself never blocks on the (possibly large) cancellation pass.
func (b *Orderbook) scanGoodForDayIds() []domain.OrderId {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ids []domain.OrderId
	for id, order := range b.orders {
		if order.OrderType() == domain.GoodForDay {
			ids = append(ids, id)
		}
	}
	return ids
}
