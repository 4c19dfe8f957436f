// Package snowflake mints time-ordered 64-bit identifiers.
package snowflake

import (
	"sync/atomic"
	"time"

	"orbit/internal/domain"
)

// Epoch is the platform launch date, 2023-10-01T00:00:00Z, in Unix
// milliseconds. Identifier timestamps are offsets from it.
const Epoch int64 = 1_696_118_400_000

const sequenceMask = 4095

var counter atomic.Int64

// Next mints a new identifier: the millisecond offset from Epoch in the high
// bits, a 12-bit sequence in the low bits. It is safe for any number of
// concurrent callers and never fails.
//
// The sequence wraps silently at 4096, so more than 4096 ids minted inside
// one millisecond by one process can collide; that limit is accepted. A
// system clock moving backwards shrinks the offset and weakens monotonicity;
// no correction is applied. Multi-instance deployments need external
// coordination to avoid cross-process collisions.
func Next() domain.ID {
	seq := counter.Add(1) & sequenceMask
	counter.And(sequenceMask)

	now := time.Now().UnixMilli()
	return domain.ID((now-Epoch)<<12 | seq)
}
