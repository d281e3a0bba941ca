package jobs

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffConfig controls the exponential backoff a Worker applies when
// computing the scheduled_at it passes to Nack. The engine itself is
// policy-free about backoff (spec: "the caller owns the backoff policy");
// this is purely client-side.
type BackoffConfig struct {
	MaxRetries          uint32
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

type backoffCounter struct {
	BackoffConfig
}

// next returns the delay to apply before the job (now on its attempt'th
// nack) becomes eligible again, and whether attempt is still within
// MaxRetries. When ok is false the caller should nack without a
// scheduled_at: the engine will mark the job Failed regardless, since its
// own retries/max_retries bookkeeping is authoritative.
func (bc *backoffCounter) next(attempt uint32) (time.Duration, bool) {
	if bc.MaxRetries > 0 && attempt > bc.MaxRetries {
		return 0, false
	}
	exp := float64(bc.InitialInterval) * math.Pow(bc.Multiplier, float64(attempt-1))
	if exp > float64(bc.MaxInterval) {
		exp = float64(bc.MaxInterval)
	}
	if bc.RandomizationFactor > 0 {
		delta := bc.RandomizationFactor * exp
		minExp := exp - delta
		maxExp := exp + delta
		exp = minExp + rand.Float64()*(maxExp-minExp)
	}
	return time.Duration(exp), true
}
