package knapsack

import (
	"context"
	"time"
)

// checkMask spaces out wall-clock and cancellation checks: they run once
// per 4096 steps.
const checkMask = 4095

// budget enforces Options.TimeLimit, Options.NodeLimit and Options.Context
// for the exponential strategies. The zero value is unlimited.
type budget struct {
	useDeadline bool
	deadline    time.Time
	nodeLimit   int64
	ctx         context.Context
	steps       int64
}

func newBudget(opts Options) budget {
	var b budget
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}
	b.nodeLimit = opts.NodeLimit
	b.ctx = opts.Context

	return b
}

// tick counts one unit of work and reports ErrNodeLimit / ErrTimeLimit once
// a budget is spent, or the context error once Options.Context is done.
func (b *budget) tick() error {
	b.steps++
	if b.nodeLimit > 0 && b.steps > b.nodeLimit {
		return ErrNodeLimit
	}
	if b.steps&checkMask != 0 {
		return nil
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	return contextErr(b.ctx)
}

// contextErr returns ctx.Err(), treating a nil ctx as never done.
func contextErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}

	return ctx.Err()
}
