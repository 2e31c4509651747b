package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
)

// compensation collects undo steps for side effects that already happened. A step
// is registered right after its side effect succeeds and only runs if a later
// step fails.
type compensation struct {
	steps []compensationStep
}

type compensationStep struct {
	name string
	undo func(ctx context.Context) error
}

func (c *compensation) register(name string, undo func(ctx context.Context) error) {
	c.steps = append(c.steps, compensationStep{name: name, undo: undo})
}

// run undoes the registered steps in reverse order. Failures are logged only;
// the caller reports the original error.
func (c *compensation) run(ctx context.Context) {
	// the request may already be cancelled; the undo steps carry their own timeouts.
	ctx = context.WithoutCancel(ctx)

	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.undo(ctx); err != nil {
			logger.Error("rollback step failed", "step", step.name, "err", err)
		}
	}

	c.steps = nil
}
