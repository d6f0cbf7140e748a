package trajopt

import (
	"fmt"
	"io"
)

// Observer receives progress events from a planner run. Implementations
// must be fast: OnEvaluation fires on every objective evaluation inside the
// solver's hot loop.
type Observer interface {
	OnEvaluation(eval int, cost float64)
	OnResult(cost float64, evals int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OnEvaluation(int, float64) {}
func (NopObserver) OnResult(float64, int)     {}

// WriterObserver logs events to W, reporting every Every-th evaluation
// (every evaluation when Every <= 1).
type WriterObserver struct {
	W     io.Writer
	Every int
}

func (o *WriterObserver) OnEvaluation(eval int, cost float64) {
	if o.Every > 1 && eval%o.Every != 0 {
		return
	}
	fmt.Fprintf(o.W, "eval %d cost %f\n", eval, cost)
}

func (o *WriterObserver) OnResult(cost float64, evals int) {
	fmt.Fprintf(o.W, "optimization completed: cost %f after %d evaluations\n", cost, evals)
}
