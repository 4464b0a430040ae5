package errgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-legacy/legacy/log"
	"github.com/LerianStudio/lib-legacy/legacy/runtime"
)

// ErrPanicRecovered is returned when a goroutine in the group panics.
var ErrPanicRecovered = errors.New("errgroup: panic recovered")

const panicComponent = "errgroup"

// Group manages goroutines that share a cancellation context. The zero value
// is usable and never cancels anything.
type Group struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
	logger  log.Logger
}

// WithContext returns a new Group and a context derived from ctx that is
// canceled by the first failing goroutine or when Wait returns.
func WithContext(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLogger sets the logger used to report recovered panics.
func (grp *Group) SetLogger(logger log.Logger) {
	if grp == nil {
		return
	}

	grp.logger = logger
}

func (grp *Group) groupContext() context.Context {
	if grp.ctx != nil {
		return grp.ctx
	}

	return context.Background()
}

func (grp *Group) fail(err error) {
	grp.errOnce.Do(func() {
		grp.err = err
		if grp.cancel != nil {
			grp.cancel()
		}
	})
}

// Go runs fn in a new goroutine. name labels the goroutine in panic reports.
func (grp *Group) Go(name string, fn func() error) {
	grp.wg.Add(1)

	go func() {
		defer grp.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				runtime.HandlePanicValue(grp.groupContext(), grp.logger, recovered, panicComponent, name)
				grp.fail(fmt.Errorf("%w: %s: %v", ErrPanicRecovered, name, recovered))
			}
		}()

		if err := fn(); err != nil {
			grp.fail(err)
		}
	}()
}

// Wait blocks until every goroutine has returned, cancels the group context
// and returns the first recorded error.
func (grp *Group) Wait() error {
	grp.wg.Wait()

	if grp.cancel != nil {
		grp.cancel()
	}

	return grp.err
}
