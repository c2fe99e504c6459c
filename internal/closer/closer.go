package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/logger"
)

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = logger.L()
)

func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order so dependents close before their dependencies.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

func CloseAll(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			log.Error(ctx, "closing "+c.name, logger.ErrorF(err))
			errs = append(errs, err)
			continue
		}
		log.Info(ctx, "closed "+c.name)
	}
	closers = nil

	return errors.Join(errs...)
}
