package mining

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/pkg/workerpool"
)

// Service runs one or more controllers, each emulating an independent miner.
type Service struct {
	logger      *zap.Logger
	controllers []*Controller

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewService builds a Service over the given controllers.
func NewService(controllers []*Controller, logger *zap.Logger) (*Service, error) {
	if len(controllers) == 0 {
		return nil, errors.New("at least one controller is required")
	}
	return &Service{
		logger:      logger.Named("mining"),
		controllers: controllers,
	}, nil
}

// Start launches every controller. Calling Start on a running service is a no-op.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.logger.Info("starting miners", zap.Int("instances", len(s.controllers)))
	go func() {
		defer close(done)
		err := workerpool.Run(ctx, len(s.controllers), func(ctx context.Context, worker int) error {
			return s.controllers[worker].Run(ctx)
		}, func() {
			s.logger.Info("stopping remaining miners")
		})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}()
}

// Done is closed once every controller has exited.
func (s *Service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Stop cancels all controllers and waits for them to exit.
func (s *Service) Stop() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}

	cancel()
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("miners stopped")
	return s.err
}

// Status returns the status of every controller.
func (s *Service) Status() []Status {
	out := make([]Status, 0, len(s.controllers))
	for _, c := range s.controllers {
		out = append(out, c.Status())
	}
	return out
}
