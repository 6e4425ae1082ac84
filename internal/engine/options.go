package engine

import "go.uber.org/zap"

type settings struct {
	clock Clock
	log   *zap.Logger
	ids   SessionIDGenerator
}

func newSettings(opts []Option) settings {
	s := settings{
		clock: SystemClock{},
		log:   zap.NewNop(),
		ids:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a Manager or a Factory.
type Option func(*settings)

// WithClock sets the clock that defines "today". Default: SystemClock.
func WithClock(c Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log == nil {
			log = zap.NewNop()
		}
		s.log = log
	}
}

// WithSessionIDs sets the generator of Manager session ids.
// Default: UUIDv7Generator.
func WithSessionIDs(g SessionIDGenerator) Option {
	return func(s *settings) {
		s.ids = g
	}
}
