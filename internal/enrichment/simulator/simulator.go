// Package simulator provides a deterministic stand-in for the enrichment
// provider, used when no provider API key is configured.
package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"lead_scoring_backend/internal/enrichment/domain"
	"lead_scoring_backend/platform/logger"
)

const (
	// Name identifies the simulator in logs.
	Name = "simulator"

	defaultMinDelay = 400 * time.Millisecond
	defaultMaxDelay = 800 * time.Millisecond

	// outageModulus makes one seed in five a simulated outage.
	outageModulus = 5
)

// Field offsets decorrelate the four picks made from one seed.
const (
	companyOffset uint64 = iota
	sizeOffset
	industryOffset
	countryOffset
)

// ErrSimulatedOutage is returned for emails whose seed is divisible by five.
var ErrSimulatedOutage = errors.New("simulated enrichment outage")

// Simulator produces synthetic enrichment records seeded from the email.
// It holds no mutable state and is safe for concurrent use.
type Simulator struct {
	catalog  Catalog
	minDelay time.Duration
	maxDelay time.Duration
	log      *logger.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLatency sets the bounds of the artificial response delay.
func WithLatency(minDelay, maxDelay time.Duration) Option {
	return func(s *Simulator) {
		s.minDelay = minDelay
		s.maxDelay = maxDelay
	}
}

// WithoutLatency disables the artificial response delay.
func WithoutLatency() Option {
	return WithLatency(0, 0)
}

// WithCatalog replaces the embedded candidate lists.
func WithCatalog(c Catalog) Option {
	return func(s *Simulator) {
		s.catalog = c
	}
}

// New creates a simulator with a 400-800ms delay and the embedded catalog.
func New(log *logger.Logger, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		catalog:  DefaultCatalog(),
		minDelay: defaultMinDelay,
		maxDelay: defaultMaxDelay,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, err
	}
	if s.minDelay < 0 || s.maxDelay < s.minDelay {
		return nil, errors.New("simulator latency bounds are invalid")
	}
	return s, nil
}

// Lookup waits for the artificial delay and returns the simulated record
// for email, or ErrSimulatedOutage. Cancelling ctx during the delay
// returns ctx.Err().
func (s *Simulator) Lookup(ctx context.Context, email string) (*domain.Record, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	record, err := s.Resolve(email)
	if err != nil && s.log != nil {
		s.log.Warn("simulated enrichment failure", "email", email)
	}
	return record, err
}

// Resolve computes the simulated outcome for email without any delay.
func (s *Simulator) Resolve(email string) (*domain.Record, error) {
	seed := uint64(Hash(email))
	if seed%outageModulus == 0 {
		return nil, ErrSimulatedOutage
	}

	return &domain.Record{
		CompanyName: pick(s.catalog.Companies, seed+companyOffset),
		CompanySize: pick(s.catalog.Sizes, seed+sizeOffset),
		Industry:    pick(s.catalog.Industries, seed+industryOffset),
		Country:     pick(s.catalog.Countries, seed+countryOffset),
	}, nil
}

func (s *Simulator) wait(ctx context.Context) error {
	delay := s.delay()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) delay() time.Duration {
	spread := s.maxDelay - s.minDelay
	if spread <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(rand.Int64N(int64(spread)))
}

func pick(values []string, index uint64) *string {
	v := values[index%uint64(len(values))]
	return &v
}
