// Package unique tracks identity tokens handed out during a single seeding
// run so that no token is ever issued twice.
package unique

import (
	"errors"
	"fmt"
)

// ErrUniquenessExhausted is returned when a domain cannot produce a value that
// has not been issued yet.
var ErrUniquenessExhausted = errors.New("uniqueness domain exhausted")

// ErrDuplicate is returned by Claim for a value that is already taken.
var ErrDuplicate = errors.New("value already issued")

// Domains used by the seeder.
const (
	WalletID        = "wallet_id"
	TelegramID      = "telegram_id"
	TransactionHash = "transaction_hash"
)

const DefaultMaxAttempts = 1000

// Source produces candidate values for a domain.
type Source func() (string, error)

// Registry is the run-wide used-set for every uniqueness domain. It is not
// safe for concurrent use.
type Registry struct {
	used        map[string]map[string]struct{}
	capacity    map[string]int
	maxAttempts int
}

type Option func(*Registry)

// WithMaxAttempts bounds how many consecutive collisions Next tolerates.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithCapacity declares the size of a domain. Once that many values have
// been issued, Next fails without consulting the source.
func WithCapacity(domain string, n int) Option {
	return func(r *Registry) {
		r.capacity[domain] = n
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		used:        make(map[string]map[string]struct{}),
		capacity:    make(map[string]int),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next draws from src until it yields a value not yet issued in domain.
func (r *Registry) Next(domain string, src Source) (string, error) {
	if limit, ok := r.capacity[domain]; ok && r.Len(domain) >= limit {
		return "", fmt.Errorf("%w: %s reached capacity %d", ErrUniquenessExhausted, domain, limit)
	}

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		value, err := src()
		if err != nil {
			return "", fmt.Errorf("failed to generate %s: %w", domain, err)
		}
		if err := r.Claim(domain, value); err == nil {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s after %d attempts", ErrUniquenessExhausted, domain, r.maxAttempts)
}

// Claim records value as issued in domain.
func (r *Registry) Claim(domain, value string) error {
	set, ok := r.used[domain]
	if !ok {
		set = make(map[string]struct{})
		r.used[domain] = set
	}
	if _, taken := set[value]; taken {
		return fmt.Errorf("%w: %s %q", ErrDuplicate, domain, value)
	}
	set[value] = struct{}{}
	return nil
}

func (r *Registry) Contains(domain, value string) bool {
	_, ok := r.used[domain][value]
	return ok
}

// Len returns how many values have been issued in domain.
func (r *Registry) Len(domain string) int {
	return len(r.used[domain])
}
