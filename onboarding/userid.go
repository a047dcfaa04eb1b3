package onboarding

import (
	"context"
	"fmt"
	"sync"

	"schoolapp-backend/errs"
)

var typePrefixes = map[string]string{
	"student": "st",
	"teacher": "te",
	"admin":   "ad",
	"parent":  "pr",
}

// Counter exposes the per-type user count the sequence number is derived
// from. The user store satisfies it.
type Counter interface {
	CountByType(ctx context.Context, usertype string) (int64, error)
}

// Sequencer issues the human-readable userid: a two-letter type prefix and a
// zero-padded sequence number, count+1 at the moment of issuance.
//
// The mutex serializes issuance within this process. Across processes the
// count-then-insert window remains: two instances onboarding the same user
// type at once can compute the same number, exactly as the system this was
// ported from did. The unique index on userid turns such a collision into a
// failed first write instead of a silent duplicate.
type Sequencer struct {
	mu      sync.Mutex
	counter Counter
}

func NewSequencer(c Counter) *Sequencer {
	return &Sequencer{counter: c}
}

func (s *Sequencer) Next(ctx context.Context, usertype string) (string, error) {
	prefix, ok := typePrefixes[usertype]
	if !ok {
		return "", errs.ErrInvalidUserType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.counter.CountByType(ctx, usertype)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%09d", prefix, n+1), nil
}
