package cards

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/cardforge/cardforge/pkg/logger"
	"github.com/cardforge/cardforge/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Tier is one named backend in the storage order.
type Tier struct {
	Name string
	Repo Repository
}

// Tiered tries its tiers in order. The first successful Put wins; earlier
// failures are logged and absorbed. Get returns the first hit, ErrNotFound when
// at least one tier answered with a miss, and a *StorageError only when every
// tier failed.
type Tiered struct {
	tiers []Tier
}

func NewTiered(tiers ...Tier) *Tiered {
	return &Tiered{tiers: tiers}
}

// Names lists the active tiers in the order they are tried.
func (t *Tiered) Names() []string {
	out := make([]string, 0, len(t.tiers))
	for _, tier := range t.tiers {
		out = append(out, tier.Name)
	}
	return out
}

func (t *Tiered) Put(ctx context.Context, id string, card *sheet.SharedCard) error {
	var errs []error
	for _, tier := range t.tiers {
		if err := tier.Repo.Put(ctx, id, card); err != nil {
			metrics.StorageOperations.WithLabelValues(tier.Name, "put", "error").Inc()
			logger.Warnf("cards: %s put %s failed, trying next tier: %v", tier.Name, id, err)
			errs = append(errs, fmt.Errorf("%s: %w", tier.Name, err))
			continue
		}
		metrics.StorageOperations.WithLabelValues(tier.Name, "put", "ok").Inc()
		return nil
	}
	return &StorageError{Op: "put", ID: id, Err: errors.Join(errs...)}
}

func (t *Tiered) Get(ctx context.Context, id string) (*sheet.SharedCard, error) {
	var errs []error
	missed := false
	for _, tier := range t.tiers {
		c, err := tier.Repo.Get(ctx, id)
		switch {
		case err == nil:
			metrics.StorageOperations.WithLabelValues(tier.Name, "get", "hit").Inc()
			return c, nil
		case errors.Is(err, ErrNotFound):
			metrics.StorageOperations.WithLabelValues(tier.Name, "get", "miss").Inc()
			missed = true
		default:
			metrics.StorageOperations.WithLabelValues(tier.Name, "get", "error").Inc()
			logger.Warnf("cards: %s get %s failed, trying next tier: %v", tier.Name, id, err)
			errs = append(errs, fmt.Errorf("%s: %w", tier.Name, err))
		}
	}
	if missed || len(errs) == 0 {
		return nil, ErrNotFound
	}
	return nil, &StorageError{Op: "get", ID: id, Err: errors.Join(errs...)}
}

// Candidate is a configured backend that joins the tier order only if its probe
// succeeds. A nil Ping means the backend is always available.
type Candidate struct {
	Tier
	Ping func(ctx context.Context) error
}

// Probe pings every candidate concurrently, once, and returns the reachable ones
// in their original order. The result is meant to be fixed for the process
// lifetime.
func Probe(ctx context.Context, candidates ...Candidate) []Tier {
	ok := make([]bool, len(candidates))
	var g errgroup.Group
	for i, c := range candidates {
		if c.Ping == nil {
			ok[i] = true
			continue
		}
		i, c := i, c
		g.Go(func() error {
			if err := c.Ping(ctx); err != nil {
				logger.Warnf("cards: %s tier unavailable, skipping: %v", c.Name, err)
				return nil
			}
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	tiers := make([]Tier, 0, len(candidates))
	for i, c := range candidates {
		if ok[i] {
			tiers = append(tiers, c.Tier)
		}
	}
	return tiers
}
