package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrOrphanNotFound = errs.New("orphan log entry not found")

const retrySweepConcurrency = 4

type RetryReport struct {
	Attempted int
	Resolved  int
	Failed    int
}

type OrphanCommands interface {
	MarkResolved(ctx context.Context, id uuid.UUID) error
	RetrySweep(ctx context.Context) (*RetryReport, error)
}

type orphanCommandsImpl struct {
	orphans OrphanLogRepository
	gateway CommerceGateway
	clock   clock.Clock
}

func NewOrphanCommands(orphans OrphanLogRepository, gateway CommerceGateway, clk clock.Clock) OrphanCommands {
	return &orphanCommandsImpl{
		orphans: orphans,
		gateway: gateway,
		clock:   clk,
	}
}

func (o *orphanCommandsImpl) MarkResolved(ctx context.Context, id uuid.UUID) error {
	if err := o.orphans.MarkResolved(ctx, id, o.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrphanNotFound
		}
		return err
	}
	return nil
}

// RetrySweep re-attempts code creation for every unresolved orphaned rule.
// Entries are processed concurrently; one stubborn entry never blocks the
// rest of the sweep.
func (o *orphanCommandsImpl) RetrySweep(ctx context.Context) (*RetryReport, error) {
	entries, err := o.orphans.FindUnresolved(ctx)
	if err != nil {
		return nil, err
	}

	var resolved, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(retrySweepConcurrency)

	for _, entry := range entries {
		g.Go(func() error {
			if err := o.retryEntry(gctx, entry); err != nil {
				failed.Add(1)
				slog.Warn("orphan retry failed",
					"orphan_id", entry.ID, "rule_id", entry.ExternalRuleID,
					"code", entry.Code, "error", err.Error())
				return nil
			}
			resolved.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &RetryReport{
		Attempted: len(entries),
		Resolved:  int(resolved.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

func (o *orphanCommandsImpl) retryEntry(ctx context.Context, entry OrphanLogSnapshot) error {
	_, err := o.gateway.CreateCode(ctx, entry.ExternalRuleID, entry.Code)
	if err != nil && !commerce.IsConflict(err) {
		return err
	}

	// Creation reported success or the code already exists; trust only a
	// lookup that binds the code to this rule.
	lookup, err := o.gateway.LookupCode(ctx, entry.Code)
	if err != nil {
		return err
	}
	if lookup.RuleID != entry.ExternalRuleID {
		return errs.Errorf("code %s attached to rule %d, expected %d",
			entry.Code, lookup.RuleID, entry.ExternalRuleID)
	}

	return o.orphans.MarkResolved(ctx, entry.ID, o.clock.Now())
}
