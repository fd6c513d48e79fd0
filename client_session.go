package fixit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fix-It-project/fixit-go/internal/flows"
)

// LoadStoredSession restores the session persisted by a previous run. The
// client passes through StateLoading while the store is read. A store whose
// entries are incomplete or undecodable is wiped and reported as healed; the
// client ends up unauthenticated, never half-restored.
//
//	Docs: docs/flows.md
func (c *Client) LoadStoredSession(ctx context.Context) (LoadOutcome, Snapshot) {
	if !c.ready() {
		return LoadEmpty, Snapshot{}
	}

	outcome, sess := c.flows.LoadStored(ctx)

	switch outcome {
	case flows.LoadRestored:
		c.metricInc(MetricSessionRestored)
		c.emitAudit(ctx, auditEventSessionRestored, sess.User.ID, true, "")
	case flows.LoadHealedPartial, flows.LoadHealedCorrupt:
		c.metricInc(MetricSessionHealed)
		c.emitAudit(ctx, auditEventSessionHealed, "", false, outcome.String())
	default:
		c.metricInc(MetricSessionLoadEmpty)
	}

	return outcome, c.lifecycle.Snapshot()
}

// SetSession installs an externally obtained session (for example from a
// deep-link token exchange). The store write happens before the in-memory
// install; on write failure nothing is installed.
//
//	Docs: docs/flows.md
func (c *Client) SetSession(ctx context.Context, sess Session) error {
	if !c.ready() {
		return ErrClientNotReady
	}

	if err := c.flows.SetSession(ctx, sess); err != nil {
		if errors.Is(err, ErrIncompleteSession) {
			return err
		}
		c.metricInc(MetricStoreWriteFailure)
		return fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}
	return nil
}

// ClearSession removes the session from memory and store. Store deletion
// failures are logged and swallowed; the in-memory state always ends up
// unauthenticated.
//
//	Docs: docs/flows.md
func (c *Client) ClearSession(ctx context.Context) {
	if !c.ready() {
		return
	}

	snap := c.lifecycle.Snapshot()
	c.flows.ClearSession(ctx)
	c.metricInc(MetricSessionCleared)
	c.emitAudit(ctx, auditEventSessionCleared, snap.Session.User.ID, true, "")
}
