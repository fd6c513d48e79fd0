package fixit

import (
	"context"
	"fmt"
	"time"

	"github.com/Fix-It-project/fixit-go/internal/flows"
	"github.com/Fix-It-project/fixit-go/token"
)

const renewKey = "renew"

// ValidAccessToken returns an access token that is outside the renewal
// window, renewing first when the cached token is stale or undecodable.
// Concurrent callers that need a renewal share one provider round-trip.
//
//	Docs: docs/renewal.md
func (c *Client) ValidAccessToken(ctx context.Context) (string, error) {
	if !c.ready() {
		return "", ErrClientNotReady
	}

	access := c.lifecycle.AccessToken()
	if access == "" {
		return "", ErrNoSession
	}

	if !token.NearExpiry(access, c.config.Token.RenewAhead) {
		return access, nil
	}

	c.metricInc(MetricProactiveRenew)
	return c.Renew(ctx)
}

// Renew exchanges the refresh token for a fresh pair. All concurrent callers
// collapse onto a single in-flight exchange and observe its outcome. The
// exchange itself is detached from the caller's cancellation: once started
// it runs to completion so joiners are never failed by the first caller
// giving up.
//
//	Docs: docs/renewal.md
func (c *Client) Renew(ctx context.Context) (string, error) {
	if !c.ready() {
		return "", ErrClientNotReady
	}

	v, err, shared := c.renewals.Do(renewKey, func() (any, error) {
		start := time.Now()
		res := c.flows.Renew(context.WithoutCancel(ctx))
		if res.Failure != flows.RenewFailureNone {
			renewErr := c.renewError(res)
			c.metricInc(MetricRenewFailure)
			c.metricInc(MetricSessionCleared)
			if res.Failure == flows.RenewFailurePersist {
				c.metricInc(MetricStoreWriteFailure)
			}
			c.emitAudit(ctx, auditEventRenewFailure, "", false, renewErr.Error())
			return nil, renewErr
		}

		c.metricInc(MetricRenewSuccess)
		if c.metrics != nil {
			c.metrics.Observe(MetricRenewLatency, time.Since(start))
		}
		c.emitAudit(ctx, auditEventRenewSuccess, res.Session.User.ID, true, "")
		return res.AccessToken, nil
	})

	if shared {
		c.metricInc(MetricRenewJoined)
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) renewError(res flows.RenewResult) error {
	switch res.Failure {
	case flows.RenewFailureNoRefreshToken:
		return ErrNoRefreshToken
	case flows.RenewFailureRejected:
		return fmt.Errorf("%w: %v", ErrRenewalRejected, res.Err)
	case flows.RenewFailurePersist:
		return fmt.Errorf("%w: %v", ErrSessionPersist, res.Err)
	default:
		return fmt.Errorf("%w: %v", ErrRenewalFailed, res.Err)
	}
}
