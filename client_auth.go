package fixit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fix-It-project/fixit-go/provider"
)

// SignIn authenticates against the provider and installs the returned
// session. The session is persisted to the store before it becomes visible
// in memory; a persistence failure leaves the client unauthenticated.
//
//	Docs: docs/flows.md
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	if !c.ready() {
		return Session{}, ErrClientNotReady
	}

	resp, err := c.backend.SignIn(ctx, email, password)
	if err != nil {
		c.metricInc(MetricSignInFailure)
		c.emitAudit(ctx, auditEventSignInFailure, "", false, err.Error())
		return Session{}, err
	}

	sess := sessionFromAuth(resp)
	if err := c.flows.SetSession(ctx, sess); err != nil {
		c.metricInc(MetricSignInFailure)
		c.emitAudit(ctx, auditEventSignInFailure, sess.User.ID, false, err.Error())
		if errors.Is(err, ErrIncompleteSession) {
			return Session{}, err
		}
		c.metricInc(MetricStoreWriteFailure)
		return Session{}, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	c.metricInc(MetricSignInSuccess)
	c.emitAudit(ctx, auditEventSignInSuccess, sess.User.ID, true, "")
	return sess, nil
}

// SignUp registers a new account. The provider confirms accounts out of band
// (email verification), so no session is installed here; callers sign in once
// the account is confirmed.
//
//	Docs: docs/flows.md
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (SignUpOutcome, error) {
	if !c.ready() {
		return SignUpOutcome{}, ErrClientNotReady
	}

	resp, err := c.backend.SignUp(ctx, req)
	if err != nil {
		c.metricInc(MetricSignUpFailure)
		c.emitAudit(ctx, auditEventSignUpFailure, "", false, err.Error())
		return SignUpOutcome{}, err
	}

	c.metricInc(MetricSignUpSuccess)
	c.emitAudit(ctx, auditEventSignUpSuccess, resp.User.ID, true, "")
	return *resp, nil
}

// SignOut revokes the session server-side on a best-effort basis and always
// clears the local session. The returned error reports the provider call
// only; locally the client is unauthenticated regardless.
//
//	Docs: docs/flows.md
func (c *Client) SignOut(ctx context.Context) error {
	if !c.ready() {
		return ErrClientNotReady
	}

	snap := c.lifecycle.Snapshot()

	var err error
	if access := snap.Session.AccessToken; access != "" {
		if err = c.backend.SignOut(ctx, access); err != nil {
			c.logger.Warn("fixit: provider signout failed", "error", err)
		}
	}

	c.flows.ClearSession(ctx)
	c.metricInc(MetricSignOut)
	c.metricInc(MetricSessionCleared)
	c.emitAudit(ctx, auditEventSignOut, snap.Session.User.ID, err == nil, errString(err))
	return err
}

// ForgotPassword describes the forgotpassword operation and its observable behavior.
//
// ForgotPassword may return an error when input validation, dependency calls, or security checks fail.
// ForgotPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if !c.ready() {
		return ErrClientNotReady
	}
	return c.backend.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password for the signed-in user. The provider
// requires a valid access token (reset deep links sign the user in first),
// so a renewal may run before the call.
//
//	Docs: docs/flows.md
func (c *Client) ResetPassword(ctx context.Context, newPassword string) error {
	if !c.ready() {
		return ErrClientNotReady
	}

	access, err := c.ValidAccessToken(ctx)
	if err != nil {
		return err
	}
	return c.backend.ResetPassword(ctx, access, newPassword)
}

// CurrentUser fetches the extended profile for the signed-in user.
//
//	Docs: docs/flows.md
func (c *Client) CurrentUser(ctx context.Context) (Profile, error) {
	if !c.ready() {
		return Profile{}, ErrClientNotReady
	}

	access, err := c.ValidAccessToken(ctx)
	if err != nil {
		return Profile{}, err
	}

	profile, err := c.backend.CurrentUser(ctx, access)
	if err != nil {
		return Profile{}, err
	}
	return *profile, nil
}

var _ Provider = (*provider.Client)(nil)
