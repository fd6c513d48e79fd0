package fixit

import (
	"context"
	"time"
)

const (
	auditEventSignInSuccess   = "signin_success"
	auditEventSignInFailure   = "signin_failure"
	auditEventSignUpSuccess   = "signup_success"
	auditEventSignUpFailure   = "signup_failure"
	auditEventSignOut         = "signout"
	auditEventRenewSuccess    = "renew_success"
	auditEventRenewFailure    = "renew_failure"
	auditEventSessionRestored = "session_restored"
	auditEventSessionHealed   = "session_healed"
	auditEventSessionCleared  = "session_cleared"
)

func (c *Client) emitAudit(ctx context.Context, eventType, userID string, success bool, errMsg string) {
	if c == nil || c.audit == nil {
		return
	}
	c.audit.Emit(ctx, AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		Success:   success,
		Error:     errMsg,
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
