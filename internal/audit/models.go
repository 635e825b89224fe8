package audit

import "time"

// Event records an account action. It is transport-agnostic so stores and
// sinks can fan out.
type Event struct {
	Timestamp        time.Time
	Action           Action
	UserID           string
	CompanyShortName string
	Outcome          string
	Reason           string
	RequestID        string
}

type Action string

const (
	ActionAdminRegistered        Action = "admin_registered"
	ActionAdminActivated         Action = "admin_activated"
	ActionLoginSucceeded         Action = "login_succeeded"
	ActionLoginFailed            Action = "login_failed"
	ActionPasswordChanged        Action = "password_changed"
	ActionPasswordResetRequested Action = "password_reset_requested"
	ActionPasswordResetCompleted Action = "password_reset_completed"
	ActionFIDOUnregistered       Action = "fido_unregistered"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
