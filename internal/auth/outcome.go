package auth

// Status is the observable result of a verification attempt. Wrong
// credentials are statuses, not errors; only infrastructure faults
// travel the error channel.
type Status int

const (
	// StatusSuccess carries a Principal and grants a session.
	StatusSuccess Status = iota
	// StatusBadPassword: the identity exists but the password does not
	// match. The UI offers an alternate login method on this status.
	StatusBadPassword
	// StatusNoSuchUser: no identity for the email. No retry hint is
	// offered (intentional asymmetry with StatusBadPassword).
	StatusNoSuchUser
	// StatusInvalidCode: an OTP exists for the email but the submitted
	// code does not match. The code stays usable.
	StatusInvalidCode
	// StatusExpiredCode: no OTP for the email. Absence and expiry are
	// the same observable state.
	StatusExpiredCode
	// StatusAlreadyExists: registration hit an existing email.
	StatusAlreadyExists
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusBadPassword:
		return "bad_password"
	case StatusNoSuchUser:
		return "no_such_user"
	case StatusInvalidCode:
		return "invalid_code"
	case StatusExpiredCode:
		return "expired_code"
	case StatusAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// Outcome is what every verifier returns. Principal is set only on
// StatusSuccess.
type Outcome struct {
	Status    Status
	Principal *Principal
}
