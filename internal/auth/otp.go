package auth

import (
	"context"
	"errors"
	"fmt"
)

// OTPVerifier checks a single-use code issued out-of-band for an email.
type OTPVerifier struct {
	otps OTPStore
}

func NewOTPVerifier(otps OTPStore) *OTPVerifier {
	return &OTPVerifier{otps: otps}
}

func (v *OTPVerifier) Verify(ctx context.Context, email, code string) (Outcome, error) {
	rec, err := v.otps.Get(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Outcome{Status: StatusExpiredCode}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("otp verify: lookup: %w", err)
	}

	// A mismatch leaves the record in place; the code stays usable
	// until it is matched or the store expires it.
	if rec.Code != code {
		return Outcome{Status: StatusInvalidCode}, nil
	}

	consumed, err := v.otps.ConsumeIfMatch(ctx, email, code)
	if err != nil {
		return Outcome{}, fmt.Errorf("otp verify: consume: %w", err)
	}
	if !consumed {
		// Another request consumed it between Get and here.
		return Outcome{Status: StatusExpiredCode}, nil
	}

	return Outcome{
		Status:    StatusSuccess,
		Principal: &Principal{ID: rec.IdentityID, Email: email},
	}, nil
}
