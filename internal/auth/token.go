package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoToken reports that no token is stored.
	ErrNoToken = errors.New("auth: no token")
	// ErrMalformedToken is returned when the token cannot be decoded or
	// carries no expiry.
	ErrMalformedToken = errors.New("auth: malformed token")
)

// Expiry decodes the exp claim from the middle segment of token. Only that
// segment is read: the header and signature are ignored, so the result is
// only as trustworthy as whoever handed us the token and the backend remains
// responsible for rejecting forged credentials.
func Expiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("%w: want dot-separated segments", ErrMalformedToken)
	}
	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}
	return exp.Time, nil
}
