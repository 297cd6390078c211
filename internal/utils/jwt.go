package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are self-contained: the subject,
// username and role travel inside the token, so protected endpoints never
// need a database lookup to authenticate a request.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the issuer and audience to stamp into the token, the
// user's UUID, username and role, and a TTL in minutes.  The JWT carries
// the registered claims iss, aud, sub, exp and iat plus the custom
// username and role claims.  Verification on the receiving side checks
// issuer, audience and expiry with no clock-skew tolerance, so the expiry
// here is the hard cutoff.
func NewAccessToken(secret, issuer, audience, userID, username, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"iss":      issuer,
		"aud":      audience,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
