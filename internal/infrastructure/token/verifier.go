package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSubject = errors.New("token carries no user id")

// Claims accepts both the registered subject and the auth service's
// {"user": {"id": ...}} payload.
type Claims struct {
	jwt.RegisteredClaims
	User *UserClaim `json:"user,omitempty"`
}

type UserClaim struct {
	ID string `json:"id"`
}

type Verifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

func NewVerifier(cfg Config) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg()}),
		jwt.WithLeeway(time.Duration(cfg.Leeway) * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &Verifier{
		secret: []byte(cfg.Secret),
		opts:   opts,
	}
}

func (v *Verifier) Verify(raw string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}

	if claims.Subject != "" {
		return claims.Subject, nil
	}

	if claims.User != nil && claims.User.ID != "" {
		return claims.User.ID, nil
	}

	return "", ErrMissingSubject
}
