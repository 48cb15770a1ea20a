// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Signer defaults.
const (
	MinSigningKeyLength   = 32
	DefaultAccessTokenTTL = 15 * time.Minute
	DefaultIssuer         = "identity-service"
	DefaultAudience       = "identity-clients"
)

// Access token verification sentinels.
var (
	// ErrAccessTokenExpired is returned when the token's exp is not after the
	// verification time.
	ErrAccessTokenExpired = errors.New("access token expired")

	// ErrAccessTokenInvalid is returned for any other verification failure.
	ErrAccessTokenInvalid = errors.New("access token invalid")
)

// TokenSubject is the identity an access token is issued for.
type TokenSubject struct {
	AccountID ulid.ULID
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

// AccessClaims is the claim set carried by an access token.
type AccessClaims struct {
	Email      string   `json:"email"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Roles      []string `json:"roles"`
	jwt.RegisteredClaims
}

// SignedToken is a freshly signed access token.
type SignedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenSigner issues and verifies access tokens. Implementations are
// stateless and safe for concurrent use.
type TokenSigner interface {
	Sign(subject TokenSubject, issuedAt time.Time) (SignedToken, error)
	Verify(token string, at time.Time) (*AccessClaims, error)
}

// SignerConfig configures a JWTSigner.
type SignerConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// JWTSigner signs HS256 JWTs with a symmetric secret.
type JWTSigner struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// Compile-time interface check.
var _ TokenSigner = (*JWTSigner)(nil)

// NewJWTSigner creates a JWTSigner. A missing or short secret and a
// non-positive lifetime are configuration errors.
func NewJWTSigner(cfg SignerConfig) (*JWTSigner, error) {
	if len(cfg.Secret) == 0 {
		return nil, configError("signing secret is not configured")
	}
	if len(cfg.Secret) < MinSigningKeyLength {
		return nil, configError("signing secret must be at least %d bytes, got %d", MinSigningKeyLength, len(cfg.Secret))
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultAccessTokenTTL
	}
	if cfg.TTL < 0 {
		return nil, configError("access token lifetime must be positive, got %s", cfg.TTL)
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Audience == "" {
		cfg.Audience = DefaultAudience
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	return &JWTSigner{
		secret:   secret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
	}, nil
}

// TTL returns the access token lifetime.
func (s *JWTSigner) TTL() time.Duration {
	return s.ttl
}

// Sign issues an access token for subject. The expiry is truncated to whole
// seconds, matching the JWT NumericDate encoding.
func (s *JWTSigner) Sign(subject TokenSubject, issuedAt time.Time) (SignedToken, error) {
	iat := issuedAt.UTC().Truncate(time.Second)
	exp := iat.Add(s.ttl)

	roles := subject.Roles
	if roles == nil {
		roles = []string{}
	}

	claims := AccessClaims{
		Email:      subject.Email,
		GivenName:  subject.FirstName,
		FamilyName: subject.LastName,
		Roles:      roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.AccountID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        NewID().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return SignedToken{}, oops.Code(CodeTokenFailed).
			With("operation", "sign access token").
			With("account_id", subject.AccountID.String()).
			Wrap(err)
	}
	return SignedToken{Token: signed, ExpiresAt: exp}, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry with zero
// leeway: a token is valid strictly before its exp.
func (s *JWTSigner) Verify(token string, at time.Time) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(func() time.Time { return at }),
	)
	if err != nil {
		sentinel := ErrAccessTokenInvalid
		code := "TOKEN_INVALID"
		if errors.Is(err, jwt.ErrTokenExpired) {
			sentinel = ErrAccessTokenExpired
			code = "TOKEN_EXPIRED"
		}
		return nil, oops.Code(code).Wrap(errors.Join(sentinel, err))
	}
	return claims, nil
}

// AccountID parses the subject claim.
func (c *AccessClaims) AccountID() (ulid.ULID, error) {
	return ParseID(c.Subject)
}
