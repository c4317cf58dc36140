package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/users"
)

// Codec encodes identities into bearer tokens and parses them back. Two wire
// formats are understood:
//
//   - signed format: a standard three-segment JWT, HMAC-SHA256 signed. All
//     newly issued tokens use this format.
//   - legacy format: a single base64 JSON blob carrying an epoch-millis "exp"
//     field. Unsigned; accepted for reads during the migration window only
//     and trusted on structural decode alone.
//
// Dispatch is structural: a "." separator means signed format.
type Codec struct {
	signer       Signer
	acceptLegacy bool
	nowFunc      func() time.Time
}

type CodecOption func(*Codec)

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowFunc = now
	}
}

// WithLegacyTokens toggles acceptance of the unsigned legacy format
func WithLegacyTokens(accept bool) CodecOption {
	return func(c *Codec) {
		c.acceptLegacy = accept
	}
}

func NewCodec(signer Signer, options ...CodecOption) *Codec {
	c := &Codec{
		signer:       signer,
		acceptLegacy: true,
		nowFunc:      time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Encode produces a signed token embedding the identity and expiry
func (c *Codec) Encode(user *users.User, ttl time.Duration) (string, error) {
	if user == nil {
		return "", errors.New("Codec.Encode nil user")
	}
	now := c.nowFunc()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
		"jti":   uuid.New().String(),
	}
	signed, err := c.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "Codec.Encode")
	}
	return signed, nil
}

// Decode parses a token in either wire format and returns the embedded
// identity. Every failure path returns a tagged reason: ErrTokenExpired,
// ErrTokenMalformed or ErrSignatureInvalid.
func (c *Codec) Decode(raw string) (*users.User, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperrors.ErrTokenMalformed
	}
	if strings.Contains(raw, ".") {
		return c.decodeSigned(raw)
	}
	if !c.acceptLegacy {
		return nil, apperrors.ErrTokenMalformed
	}
	return c.decodeLegacy(raw)
}

func (c *Codec) decodeSigned(raw string) (*users.User, error) {
	parsed, err := jwt.Parse(raw, c.signer.GetVerificationKey,
		jwt.WithTimeFunc(c.nowFunc),
		jwt.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, apperrors.ErrSignatureInvalid
		default:
			return nil, apperrors.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, apperrors.ErrSignatureInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrTokenMalformed
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return nil, apperrors.ErrTokenMalformed
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &users.User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  users.Role(role),
	}, nil
}

// legacyClaims is the shape of the old unsigned cookie payload. Exp is epoch
// milliseconds, not seconds.
type legacyClaims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Exp   int64  `json:"exp"`
}

func (c *Codec) decodeLegacy(raw string) (*users.User, error) {
	blob, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// Tolerate unpadded output from older cookie writers
		blob, err = base64.RawStdEncoding.DecodeString(raw)
		if err != nil {
			return nil, apperrors.ErrTokenMalformed
		}
	}

	var claims legacyClaims
	if err := json.Unmarshal(blob, &claims); err != nil {
		return nil, apperrors.ErrTokenMalformed
	}
	if claims.ID == "" {
		return nil, apperrors.ErrTokenMalformed
	}
	// No signature to verify; expiry is the only check available
	if claims.Exp <= c.nowFunc().UnixMilli() {
		return nil, apperrors.ErrTokenExpired
	}

	return &users.User{
		ID:    claims.ID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  users.Role(claims.Role),
	}, nil
}
