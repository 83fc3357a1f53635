package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fundcore/internal/compliance/models"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
)

// ProofVerifier checks an attestation produced by an external KYC provider.
// The proof format is opaque to the rest of the gate.
type ProofVerifier interface {
	Verify(ctx context.Context, investor id.InvestorID, proof []byte) (models.Classification, error)
}

// ProofClaims is the claim set carried by a JWT compliance attestation.
type ProofClaims struct {
	Classification string `json:"classification"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HMAC-signed attestations from a shared-key provider.
type JWTVerifier struct {
	signingKey []byte
}

func NewJWTVerifier(signingKey string) *JWTVerifier {
	return &JWTVerifier{signingKey: []byte(signingKey)}
}

func (v *JWTVerifier) Verify(ctx context.Context, investor id.InvestorID, proof []byte) (models.Classification, error) {
	parsed, err := jwt.ParseWithClaims(string(proof), &ProofClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return v.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "compliance proof has expired")
		}
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid compliance proof")
	}

	claims, ok := parsed.Claims.(*ProofClaims)
	if !ok || !parsed.Valid {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid compliance proof")
	}
	if claims.Subject != string(investor) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "compliance proof subject mismatch")
	}

	classification, err := models.ParseClassification(claims.Classification)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInvalidInput, "compliance proof classification rejected")
	}
	return classification, nil
}

// SignProof issues an attestation with this verifier's key. Used by tests and
// the local development provider mock.
func (v *JWTVerifier) SignProof(investor id.InvestorID, classification models.Classification, ttl time.Duration) ([]byte, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ProofClaims{
		Classification: string(classification),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(investor),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(v.signingKey)
	if err != nil {
		return nil, err
	}
	return []byte(signed), nil
}
