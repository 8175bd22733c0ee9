package jwt

import (
	"errors"
	"time"

	"adslot-ledger/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims identify the ledger account a request acts as. The account id is
// carried both as account_id and as the registered subject.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) GenerateToken(acc account.ID) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: acc.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.AccountID == "" {
		claims.AccountID = claims.Subject
	}

	return claims, nil
}

// Account returns the validated account the token was issued for.
func (c *Claims) Account() (account.ID, error) {
	acc, err := account.NewID(c.AccountID)
	if err != nil {
		return "", ErrInvalidToken
	}
	return acc, nil
}
