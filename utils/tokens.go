package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenSubject struct {
	UserID uint
	Email  string
	Role   string
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func signToken(subject TokenSubject, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    subject.UserID,
		"email":      subject.Email,
		"role":       subject.Role,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func GenerateTokenPair(subject TokenSubject, secret string, accessTTL, refreshTTL time.Duration) (TokenPair, error) {
	access, err := signToken(subject, AccessToken, secret, accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := signToken(subject, RefreshToken, secret, refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func GenerateAccessToken(subject TokenSubject, secret string, ttl time.Duration) (string, error) {
	return signToken(subject, AccessToken, secret, ttl)
}

// ParseToken validates signature, expiry and token type, and returns the claims.
func ParseToken(tokenString, secret, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, wantType)
	}
	return claims, nil
}

// SubjectFromClaims reads back what signToken wrote.
func SubjectFromClaims(claims jwt.MapClaims) (TokenSubject, error) {
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return TokenSubject{}, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return TokenSubject{UserID: uint(id), Email: email, Role: role}, nil
}
