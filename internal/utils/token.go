package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shiftcrew/shift-management-api/internal/constants"
)

// Claims is the payload embedded in issued bearer tokens. Staff tokens carry
// StaffID, admin tokens carry Role only.
type Claims struct {
	StaffID string `json:"staffId,omitempty"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateStaffToken issues a token identifying a staff member.
func GenerateStaffToken(secret, staffID string) (string, error) {
	return generateToken(secret, Claims{StaffID: staffID})
}

// GenerateAdminToken issues a token carrying the admin role.
func GenerateAdminToken(secret string) (string, error) {
	return generateToken(secret, Claims{Role: constants.RoleAdmin})
}

func generateToken(secret string, claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(constants.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "shift-management-api",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token string, returning its claims.
func ValidateToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
