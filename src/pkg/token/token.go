package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Generate signs an admin session token carrying the claim metadata.
func Generate(v *viper.Viper, metadata Metadata) (string, error) {
	ttl := v.GetInt("jwt.ttl_hours")
	if ttl == 0 {
		ttl = 12
	}
	expiresAt := time.Now().Add(time.Duration(ttl) * time.Hour)

	claims := jwt.MapClaims{
		"iss": v.GetString("app.name"),
		"aud": "admin",
		"exp": expiresAt.Unix(),
		"metadata": map[string]string{
			"user_id":   metadata.UserID,
			"full_name": metadata.FullName,
			"role":      metadata.Role,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jwtToken.SignedString([]byte(v.GetString("jwt.secret")))
}

// Verify parses and validates a bearer token, returning the claim.
func Verify(v *viper.Viper, tokenString string) (*Claim, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.GetString("jwt.secret")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claim := &Claim{}
	if iss, ok := claims["iss"].(string); ok {
		claim.Iss = iss
	}
	if aud, ok := claims["aud"].(string); ok {
		claim.Aud = aud
	}
	if metadata, ok := claims["metadata"].(map[string]interface{}); ok {
		if userID, ok := metadata["user_id"].(string); ok {
			claim.Metadata.UserID = userID
		}
		if fullName, ok := metadata["full_name"].(string); ok {
			claim.Metadata.FullName = fullName
		}
		if role, ok := metadata["role"].(string); ok {
			claim.Metadata.Role = role
		}
	}

	return claim, nil
}
