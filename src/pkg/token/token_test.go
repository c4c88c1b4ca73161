package token

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(secret string) *viper.Viper {
	v := viper.New()
	v.Set("app.name", "storefront-service")
	v.Set("jwt.secret", secret)
	v.Set("jwt.ttl_hours", 1)
	return v
}

func TestGenerateAndVerify(t *testing.T) {
	cfg := tokenConfig("test-secret")

	signed, err := Generate(cfg, Metadata{UserID: "7", FullName: "Ama N.", Role: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claim, err := Verify(cfg, signed)
	require.NoError(t, err)
	assert.Equal(t, "storefront-service", claim.Iss)
	assert.Equal(t, "admin", claim.Aud)
	assert.Equal(t, "7", claim.Metadata.UserID)
	assert.Equal(t, "Ama N.", claim.Metadata.FullName)
	assert.Equal(t, "admin", claim.Metadata.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(tokenConfig("secret-a"), Metadata{UserID: "7"})
	require.NoError(t, err)

	_, err = Verify(tokenConfig("secret-b"), signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify(tokenConfig("secret"), "not-a-token")
	assert.Error(t, err)
}
