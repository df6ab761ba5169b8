package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "burgerhouse", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer()

	tok, err := j.Issue(42, []string{"ROLE_USER"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UID)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
	assert.Equal(t, "burgerhouse", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue(1, nil)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "burgerhouse", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue(1, nil)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// Expired well past the leeway window.
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "burgerhouse", TTL: -5 * time.Minute}
	tok, err := j.Issue(1, nil)
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	j := newJWTer()
	_, err := j.Parse("not.a.token")
	assert.Error(t, err)
}
