package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
	"burgerhouse/pkg/utils"
)

func validRegistration() service.RegisterInput {
	return service.RegisterInput{
		Email:     "jean@example.com",
		Password:  "s3cret!",
		Nom:       "Dupont",
		Prenom:    "Jean",
		Telephone: "0601020304",
	}
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Register(validRegistration())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleUser}, u.Roles)
}

func TestRegisterDropsPrivilegedRoles(t *testing.T) {
	f := newFixture(t)

	in := validRegistration()
	in.Roles = []string{domain.RoleAdmin, domain.RoleUser, "ROLE_SUPER"}
	u, err := f.users.Register(in)
	require.NoError(t, err)
	// Only the allow-listed role survives; the rest vanish silently.
	assert.Equal(t, []string{domain.RoleUser}, u.Roles)
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture(t)

	in := validRegistration()
	u, err := f.users.Register(in)
	require.NoError(t, err)
	assert.NotEqual(t, in.Password, u.Password)
	assert.True(t, utils.CheckPassword(in.Password, u.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Register(validRegistration())
	require.NoError(t, err)

	_, err = f.users.Register(validRegistration())
	var cerr *service.ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	in := validRegistration()
	in.Email = "not-an-email"
	in.Telephone = ""
	_, err := f.users.Register(in)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "telephone")
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)

	in := validRegistration()
	_, err := f.users.Register(in)
	require.NoError(t, err)

	u, err := f.users.Authenticate(in.Email, in.Password)
	require.NoError(t, err)
	assert.Equal(t, in.Email, u.Email)

	_, err = f.users.Authenticate(in.Email, "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Unknown accounts fail the same way as bad passwords.
	_, err = f.users.Authenticate("nobody@example.com", in.Password)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture(t)

	u, created, err := f.users.EnsureAdmin("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []string{domain.RoleAdmin}, u.Roles)
	assert.True(t, utils.CheckPassword("admin123", u.Password))

	again, created, err := f.users.EnsureAdmin("admin@example.com", "other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
}
