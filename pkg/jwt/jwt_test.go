package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Inventario-analytics/pkg/jwt"
)

func TestGenerateParse(t *testing.T) {
	token, err := pkgjwt.Generate("s3cret", "admin", pkgjwt.RoleAdmin, "test", 5)
	require.NoError(t, err)

	user, role, err := pkgjwt.Parse("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user)
	assert.Equal(t, pkgjwt.RoleAdmin, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate("s3cret", "admin", pkgjwt.RoleAdmin, "test", 5)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := pkgjwt.Generate("s3cret", "admin", pkgjwt.RoleAdmin, "test", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("s3cret", token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "admin", pkgjwt.RoleAdmin, "test", 5)
	assert.Error(t, err)
}
