package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

func tempSessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStore_SetAndRestoreRoundTrip(t *testing.T) {
	path := tempSessionFile(t)

	s := New(path)
	require.False(t, s.IsAuthenticated())

	user := models.Usuario{ID: "u1", Nombres: "Ana", Apellidos: "Pérez", Email: "ana@colegio.bo", Rol: models.RolSocio}
	require.NoError(t, s.Set(user, "tok-abc"))
	require.True(t, s.IsAuthenticated())

	// a fresh store on the same file restores the session
	s2 := New(path)
	require.True(t, s2.IsAuthenticated())
	require.Equal(t, "tok-abc", s2.Token())
	got, ok := s2.User()
	require.True(t, ok)
	require.Equal(t, "ana@colegio.bo", got.Email)
	require.Equal(t, models.RolSocio, s2.Rol())
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	path := tempSessionFile(t)
	s := New(path)
	require.NoError(t, s.Set(models.Usuario{ID: "u1"}, "tok"))

	s.Clear()
	require.False(t, s.IsAuthenticated())
	_, ok := s.User()
	require.False(t, ok)

	// second clear leaves identical state and does not panic on the
	// already-removed file
	s.Clear()
	require.False(t, s.IsAuthenticated())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestStore_CorruptFileYieldsEmptySession(t *testing.T) {
	path := tempSessionFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := New(path)
	require.False(t, s.IsAuthenticated())
}

func TestStore_TokenExpiresAt(t *testing.T) {
	path := tempSessionFile(t)
	s := New(path)

	t.Run("no token", func(t *testing.T) {
		require.True(t, s.TokenExpiresAt().IsZero())
	})

	t.Run("opaque token", func(t *testing.T) {
		require.NoError(t, s.Set(models.Usuario{}, "not-a-jwt"))
		require.True(t, s.TokenExpiresAt().IsZero())
	})

	t.Run("jwt with exp", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		})
		signed, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)

		require.NoError(t, s.Set(models.Usuario{}, signed))
		require.Equal(t, exp.UTC(), s.TokenExpiresAt().UTC())
	})
}

func TestStore_HandleUnauthorized(t *testing.T) {
	path := tempSessionFile(t)

	var gotRoute string
	s := New(path, WithNavigator(func(route string) { gotRoute = route }))
	require.NoError(t, s.Set(models.Usuario{ID: "u1", Rol: models.RolAdmin}, "tok"))

	s.HandleUnauthorized()

	require.False(t, s.IsAuthenticated())
	require.Equal(t, common.LoginRoute, gotRoute)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
