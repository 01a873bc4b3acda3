package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hola mundo\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Nombre?", &out)
	require.NoError(t, err)
	require.Equal(t, "hola mundo", got)
	require.Contains(t, out.String(), "Nombre?")
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("ultima"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Nombre?", &out)
	require.NoError(t, err)
	require.Equal(t, "ultima", got)
}

func TestGetPassword_Stubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secreta123"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out, "Contraseña")
	require.NoError(t, err)
	require.Equal(t, "secreta123", got)
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	_, err := GetPassword(&out, "Contraseña")
	require.Error(t, err)
}

func TestGetConfirmation(t *testing.T) {
	cases := []struct {
		answer string
		want   bool
	}{
		{"s", true},
		{"si", true},
		{"Sí", true},
		{"n", false},
		{"no", false},
		{"", false},
	}
	for _, tc := range cases {
		in := bufio.NewReader(strings.NewReader(tc.answer + "\n"))
		var out bytes.Buffer
		got, err := GetConfirmation(in, "Continuar?", &out)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "answer %q", tc.answer)
	}
}
