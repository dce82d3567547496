package cmd

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPrivateKey(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	b := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})
	p := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(p, b, 0o600))
	return p
}

func TestLoadSigner_ValidKey(t *testing.T) {
	s, err := loadSigner(writeTestPrivateKey(t))
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestLoadSigner_MissingFile(t *testing.T) {
	_, err := loadSigner(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestLoadSigner_Garbage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(p, []byte("not a key"), 0o600))
	_, err := loadSigner(p)
	require.Error(t, err)
}
