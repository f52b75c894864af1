// Package password implementa el hash de credenciales con PBKDF2-HMAC-SHA256,
// salt aleatorio por credencial y comparación en tiempo constante.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 120000
	keyLen     = sha256.Size
)

// Hash deriva la contraseña y devuelve "salt$hex" listo para persistir.
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	digest := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLen, sha256.New)
	return saltHex + "$" + hex.EncodeToString(digest), nil
}

// Verify recalcula el hash con el salt almacenado y compara en tiempo
// constante. Un valor almacenado malformado verifica como falso.
func Verify(password, stored string) bool {
	saltHex, digestHex, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
