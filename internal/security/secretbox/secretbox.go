// Package secretbox cifra valores de configuración con una master password.
//
// El formato es base64(salt|nonce|ciphertext): la clave AES-256 se deriva con
// PBKDF2-HMAC-SHA512 sobre un salt aleatorio por valor, y el payload se sella
// con AES-GCM. En YAML/env los valores cifrados se escriben como ENC(<base64>).
package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PasswordEnvVar contiene la master password usada por la config y cmd/enc.
	PasswordEnvVar = "SECRETBOX_PASSWORD"

	saltSize     = 16
	nonceSize    = 12 // AES-GCM, 96 bits
	keySize      = 32 // AES-256
	kdfIter      = 100_000
	wrapPrefix   = "ENC("
	wrapSuffix   = ")"
	minSealedLen = saltSize + nonceSize + 16 // 16 = tag GCM
)

var (
	ErrNoPassword = errors.New("secretbox: master password vacía")
	ErrMalformed  = errors.New("secretbox: valor cifrado mal formado")
)

// Box cifra y descifra con una master password fija.
type Box struct {
	password []byte
}

// New crea un Box. La password no puede estar vacía.
func New(password string) (*Box, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrNoPassword
	}
	return &Box{password: []byte(password)}, nil
}

// FromEnv crea un Box leyendo SECRETBOX_PASSWORD.
func FromEnv() (*Box, error) {
	b, err := New(os.Getenv(PasswordEnvVar))
	if err != nil {
		return nil, fmt.Errorf("%s no seteada: %w", PasswordEnvVar, err)
	}
	return b, nil
}

func (b *Box) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(b.password, salt, kdfIter, keySize, sha512.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt cifra plain y devuelve base64(salt|nonce|ciphertext).
func (b *Box) Encrypt(plain string) (string, error) {
	buf := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("random: %w", err)
	}
	salt, nonce := buf[:saltSize], buf[saltSize:]

	gcm, err := b.aead(salt)
	if err != nil {
		return "", err
	}
	sealed := gcm.Seal(buf, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt revierte Encrypt. Acepta el valor con o sin envoltorio ENC(...).
func (b *Box) Decrypt(encoded string) (string, error) {
	if inner, ok := Unwrap(encoded); ok {
		encoded = inner
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) < minSealedLen {
		return "", ErrMalformed
	}
	salt, nonce, ct := raw[:saltSize], raw[saltSize:saltSize+nonceSize], raw[saltSize+nonceSize:]

	gcm, err := b.aead(salt)
	if err != nil {
		return "", err
	}
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("gcm open (password incorrecta o valor alterado): %w", err)
	}
	return string(pt), nil
}

// Reveal devuelve v tal cual si no está envuelto en ENC(...), o lo descifra.
func (b *Box) Reveal(v string) (string, error) {
	if _, ok := Unwrap(v); !ok {
		return v, nil
	}
	return b.Decrypt(v)
}

// Wrap envuelve un valor cifrado como ENC(<valor>).
func Wrap(encoded string) string {
	return wrapPrefix + encoded + wrapSuffix
}

// Unwrap extrae el contenido de ENC(...). ok=false si v no tiene ese formato.
func Unwrap(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, wrapPrefix) || !strings.HasSuffix(v, wrapSuffix) {
		return "", false
	}
	return v[len(wrapPrefix) : len(v)-len(wrapSuffix)], true
}

// IsWrapped indica si v tiene la forma ENC(...).
func IsWrapped(v string) bool {
	_, ok := Unwrap(v)
	return ok
}
