package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

var (
	ErrInvalidCryptoKey = errors.New("CRYPTO_KEY must be 32 bytes")
	ErrSealedTooShort   = errors.New("sealed payload shorter than nonce")
)

// Sealer encrypts payloads with AES-256-GCM. The nonce is prepended to the ciphertext.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key string) (*Sealer, error) {
	if len(key) != 32 {
		return nil, ErrInvalidCryptoKey
	}
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrSealedTooShort
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	return s.aead.Open(nil, nonce, ciphertext, nil)
}
