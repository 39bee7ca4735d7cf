// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/utils"
	"github.com/spf13/afero"
	"golang.org/x/crypto/scrypt"
)

const (
	keystoreVersion = 4
	keystoreCipher  = "aes-128-ctr"
	keystoreKDF     = "scrypt"
)

// Keystore is the JSON wallet format protected by a password.
type Keystore struct {
	Version int            `json:"version"`
	ID      string         `json:"id"`
	Address string         `json:"address"`
	Bech32  string         `json:"bech32"`
	Crypto  KeystoreCrypto `json:"crypto"`
}

type KeystoreCrypto struct {
	Ciphertext   string       `json:"ciphertext"`
	CipherParams CipherParams `json:"cipherparams"`
	Cipher       string       `json:"cipher"`
	KDF          string       `json:"kdf"`
	KDFParams    ScryptParams `json:"kdfparams"`
	MAC          string       `json:"mac"`
}

type CipherParams struct {
	IV string `json:"iv"`
}

type ScryptParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}

// DefaultScryptParams are the work factors wallets are written with.
var DefaultScryptParams = ScryptParams{DKLen: 32, N: 4096, R: 8, P: 1}

// LoadKeystore reads and decrypts the keystore at path.
func LoadKeystore(fs afero.Fs, enc AddressEncoder, path string, password string) (*WalletAccount, error) {
	f, err := fs.Open(utils.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", constants.ErrInvalidKeystore, path, err)
	}
	defer f.Close()
	var ks Keystore
	if err := utils.ReadJSON(f, &ks); err != nil {
		return nil, fmt.Errorf("%w %s: %w", constants.ErrInvalidKeystore, path, err)
	}
	return ks.Decrypt(enc, password)
}

// Decrypt recovers the wallet, checking the MAC before decrypting.
func (ks *Keystore) Decrypt(enc AddressEncoder, password string) (*WalletAccount, error) {
	c := ks.Crypto
	if c.Cipher != keystoreCipher || c.KDF != keystoreKDF {
		return nil, fmt.Errorf("%w: unsupported cipher %q or kdf %q", constants.ErrInvalidKeystore, c.Cipher, c.KDF)
	}
	salt, err := hex.DecodeString(c.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %w", constants.ErrInvalidKeystore, err)
	}
	iv, err := hex.DecodeString(c.CipherParams.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: iv: %w", constants.ErrInvalidKeystore, err)
	}
	ciphertext, err := hex.DecodeString(c.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %w", constants.ErrInvalidKeystore, err)
	}
	mac, err := hex.DecodeString(c.MAC)
	if err != nil {
		return nil, fmt.Errorf("%w: mac: %w", constants.ErrInvalidKeystore, err)
	}

	derived, err := deriveKey(password, salt, c.KDFParams)
	if err != nil {
		return nil, err
	}
	defer Wipe(derived)
	if !hmac.Equal(keystoreMAC(derived, ciphertext), mac) {
		return nil, fmt.Errorf("%w: wrong password", constants.ErrInvalidKeystore)
	}
	plaintext, err := aesCTR(derived[:16], iv, ciphertext)
	if err != nil {
		return nil, err
	}
	defer Wipe(plaintext)
	if len(plaintext) < ed25519.SeedSize {
		return nil, fmt.Errorf("%w: decrypted key is %d bytes", constants.ErrInvalidKeystore, len(plaintext))
	}
	return NewWalletAccount(plaintext[:ed25519.SeedSize], enc)
}

// NewKeystore encrypts acc under password.
func NewKeystore(acc *WalletAccount, password string, params ScryptParams) (*Keystore, error) {
	salt := make([]byte, 32)
	iv := make([]byte, aes.BlockSize)
	id := make([]byte, 16)
	for _, b := range [][]byte{salt, iv, id} {
		if _, err := rand.Read(b); err != nil {
			return nil, err
		}
	}
	params.Salt = hex.EncodeToString(salt)
	derived, err := deriveKey(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer Wipe(derived)
	seed := acc.Seed()
	defer Wipe(seed)
	plaintext := append(seed, acc.pubKey...)
	defer Wipe(plaintext)
	ciphertext, err := aesCTR(derived[:16], iv, plaintext)
	if err != nil {
		return nil, err
	}
	return &Keystore{
		Version: keystoreVersion,
		ID:      fmt.Sprintf("%x-%x-%x-%x-%x", id[0:4], id[4:6], id[6:8], id[8:10], id[10:]),
		Address: acc.PublicKeyHex(),
		Bech32:  acc.Address(),
		Crypto: KeystoreCrypto{
			Ciphertext:   hex.EncodeToString(ciphertext),
			CipherParams: CipherParams{IV: hex.EncodeToString(iv)},
			Cipher:       keystoreCipher,
			KDF:          keystoreKDF,
			KDFParams:    params,
			MAC:          hex.EncodeToString(keystoreMAC(derived, ciphertext)),
		},
	}, nil
}

// Save writes the keystore as JSON.
func (ks *Keystore) Save(fs afero.Fs, path string) error {
	var buf bytes.Buffer
	if err := utils.WriteJSON(&buf, ks); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), constants.WriteReadUserOnlyPerms)
}

func deriveKey(password string, salt []byte, p ScryptParams) ([]byte, error) {
	if p.DKLen < 32 {
		return nil, fmt.Errorf("%w: derived key length %d is too short", constants.ErrInvalidKeystore, p.DKLen)
	}
	derived, err := scrypt.Key([]byte(password), salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidKeystore, err)
	}
	return derived, nil
}

func keystoreMAC(derived, ciphertext []byte) []byte {
	h := hmac.New(sha256.New, derived[16:32])
	h.Write(ciphertext)
	return h.Sum(nil)
}

func aesCTR(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv is %d bytes", constants.ErrInvalidKeystore, len(iv))
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}
