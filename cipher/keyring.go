// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"sort"
	"sync"

	"github.com/bitmark-inc/go-argon2"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// sizes
const (
	keyLength       = 32
	nonceLength     = 24
	maxHandleLength = 64
)

// KeyConfiguration - one key, either hex or derived from a passphrase
type KeyConfiguration struct {
	Handle     string `gluamapper:"handle" json:"handle"`
	Key        string `gluamapper:"key" json:"key,omitempty"`               // hex
	Passphrase string `gluamapper:"passphrase" json:"passphrase,omitempty"` // argon2i
	Salt       string `gluamapper:"salt" json:"salt,omitempty"`             // hex
}

// Configuration - keys given inline plus an optional watched file
type Configuration struct {
	File string             `gluamapper:"file" json:"file"`
	Keys []KeyConfiguration `gluamapper:"keys" json:"keys"`
}

// Keyring - secretbox cipher over a set of named keys
type Keyring struct {
	sync.RWMutex
	log    *logger.L
	inline []KeyConfiguration
	file   string
	keys   map[string]*[keyLength]byte
}

// NewKeyring - load the inline keys and the key file if one is set
func NewKeyring(log *logger.L, configuration *Configuration) (*Keyring, error) {
	k := &Keyring{
		log:    log,
		inline: configuration.Keys,
		file:   configuration.File,
	}
	if err := k.Reload(); nil != err {
		return nil, err
	}
	return k, nil
}

// Reload - rebuild the key map, the old keys stay in use on any error
func (k *Keyring) Reload() error {
	all := make([]KeyConfiguration, 0, len(k.inline))
	all = append(all, k.inline...)

	if "" != k.file {
		buffer, err := ioutil.ReadFile(k.file)
		if nil != err {
			return err
		}
		var fromFile []KeyConfiguration
		if err := json.Unmarshal(buffer, &fromFile); nil != err {
			return err
		}
		all = append(all, fromFile...)
	}

	keys := make(map[string]*[keyLength]byte, len(all))
	for _, c := range all {
		if !validHandle(c.Handle) {
			return fault.ErrInvalidKeyHandle
		}
		key, err := makeKey(c)
		if nil != err {
			k.log.Errorf("key: %q  error: %s", c.Handle, err)
			return err
		}
		keys[c.Handle] = key
	}

	k.Lock()
	k.keys = keys
	k.Unlock()

	k.log.Infof("loaded: %d keys", len(keys))
	return nil
}

// Handles - sorted list of loaded key handles
func (k *Keyring) Handles() []string {
	k.RLock()
	defer k.RUnlock()

	handles := make([]string, 0, len(k.keys))
	for h := range k.keys {
		handles = append(handles, h)
	}
	sort.Strings(handles)
	return handles
}

// Encrypt - seal plaintext with a random nonce as prefix
func (k *Keyring) Encrypt(keyHandle string, plaintext []byte) ([]byte, string, error) {
	key, err := k.key(keyHandle)
	if nil != err {
		return nil, "", err
	}

	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return nil, "", err
	}

	ciphertext := secretbox.Seal(nonce[:], plaintext, &nonce, key)
	return ciphertext, Algorithm, nil
}

// Decrypt - open a sealed box, any mismatch is a decryption failure
func (k *Keyring) Decrypt(keyHandle string, algorithm string, ciphertext []byte) ([]byte, error) {
	if Algorithm != algorithm {
		return nil, fault.ErrUnsupportedAlgorithm
	}
	key, err := k.key(keyHandle)
	if nil != err {
		return nil, fault.ErrDecryptionFailed
	}
	if len(ciphertext) < nonceLength+secretbox.Overhead {
		return nil, fault.ErrDecryptionFailed
	}

	var nonce [nonceLength]byte
	copy(nonce[:], ciphertext[:nonceLength])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceLength:], &nonce, key)
	if !ok {
		return nil, fault.ErrDecryptionFailed
	}
	if nil == plaintext {
		plaintext = []byte{}
	}
	return plaintext, nil
}

func (k *Keyring) key(keyHandle string) (*[keyLength]byte, error) {
	k.RLock()
	defer k.RUnlock()

	key, ok := k.keys[keyHandle]
	if !ok {
		return nil, fault.ErrKeyHandleNotFound
	}
	return key, nil
}

func makeKey(c KeyConfiguration) (*[keyLength]byte, error) {
	var key [keyLength]byte

	switch {
	case "" != c.Key && "" != c.Passphrase:
		return nil, fault.ErrInvalidKeyLength

	case "" != c.Key:
		raw, err := hex.DecodeString(c.Key)
		if nil != err {
			return nil, err
		}
		if keyLength != len(raw) {
			return nil, fault.ErrInvalidKeyLength
		}
		copy(key[:], raw)

	case "" != c.Passphrase:
		salt, err := hex.DecodeString(c.Salt)
		if nil != err {
			return nil, err
		}
		raw, err := DeriveKey(c.Passphrase, salt)
		if nil != err {
			return nil, err
		}
		copy(key[:], raw)

	default:
		return nil, fault.ErrMissingParameters
	}
	return &key, nil
}

// DeriveKey - argon2i key from a passphrase and salt
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     keyLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(passphrase), salt)
}

// GenerateKey - a random key configuration for a handle
func GenerateKey(handle string) (KeyConfiguration, error) {
	if !validHandle(handle) {
		return KeyConfiguration{}, fault.ErrInvalidKeyHandle
	}
	var key [keyLength]byte
	if _, err := rand.Read(key[:]); nil != err {
		return KeyConfiguration{}, err
	}
	return KeyConfiguration{
		Handle: handle,
		Key:    hex.EncodeToString(key[:]),
	}, nil
}

func validHandle(handle string) bool {
	return 0 != len(handle) && len(handle) <= maxHandleLength
}
