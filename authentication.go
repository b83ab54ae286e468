package heidelpay

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var publicKeyPrefixes = []string{"s-pub-", "p-pub-"}

// PublicKey is a publishable key of a merchant account. Sandbox keys start
// with "s-pub-", production keys with "p-pub-".
type PublicKey struct {
	key string
}

// IsPublicKey reports whether key has the form of a publishable key.
func IsPublicKey(key string) bool {
	for _, prefix := range publicKeyPrefixes {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			return true
		}
	}
	return false
}

// NewPublicKey validates key.
func NewPublicKey(key string) (PublicKey, error) {
	key = strings.TrimSpace(key)
	if !IsPublicKey(key) {
		return PublicKey{}, fmt.Errorf("heidelpay: invalid public key: must start with %s", strings.Join(publicKeyPrefixes, " or "))
	}
	return PublicKey{key: key}, nil
}

// MustPublicKey is like [NewPublicKey] but panics on an invalid key.
func MustPublicKey(key string) PublicKey {
	pk, err := NewPublicKey(key)
	if err != nil {
		panic(err)
	}
	return pk
}

// IsZero reports whether pk was not built by [NewPublicKey].
func (pk PublicKey) IsZero() bool { return pk.key == "" }

// Sandbox reports whether pk belongs to the test environment.
func (pk PublicKey) Sandbox() bool { return strings.HasPrefix(pk.key, "s-pub-") }

// String returns the key with everything but its prefix masked, so it can be
// printed safely.
func (pk PublicKey) String() string {
	if pk.key == "" {
		return ""
	}
	for _, prefix := range publicKeyPrefixes {
		if strings.HasPrefix(pk.key, prefix) {
			return prefix + "***"
		}
	}
	return "***"
}

// AuthorizationHeader is the value of the Authorization header: the key as
// basic auth user name with an empty password.
func (pk PublicKey) AuthorizationHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pk.key+":"))
}
