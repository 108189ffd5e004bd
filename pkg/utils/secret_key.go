package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"os"
)

// GenerateSecretKey returns a new plaintext app secret key. Callers must hash
// it before storage; the plaintext is returned to the user exactly once.
func GenerateSecretKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return "tr_" + base64.StdEncoding.EncodeToString(raw), nil
}

// HashSecretKey is a keyed hash (HMAC-SHA256) of the plaintext key under the
// process-wide SECRET. The hash is the lookup key in the secret_keys table,
// so no timing-safe comparison is needed beyond the lookup itself. SECRET is
// read per call so a value loaded from .env after process start is honored.
func HashSecretKey(key string) string {
	mac := hmac.New(sha256.New, []byte(os.Getenv("SECRET")))
	mac.Write([]byte(key))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
