package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateCode returns a hex token with length random bytes of entropy.
func GenerateCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateTransactionRef builds the bank-transfer reference customers quote
// when paying. The UUID suffix is cryptographically random, so two checkouts
// racing each other can not collide the way a timestamp-plus-short-random
// scheme could.
func GenerateTransactionRef() string {
	return "PB-" + strings.ToUpper(uuid.NewString())
}
