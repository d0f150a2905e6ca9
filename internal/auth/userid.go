package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// UserIDLength is the fixed length of generated user ids.
const UserIDLength = 10

// userIDAlphabet is the uppercase-alphanumeric alphabet user ids draw from.
const userIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxUserIDAttempts bounds the random-generation retry loop.
const maxUserIDAttempts = 10

// ErrUserIDExhausted is returned when neither random generation nor the
// timestamp fallback produced an unused id.
var ErrUserIDExhausted = errors.New("could not generate a unique user id")

// GenerateUserID returns a 10-character code unique according to the exists
// probe. It draws random candidates up to maxUserIDAttempts times, then
// falls back to a timestamp-derived id. The fallback is probed once as
// well; an unchecked fallback would be a silent collision risk.
func GenerateUserID(exists func(id string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxUserIDAttempts; attempt++ {
		id, err := randomUserID()
		if err != nil {
			return "", err
		}
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}

	// Timestamp fallback: "U" + seconds since epoch modulo 1e9, zero-padded
	// to keep the full 10 characters.
	id := fmt.Sprintf("U%09d", time.Now().Unix()%1_000_000_000)
	taken, err := exists(id)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrUserIDExhausted
	}
	return id, nil
}

func randomUserID() (string, error) {
	max := big.NewInt(int64(len(userIDAlphabet)))
	buf := make([]byte, UserIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = userIDAlphabet[n.Int64()]
	}
	return string(buf), nil
}
