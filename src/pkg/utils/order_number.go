package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber builds a human-readable order number:
// <prefix>-<YYYYMMDD>-<4 random digits>. The suffix is random, not
// sequential, so collisions are possible; callers must handle the
// duplicate-key case.
func GenerateOrderNumber(prefix string) string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fall back to the clock if the entropy source is unavailable
		return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("20060102"), time.Now().UnixNano()%10000)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("20060102"), suffix.Int64())
}
