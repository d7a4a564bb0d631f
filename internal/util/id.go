package util

import (
	"fmt"
	"math/rand"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns n random base36 characters.
func RandomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// GenerateID builds ids of the form prefix_<unixmillis>_<rand36(9)>, the
// scheme the web client already parses for guest and user identities.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), RandomToken(9))
}
