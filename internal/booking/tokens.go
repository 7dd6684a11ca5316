package booking

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Identifier formats follow the original mock backend: the wire contract
// fixes uppercase base-36 tokens of exact lengths, so these cannot be
// UUIDs. Neither token carries a uniqueness guarantee; collisions are
// possible and documented behavior.

const (
	bookingIDSuffixLength  = 5
	confirmationCodeLength = 6

	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// newBookingID builds `BK` + unix-millis + 5 random alphanumerics.
func newBookingID(now time.Time) string {
	return "BK" + strconv.FormatInt(now.UnixMilli(), 10) + randomToken(bookingIDSuffixLength)
}

func randomToken(length int) string {
	token := make([]byte, length)

	for i := range token {
		token[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}

	return string(token)
}
