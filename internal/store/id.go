package store

import (
	"math/rand"
)

// ReservedID is the path token the frontend uses to route "create new" forms.
// Generated identifiers must never collide with it.
const ReservedID = "new"

const idLength = 10

// NewID returns a 10-character identifier drawn from [a-z0-9]. Each character
// is an independent coin flip between a random letter and a random digit.
// The result is resampled if it ever equals ReservedID. Global uniqueness is
// not guaranteed here; inserts retry on duplicate keys instead.
func NewID() string {
	for {
		b := make([]byte, idLength)
		for i := range b {
			if rand.Intn(2) == 0 {
				b[i] = byte('a' + rand.Intn(26))
			} else {
				b[i] = byte('0' + rand.Intn(10))
			}
		}
		if id := string(b); id != ReservedID {
			return id
		}
	}
}
