package locale

import (
	"math/rand"
	"strconv"
	"time"
)

// CreateAppID returns a client-side correlation id for a product that has
// not been persisted yet: the last five digits of the unix timestamp,
// shifted, plus a three-digit random part. The server matches its own id
// generation and stays authoritative; collisions within the same second
// are tolerated.
func CreateAppID() string {
	timestampPart := time.Now().Unix() % 100_000
	randomPart := int64(rand.Intn(900) + 100)
	return strconv.FormatInt(timestampPart*1000+randomPart, 10)
}
