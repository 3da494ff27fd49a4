package wulai

import (
	"crypto/sha1" //nolint:gosec // fixed wire contract with the platform
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const authHeaderPrefix = "Api-Auth-"

// AuthHeaders is the per-request authentication header set. A new set must
// be produced with [Sign] for every request.
type AuthHeaders struct {
	Pubkey    string
	Sign      string
	Nonce     string
	Timestamp string
}

// Sign computes a fresh authentication header set for the given credentials.
// The signature is hex(sha1(nonce + timestamp + secret)).
func Sign(pubkey, secret string) AuthHeaders {
	return signAt(pubkey, secret, time.Now())
}

func signAt(pubkey, secret string, now time.Time) AuthHeaders {
	id := uuid.New()
	nonce := hex.EncodeToString(id[:])
	timestamp := strconv.FormatInt(now.Unix(), 10)

	return AuthHeaders{
		Pubkey:    pubkey,
		Sign:      signature(nonce, timestamp, secret),
		Nonce:     nonce,
		Timestamp: timestamp,
	}
}

func signature(nonce, timestamp, secret string) string {
	sum := sha1.Sum([]byte(nonce + timestamp + secret)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Headers returns the header set keyed by wire header name.
func (a AuthHeaders) Headers() map[string]string {
	return map[string]string{
		authHeaderPrefix + "pubkey":    a.Pubkey,
		authHeaderPrefix + "sign":      a.Sign,
		authHeaderPrefix + "nonce":     a.Nonce,
		authHeaderPrefix + "timestamp": a.Timestamp,
	}
}
