package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Header is the request header carrying the payload signature.
const Header = "X-Signature-256"

// Prefix identifies the digest algorithm in the header value.
const Prefix = "sha256="

// Sign computes HMAC-SHA256 over body keyed with secret and returns the
// header value, "sha256=" followed by the hex digest.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return Prefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether header is a valid signature for body under secret.
// Comparison is constant-time.
func Verify(secret string, body []byte, header string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(header))
}
