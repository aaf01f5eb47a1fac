package linear

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the request header Linear sends the body digest in.
const SignatureHeader = "linear-signature"

// Signature computes the lowercase-hex HMAC-SHA256 digest of body under
// secret. It is the value Linear places in the linear-signature header,
// and the value clients sending synthetic events must produce.
func Signature(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature reports whether presented matches the digest of body
// under secret. It operates on the raw body bytes, never a reserialized
// form, and compares in constant time. An empty secret or an empty
// presented value never verifies.
func VerifySignature(secret string, body []byte, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	expected := Signature(secret, body)
	return hmac.Equal([]byte(expected), []byte(presented))
}
