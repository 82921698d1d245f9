// Package payu implements the PayU hash scheme: a SHA-512 digest over a
// pipe-delimited, fixed-order field list with the merchant salt mixed in.
// The request hash puts the salt last; the callback (reverse) hash puts
// the salt first and walks the fields in reverse order.
package payu

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// RequestFields is the ordered field set signed on an outbound payment
// request. Amount must already be the normalized two-decimal string the
// gateway will echo back.
type RequestFields struct {
	Key         string
	TxnID       string
	Amount      string
	ProductInfo string
	FirstName   string
	Email       string
}

// CallbackFields is the field set the gateway signs on its status
// callback, listed here in the order they appear in the reverse hash
// after the salt and status.
type CallbackFields struct {
	Status      string
	Email       string
	FirstName   string
	ProductInfo string
	Amount      string
	TxnID       string
	Key         string
}

// requestPlaceholders is the run of unused udf slots between email and
// salt in the request hash string.
var requestPlaceholders = make([]string, 10)

// callbackPlaceholders sits between status and email in the reverse
// hash. The gateway emits nine slots here, not ten; the asymmetry is
// part of the wire format.
var callbackPlaceholders = make([]string, 9)

// RequestHashString returns the raw concatenation the request hash is
// computed over. Exposed for the hash debugging endpoint.
func RequestHashString(f RequestFields, salt string) string {
	parts := make([]string, 0, 17)
	parts = append(parts, f.Key, f.TxnID, f.Amount, f.ProductInfo, f.FirstName, f.Email)
	parts = append(parts, requestPlaceholders...)
	parts = append(parts, salt)
	return strings.Join(parts, "|")
}

// RequestHash computes the signature attached to an outbound payment
// request: sha512(key|txnid|amount|productinfo|firstname|email|<10 empty>|salt),
// lowercase hex.
func RequestHash(f RequestFields, salt string) string {
	sum := sha512.Sum512([]byte(RequestHashString(f, salt)))
	return hex.EncodeToString(sum[:])
}

// CallbackHash computes the expected signature of a gateway callback:
// sha512(salt|status|<9 empty>|email|firstname|productinfo|amount|txnid|key),
// lowercase hex.
func CallbackHash(f CallbackFields, salt string) string {
	parts := make([]string, 0, 17)
	parts = append(parts, salt, f.Status)
	parts = append(parts, callbackPlaceholders...)
	parts = append(parts, f.Email, f.FirstName, f.ProductInfo, f.Amount, f.TxnID, f.Key)
	return digest(parts)
}

// VerifyCallback recomputes the callback hash and compares it against
// the received value in constant time.
func VerifyCallback(f CallbackFields, salt, received string) bool {
	expected := CallbackHash(f, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(received))) == 1
}

func digest(parts []string) string {
	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
