package signing

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Status tracks whether an external signer has signed a record. It is
// independent of the record's business status until a signature promotes both.
type Status string

const (
	StatusUnsigned Status = "unsigned"
	StatusSigned   Status = "signed"
)

// Valid reports whether s is a known signing status.
func (s Status) Valid() bool {
	return s == StatusUnsigned || s == StatusSigned
}

// Kind identifies the entity kinds that support signing links.
type Kind string

const (
	KindInvoice  Kind = "invoice"
	KindProposal Kind = "proposal"
)

// ParseKind resolves a URL path segment to a signable kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindInvoice:
		return KindInvoice, true
	case KindProposal:
		return KindProposal, true
	}
	return "", false
}

// TokenLength is the length of every minted signing token.
const TokenLength = 32

// 64 characters so a random byte masks to a uniform index.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// MintToken returns a new URL-safe random token of TokenLength characters.
func MintToken() (string, error) {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading randomness: %w", err)
	}
	var b strings.Builder
	b.Grow(TokenLength)
	for _, c := range buf {
		b.WriteByte(alphabet[c&63])
	}
	return b.String(), nil
}

// Link derives the public signing URL for a token. Links are always recomputed
// from the token, never stored independently of it.
func Link(baseURL string, kind Kind, token string) string {
	return fmt.Sprintf("%s/sign/%s/%s", strings.TrimRight(baseURL, "/"), kind, token)
}
