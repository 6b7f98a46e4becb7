package signing

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMintToken_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9_-]{32}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := MintToken()
		require.NoError(t, err)
		require.Regexp(t, pattern, token)
		require.False(t, seen[token], "token repeated: %s", token)
		seen[token] = true
	}
}

func TestLink(t *testing.T) {
	link := Link("https://app.example.com", KindInvoice, "abc123")
	require.Equal(t, "https://app.example.com/sign/invoice/abc123", link)

	// Trailing slash on the base must not double up.
	link = Link("https://app.example.com/", KindProposal, "tok")
	require.Equal(t, "https://app.example.com/sign/proposal/tok", link)
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("invoice")
	require.True(t, ok)
	require.Equal(t, KindInvoice, kind)

	kind, ok = ParseKind("proposal")
	require.True(t, ok)
	require.Equal(t, KindProposal, kind)

	_, ok = ParseKind("client")
	require.False(t, ok)
}
