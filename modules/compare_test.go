package modules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBitcoinEthereum(t *testing.T) {
	out := DefaultKnowledgeBase().Compare("Bitcoin", "Ethereum")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "🆚 Comparing Bitcoin vs Ethereum:", lines[0])
	assert.Equal(t, "• Profitability → Bitcoin: 4 | Ethereum: 3  → ✅ Bitcoin", lines[1])
	assert.Equal(t, "• Sustainability → Bitcoin: 3.0 | Ethereum: 7.0  → ✅ Ethereum", lines[2])
}

func TestCompareIgnoresCase(t *testing.T) {
	kb := DefaultKnowledgeBase()
	assert.Equal(t, kb.Compare("Bitcoin", "Ethereum"), kb.Compare("bitcoin", "ETHEREUM"))
}

func TestCompareTie(t *testing.T) {
	out := DefaultKnowledgeBase().Compare("ethereum", "cardano")

	assert.Contains(t, out, "• Profitability → Ethereum: 3 | Cardano: 3  → Tie")
	assert.Contains(t, out, "• Sustainability → Ethereum: 7.0 | Cardano: 10.0  → ✅ Cardano")
}

func TestCompareSameCoinTies(t *testing.T) {
	out := DefaultKnowledgeBase().Compare("bitcoin", "bitcoin")
	assert.Equal(t, 2, strings.Count(out, "→ Tie"))
}

func TestCompareUnknownCoin(t *testing.T) {
	kb := DefaultKnowledgeBase()
	want := "I can only compare coins in my database. Try: Bitcoin, Ethereum, Cardano."

	assert.Equal(t, want, kb.Compare("solana", "bitcoin"))
	assert.Equal(t, want, kb.Compare("bitcoin", ""))
}
