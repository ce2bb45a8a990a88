package modules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Compare renders a side-by-side comparison of two coins. Unknown names
// produce a guidance reply rather than an error.
func (kb *KnowledgeBase) Compare(nameA, nameB string) string {
	a, okA := kb.Lookup(nameA)
	b, okB := kb.Lookup(nameB)
	if !okA || !okB {
		return fmt.Sprintf("I can only compare coins in my database. Try: %s.", strings.Join(kb.Names(), ", "))
	}

	pa, pb := Profitability(a), Profitability(b)
	sa, sb := Sustainability(a), Sustainability(b)

	lines := []string{
		fmt.Sprintf("🆚 Comparing %s vs %s:", a.Name, b.Name),
		fmt.Sprintf("• Profitability → %s: %d | %s: %d  → %s",
			a.Name, pa, b.Name, pb, verdict(a.Name, b.Name, decimal.NewFromInt(int64(pa)), decimal.NewFromInt(int64(pb)))),
		fmt.Sprintf("• Sustainability → %s: %s | %s: %s  → %s",
			a.Name, sa.StringFixed(1), b.Name, sb.StringFixed(1), verdict(a.Name, b.Name, sa, sb)),
	}
	return strings.Join(lines, "\n")
}

func verdict(nameA, nameB string, scoreA, scoreB decimal.Decimal) string {
	switch scoreA.Cmp(scoreB) {
	case 1:
		return "✅ " + nameA
	case -1:
		return "✅ " + nameB
	default:
		return "Tie"
	}
}
