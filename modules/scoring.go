package modules

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Profitability scores a coin in [0, 4] from its price trend and market cap.
func Profitability(c Coin) int {
	score := 0
	switch c.PriceTrend {
	case TrendRising:
		score += 2
	case TrendStable:
		score++
	}
	switch c.MarketCap {
	case LevelHigh:
		score += 2
	case LevelMedium:
		score++
	}
	return score
}

// Sustainability scores a coin in [0, 12]: its intrinsic fraction scaled to
// ten points plus a bonus for low or medium energy use.
func Sustainability(c Coin) decimal.Decimal {
	score := c.Sustainability.Mul(decimal.NewFromInt(10))
	switch c.EnergyUse {
	case LevelLow:
		score = score.Add(decimal.NewFromInt(2))
	case LevelMedium:
		score = score.Add(decimal.NewFromInt(1))
	}
	return score
}

// TopByProfitability returns the most profitable coin. Ties go to the coin
// listed first.
func (kb *KnowledgeBase) TopByProfitability() (Coin, int) {
	best := kb.coins[0]
	bestScore := Profitability(best)
	for _, c := range kb.coins[1:] {
		if s := Profitability(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}

// TopBySustainability returns the most sustainable coin. Ties go to the coin
// listed first.
func (kb *KnowledgeBase) TopBySustainability() (Coin, decimal.Decimal) {
	best := kb.coins[0]
	bestScore := Sustainability(best)
	for _, c := range kb.coins[1:] {
		if s := Sustainability(c); s.GreaterThan(bestScore) {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}

// Rising returns the coins whose price trend is rising, in table order.
func (kb *KnowledgeBase) Rising() []Coin {
	var out []Coin
	for _, c := range kb.coins {
		if c.PriceTrend == TrendRising {
			out = append(out, c)
		}
	}
	return out
}

// ExplainCoin renders the one-line detail string for a coin.
func ExplainCoin(c Coin) string {
	return fmt.Sprintf("%s (%s): trend=%s, market cap=%s, energy use=%s, sustainability=%s/10",
		c.Name,
		c.Ticker,
		c.PriceTrend,
		c.MarketCap,
		c.EnergyUse,
		c.Sustainability.Mul(decimal.NewFromInt(10)).StringFixed(0),
	)
}
