package modules

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptohomeboy/pkg/journal"
)

func newTestAdvisor() *Advisor {
	return NewAdvisor(DefaultKnowledgeBase(), zerolog.Nop())
}

func TestAnswerIntents(t *testing.T) {
	tests := []struct {
		query  string
		intent Intent
	}{
		{"hi", IntentGreeting},
		{"  HELLO  ", IntentGreeting},
		{"hey", IntentGreeting},
		{"hey there", IntentFallback},
		{"help me please", IntentHelp},
		{"list", IntentList},
		{"list coins", IntentFallback},
		{"DATA", IntentData},
		{"What’s the most sustainable coin?", IntentSustainability},
		{"anything green?", IntentSustainability},
		{"Which crypto is trending up?", IntentTrend},
		{"is anything going up", IntentTrend},
		{"Which coin should I buy for long-term growth?", IntentGrowth},
		{"most profitable", IntentGrowth},
		{"Compare Bitcoin vs Ethereum", IntentCompare},
		{"compare bitcoin vs ethereum vs cardano", IntentMention},
		{"why cardano", IntentWhy},
		{"why", IntentWhy},
		{"tell me about btc", IntentMention},
		{"ethereum", IntentMention},
		{"tell me a joke", IntentFallback},
		{"", IntentFallback},
	}

	a := newTestAdvisor()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.intent, a.Answer(tt.query).Intent)
		})
	}
}

func TestEarlierRulesWin(t *testing.T) {
	a := newTestAdvisor()

	// "help" is checked before "list" and everything after it
	assert.Equal(t, IntentHelp, a.Answer("help: list").Intent)
	// "recommend" contains "eco", so the sustainability rule answers first
	assert.Equal(t, IntentSustainability, a.Answer("Why do you recommend Cardano?").Intent)
	// sustainability keywords come before trend keywords
	assert.Equal(t, IntentSustainability, a.Answer("green trend").Intent)
}

func TestGreetingReply(t *testing.T) {
	got := newTestAdvisor().HandleQuery("hello")

	assert.True(t, strings.HasPrefix(got, "Hey there! I’m CryptoHomeboy, your friendly, emoji-sprinkled, and beginner-friendly crypto sidekick."))
	assert.True(t, strings.HasSuffix(got, Disclaimer))
}

func TestListReplyKeepsTableOrder(t *testing.T) {
	assert.Equal(t, "I know about: Bitcoin, Ethereum, Cardano", newTestAdvisor().HandleQuery("list"))
}

func TestDataReply(t *testing.T) {
	lines := strings.Split(newTestAdvisor().HandleQuery("data"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "• Bitcoin (BTC): trend=rising, market cap=high, energy use=high, sustainability=3/10", lines[0])
	assert.Equal(t, "• Ethereum (ETH): trend=stable, market cap=high, energy use=medium, sustainability=6/10", lines[1])
	assert.Equal(t, "• Cardano (ADA): trend=rising, market cap=medium, energy use=low, sustainability=8/10", lines[2])
}

func TestSustainableRecommendsCardano(t *testing.T) {
	got := newTestAdvisor().HandleQuery("What's the most sustainable coin?")

	assert.Equal(t,
		"🌱 I recommend Cardano! It scores 10.0/10 on sustainability and uses low energy. "+Disclaimer,
		got)
}

func TestTrendReply(t *testing.T) {
	assert.Equal(t,
		"📈 Trending up: Bitcoin, Cardano. "+Disclaimer,
		newTestAdvisor().HandleQuery("Which crypto is trending up?"))
}

func TestTrendReplyWithoutRisingCoins(t *testing.T) {
	kb, err := NewKnowledgeBase([]Coin{{
		Name:           "Tether",
		Ticker:         "USDT",
		PriceTrend:     TrendStable,
		MarketCap:      LevelHigh,
		EnergyUse:      LevelLow,
		Sustainability: decimal.RequireFromString("0.5"),
	}})
	require.NoError(t, err)

	a := NewAdvisor(kb, zerolog.Nop())
	assert.Equal(t, "I don't see any coin trending up right now.", a.HandleQuery("anything rising?"))
}

func TestGrowthReply(t *testing.T) {
	assert.Equal(t,
		"🚀 For growth potential, Bitcoin looks best by my simple rules (profitability score 4). "+
			"It has price_trend='rising' and market_cap='high'. "+Disclaimer,
		newTestAdvisor().HandleQuery("Which coin should I buy for long-term growth?"))
}

func TestCompareQuery(t *testing.T) {
	a := newTestAdvisor()

	assert.Equal(t, a.KnowledgeBase().Compare("bitcoin", "ethereum"), a.HandleQuery("Compare Bitcoin vs Ethereum"))
	assert.Equal(t,
		"I can only compare coins in my database. Try: Bitcoin, Ethereum, Cardano.",
		a.HandleQuery("compare solana vs bitcoin"))
}

func TestWhyReply(t *testing.T) {
	a := newTestAdvisor()
	cardano, _ := a.KnowledgeBase().Lookup("Cardano")

	got := a.HandleQuery("why Cardano")
	assert.Contains(t, got, ExplainCoin(cardano))
	assert.True(t, strings.HasPrefix(got, "🤔 I like Cardano because its profitability score is 3 and sustainability is 10.0/10. Details → "))

	assert.Equal(t, "Tell me which coin (e.g., 'Why Cardano?').", a.HandleQuery("why?"))
}

func TestMentionMatchesTicker(t *testing.T) {
	got := newTestAdvisor().HandleQuery("what about ADA")

	assert.Equal(t,
		"Here’s what I know:\n• Cardano (ADA): trend=rising, market cap=medium, energy use=low, sustainability=8/10\n"+Disclaimer,
		got)
}

func TestFallbackReply(t *testing.T) {
	got := newTestAdvisor().HandleQuery("tell me a joke")

	assert.True(t, strings.HasPrefix(got, "I didn’t catch that. Type 'help' for ideas"))
}

type captureRecorder struct {
	entries []journal.Entry
	err     error
}

func (r *captureRecorder) Record(_ context.Context, e journal.Entry) error {
	r.entries = append(r.entries, e)
	return r.err
}

func TestProcessTaskRecords(t *testing.T) {
	rec := &captureRecorder{}
	a := newTestAdvisor().WithRecorder(rec)

	reply, err := a.ProcessTask(context.Background(), "list")
	require.NoError(t, err)
	assert.Equal(t, "I know about: Bitcoin, Ethereum, Cardano", reply)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "list", rec.entries[0].Query)
	assert.Equal(t, string(IntentList), rec.entries[0].Intent)
	assert.Equal(t, reply, rec.entries[0].Reply)
}

func TestProcessTaskIgnoresRecorderFailure(t *testing.T) {
	a := newTestAdvisor().WithRecorder(&captureRecorder{err: errors.New("disk full")})

	reply, err := a.ProcessTask(context.Background(), "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply)
}

func TestIsExitWord(t *testing.T) {
	for _, w := range []string{"exit", "QUIT", " Bye "} {
		assert.True(t, IsExitWord(w), w)
	}
	for _, w := range []string{"", "goodbye", "exit now"} {
		assert.False(t, IsExitWord(w), w)
	}
}
