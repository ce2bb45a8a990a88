package modules

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"cryptohomeboy/pkg/journal"
	"cryptohomeboy/pkg/logging"
)

// Intent names the rule that answered a query.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentHelp           Intent = "help"
	IntentList           Intent = "list"
	IntentData           Intent = "data"
	IntentSustainability Intent = "sustainability"
	IntentTrend          Intent = "trend"
	IntentGrowth         Intent = "growth"
	IntentCompare        Intent = "compare"
	IntentWhy            Intent = "why"
	IntentMention        Intent = "mention"
	IntentFallback       Intent = "fallback"
)

// Reply is an answer together with the rule that produced it.
type Reply struct {
	Intent Intent
	Text   string
}

// Recorder receives every answered query.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Advisor answers free-text questions from a knowledge base. It holds no
// per-conversation state, so every query is answered on its own.
type Advisor struct {
	kb       *KnowledgeBase
	log      zerolog.Logger
	recorder Recorder
}

// NewAdvisor creates an advisor over kb.
func NewAdvisor(kb *KnowledgeBase, logger zerolog.Logger) *Advisor {
	return &Advisor{
		kb:  kb,
		log: logging.Component(logger, "advisor"),
	}
}

// WithRecorder makes ProcessTask record each answer to r.
func (a *Advisor) WithRecorder(r Recorder) *Advisor {
	a.recorder = r
	return a
}

// KnowledgeBase returns the table the advisor answers from.
func (a *Advisor) KnowledgeBase() *KnowledgeBase {
	return a.kb
}

// ProcessTask answers a task and records it when a recorder is set. Recording
// failures are logged, never returned.
func (a *Advisor) ProcessTask(ctx context.Context, task string) (string, error) {
	r := a.Answer(task)
	a.log.Debug().Str("query", task).Str("intent", string(r.Intent)).Msg("answered query")

	if a.recorder != nil {
		err := a.recorder.Record(ctx, journal.Entry{Query: task, Intent: string(r.Intent), Reply: r.Text})
		if err != nil {
			a.log.Warn().Err(err).Msg("journal record failed")
		}
	}
	return r.Text, nil
}

// HandleQuery returns the reply text for q.
func (a *Advisor) HandleQuery(q string) string {
	return a.Answer(q).Text
}

// Answer runs the ordered keyword rules against q. The first rule that
// matches produces the reply.
func (a *Advisor) Answer(q string) Reply {
	low := strings.ToLower(strings.TrimSpace(q))

	switch low {
	case "hi", "hello", "hey":
		return Reply{IntentGreeting, fmt.Sprintf("Hey there! I’m %s, your %s crypto sidekick. %s", BotName, BotTone, Disclaimer)}
	}

	if strings.Contains(low, "help") {
		return Reply{IntentHelp, helpReply}
	}

	if low == "list" {
		return Reply{IntentList, "I know about: " + strings.Join(a.kb.Names(), ", ")}
	}

	if low == "data" {
		lines := make([]string, 0, a.kb.Len())
		for _, c := range a.kb.coins {
			lines = append(lines, "• "+ExplainCoin(c))
		}
		return Reply{IntentData, strings.Join(lines, "\n")}
	}

	if containsAny(low, "sustainable", "eco", "green") {
		c, score := a.kb.TopBySustainability()
		return Reply{IntentSustainability, fmt.Sprintf(
			"🌱 I recommend %s! It scores %s/10 on sustainability and uses %s energy. %s",
			c.Name, score.StringFixed(1), c.EnergyUse, Disclaimer)}
	}

	if containsAny(low, "trend", "rising", "going up", "up?") {
		ups := a.kb.Rising()
		if len(ups) == 0 {
			return Reply{IntentTrend, noTrendReply}
		}
		names := make([]string, len(ups))
		for i, c := range ups {
			names[i] = c.Name
		}
		return Reply{IntentTrend, fmt.Sprintf("📈 Trending up: %s. %s", strings.Join(names, ", "), Disclaimer)}
	}

	if containsAny(low, "long-term", "growth", "buy", "profitable") {
		c, score := a.kb.TopByProfitability()
		return Reply{IntentGrowth, fmt.Sprintf(
			"🚀 For growth potential, %s looks best by my simple rules (profitability score %d). "+
				"It has price_trend='%s' and market_cap='%s'. %s",
			c.Name, score, c.PriceTrend, c.MarketCap, Disclaimer)}
	}

	if strings.Contains(low, "compare") && strings.Contains(low, " vs ") {
		parts := strings.Split(strings.TrimSpace(strings.ReplaceAll(low, "compare", "")), " vs ")
		if len(parts) == 2 {
			return Reply{IntentCompare, a.kb.Compare(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))}
		}
	}

	if strings.HasPrefix(low, "why") || strings.Contains(low, "why do you recommend") {
		for _, c := range a.kb.coins {
			if strings.Contains(low, strings.ToLower(c.Name)) {
				return Reply{IntentWhy, fmt.Sprintf(
					"🤔 I like %s because its profitability score is %d and sustainability is %s/10. Details → %s. %s",
					c.Name, Profitability(c), Sustainability(c).StringFixed(1), ExplainCoin(c), Disclaimer)}
			}
		}
		return Reply{IntentWhy, whichCoinReply}
	}

	for _, c := range a.kb.coins {
		if strings.Contains(low, strings.ToLower(c.Name)) || strings.Contains(low, strings.ToLower(c.Ticker)) {
			return Reply{IntentMention, fmt.Sprintf("Here’s what I know:\n• %s\n%s", ExplainCoin(c), Disclaimer)}
		}
	}

	return Reply{IntentFallback, fallbackReply}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// IsExitWord reports whether line asks to end the session.
func IsExitWord(line string) bool {
	low := strings.ToLower(strings.TrimSpace(line))
	for _, w := range ExitWords {
		if low == w {
			return true
		}
	}
	return false
}
