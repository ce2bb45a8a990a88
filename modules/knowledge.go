package modules

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Trend is the simplified price direction of a coin.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// Level is a coarse high/medium/low bucket used for market cap and energy use.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Coin is one entry of the knowledge base.
type Coin struct {
	Name       string
	Ticker     string
	PriceTrend Trend
	MarketCap  Level
	EnergyUse  Level
	// Sustainability is an intrinsic fraction in [0, 1].
	Sustainability decimal.Decimal
}

// DefaultCoins is the seed table, in answer order.
var DefaultCoins = []Coin{
	{
		Name:           "Bitcoin",
		Ticker:         "BTC",
		PriceTrend:     TrendRising,
		MarketCap:      LevelHigh,
		EnergyUse:      LevelHigh,
		Sustainability: decimal.New(3, -1),
	},
	{
		Name:           "Ethereum",
		Ticker:         "ETH",
		PriceTrend:     TrendStable,
		MarketCap:      LevelHigh,
		EnergyUse:      LevelMedium,
		Sustainability: decimal.New(6, -1),
	},
	{
		Name:           "Cardano",
		Ticker:         "ADA",
		PriceTrend:     TrendRising,
		MarketCap:      LevelMedium,
		EnergyUse:      LevelLow,
		Sustainability: decimal.New(8, -1),
	},
}

// KnowledgeBase is an ordered, read-only table of coins. It is safe for
// concurrent use because nothing mutates it after construction.
type KnowledgeBase struct {
	coins  []Coin
	byName map[string]int
}

// NewKnowledgeBase validates coins and builds a knowledge base that keeps their order.
func NewKnowledgeBase(coins []Coin) (*KnowledgeBase, error) {
	if len(coins) == 0 {
		return nil, ErrEmptyKnowledgeBase
	}

	kb := &KnowledgeBase{
		coins:  make([]Coin, 0, len(coins)),
		byName: make(map[string]int, len(coins)),
	}
	for i, c := range coins {
		if err := validateCoin(c); err != nil {
			return nil, fmt.Errorf("coin #%d: %w", i+1, err)
		}
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, exists := kb.byName[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCoin, c.Name)
		}
		c.Name = strings.TrimSpace(c.Name)
		c.Ticker = strings.ToUpper(strings.TrimSpace(c.Ticker))
		kb.byName[key] = len(kb.coins)
		kb.coins = append(kb.coins, c)
	}
	return kb, nil
}

// DefaultKnowledgeBase returns the knowledge base built from DefaultCoins.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := NewKnowledgeBase(DefaultCoins)
	if err != nil {
		panic(fmt.Sprintf("default knowledge base: %v", err))
	}
	return kb
}

func validateCoin(c Coin) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAttribute)
	}
	if strings.TrimSpace(c.Ticker) == "" {
		return fmt.Errorf("%w: %s has no ticker", ErrInvalidAttribute, c.Name)
	}
	switch c.PriceTrend {
	case TrendRising, TrendStable, TrendFalling:
	default:
		return fmt.Errorf("%w: %s price trend %q", ErrInvalidAttribute, c.Name, c.PriceTrend)
	}
	if !validLevel(c.MarketCap) {
		return fmt.Errorf("%w: %s market cap %q", ErrInvalidAttribute, c.Name, c.MarketCap)
	}
	if !validLevel(c.EnergyUse) {
		return fmt.Errorf("%w: %s energy use %q", ErrInvalidAttribute, c.Name, c.EnergyUse)
	}
	if c.Sustainability.IsNegative() || c.Sustainability.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s sustainability %s not in [0, 1]", ErrInvalidAttribute, c.Name, c.Sustainability)
	}
	return nil
}

func validLevel(l Level) bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// Coins returns a copy of the table in order.
func (kb *KnowledgeBase) Coins() []Coin {
	out := make([]Coin, len(kb.coins))
	copy(out, kb.coins)
	return out
}

// Names returns coin names in table order.
func (kb *KnowledgeBase) Names() []string {
	names := make([]string, len(kb.coins))
	for i, c := range kb.coins {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of coins.
func (kb *KnowledgeBase) Len() int {
	return len(kb.coins)
}

// Lookup finds a coin by name, ignoring case and surrounding whitespace.
func (kb *KnowledgeBase) Lookup(name string) (Coin, bool) {
	i, ok := kb.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Coin{}, false
	}
	return kb.coins[i], true
}

// coinRecord is the on-disk shape of a coin in a knowledge file.
type coinRecord struct {
	Name           string  `yaml:"name"`
	Ticker         string  `yaml:"ticker"`
	PriceTrend     string  `yaml:"price_trend"`
	MarketCap      string  `yaml:"market_cap"`
	EnergyUse      string  `yaml:"energy_use"`
	Sustainability float64 `yaml:"sustainability_score"`
}

type knowledgeFile struct {
	Coins []coinRecord `yaml:"coins"`
}

// LoadKnowledgeBase reads a YAML knowledge file. The file replaces the seed
// table entirely; coin order in the file is the answer order.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return ParseKnowledgeBase(raw)
}

// ParseKnowledgeBase decodes YAML knowledge data.
func ParseKnowledgeBase(raw []byte) (*KnowledgeBase, error) {
	var f knowledgeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode knowledge file: %w", err)
	}

	coins := make([]Coin, 0, len(f.Coins))
	for _, r := range f.Coins {
		coins = append(coins, Coin{
			Name:           r.Name,
			Ticker:         r.Ticker,
			PriceTrend:     Trend(strings.ToLower(strings.TrimSpace(r.PriceTrend))),
			MarketCap:      Level(strings.ToLower(strings.TrimSpace(r.MarketCap))),
			EnergyUse:      Level(strings.ToLower(strings.TrimSpace(r.EnergyUse))),
			Sustainability: decimal.NewFromFloat(r.Sustainability),
		})
	}
	return NewKnowledgeBase(coins)
}
