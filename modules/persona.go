package modules

const (
	BotName = "CryptoHomeboy"
	BotTone = "friendly, emoji-sprinkled, and beginner-friendly"

	Disclaimer = "⚠️ Disclaimer: Crypto is risky—always do your own research (DYOR). " +
		"This bot is educational and NOT financial advice."

	// Banner is printed once when a console session starts.
	Banner = "👋 " + BotName + ": Hey! Let’s find you a green and growing crypto. Type 'help' for examples."

	Farewell = "Bye! 👋"
)

const helpReply = "Try asking:\n" +
	"• Which crypto is trending up?\n" +
	"• What’s the most sustainable coin?\n" +
	"• Which coin should I buy for long-term growth?\n" +
	"• Compare Bitcoin vs Ethereum\n" +
	"• Why do you recommend Cardano?\n" +
	"• list (to see all coins) | data (to see raw data)\n" +
	"• exit (to quit)\n"

const fallbackReply = "I didn’t catch that. Type 'help' for ideas, or try:\n" +
	"• Which crypto is trending up?\n" +
	"• What’s the most sustainable coin?\n" +
	"• Compare Bitcoin vs Ethereum\n"

const (
	noTrendReply   = "I don't see any coin trending up right now."
	whichCoinReply = "Tell me which coin (e.g., 'Why Cardano?')."
)

// ExitWords end a console session when typed on their own.
var ExitWords = []string{"exit", "quit", "bye"}
