package intent

import (
	"fmt"
	"strings"
	"time"

	"cryptochat/internal/dates"
	"cryptochat/internal/model"
)

const promptTemplate = `You are an AI that extracts structured data from cryptocurrency, NFT, and exchange-related queries.
Your job is to identify:
- The intent of the query.
- The cryptocurrency / NFT / exchange name in the correct CoinGecko API format.
- The date (if the query involves historical data, including relative terms like "6 months ago").
- The number of results/days (if applicable, e.g. "top 10 coins" or "market chart for 7 days").

Possible intents:
%s

Rules:
- Convert any cryptocurrency symbol (e.g. BTC, ETH, SOL) into its full CoinGecko id (bitcoin, ethereum, solana).
- Identify NFT collection ids if the user asks about NFTs and exchange ids if the user asks about exchanges.
- The asset must be lowercase and formatted for API use. If no asset is found, use "unknown".
- Today is %s. Convert relative dates into an exact DD-MM-YYYY date: a month counts as 30 days and a year as 365 days.
- If the user does not give a date, use "unknown".
- If a number is mentioned (like "top 10 coins" or "chart for 7 days"), extract it as an integer, otherwise use "unknown".

Respond with a single JSON object and nothing else:
{"intent": "<intent>", "asset": "<asset>", "date": "<DD-MM-YYYY or unknown>", "number": <integer or "unknown">}

Examples:
Query: "What was the price of BTC 6 months ago?"
{"intent": "history", "asset": "bitcoin", "date": "%s", "number": "unknown"}

Query: "What was the price of BTC 10 days ago?"
{"intent": "history", "asset": "bitcoin", "date": "%s", "number": "unknown"}

Query: "List the top 10 cryptocurrencies."
{"intent": "list_coins", "asset": "unknown", "date": "unknown", "number": 10}

Query: "Show me BTC market chart for 7 days."
{"intent": "market_chart", "asset": "bitcoin", "date": "unknown", "number": 7}

Query: "Tell me about the Pudgy Penguins NFT collection."
{"intent": "nft", "asset": "pudgy-penguins", "date": "unknown", "number": "unknown"}

Query: "How secure is Kraken exchange?"
{"intent": "general", "asset": "kraken", "date": "unknown", "number": "unknown"}

Query: "What about ETH?"
{"intent": "previous", "asset": "ethereum", "date": "unknown", "number": "unknown"}

Now extract the intent, asset, date and number from this query:
User Query: %q`

var intentHelp = map[model.Intent]string{
	model.IntentPrice:         "asking about the current price",
	model.IntentMarketCap:     "asking about market cap",
	model.IntentSupply:        "asking about circulating supply",
	model.IntentVolume:        "asking about 24h trading volume",
	model.IntentHistory:       "asking for the price on a specific or relative date",
	model.IntentMarketChart:   "asking for a market trend or chart",
	model.IntentOHLC:          "asking for OHLC price data",
	model.IntentListCoins:     "asking for a list of top coins",
	model.IntentCategories:    "asking about crypto categories",
	model.IntentNFT:           "NFT price or details",
	model.IntentExchange:      "details of a specific exchange",
	model.IntentListExchanges: "list of exchanges",
	model.IntentNews:          "crypto, NFT or exchange news",
	model.IntentPrevious:      `the query refers to a previous answer, e.g. "What about ETH?"`,
	model.IntentGeneral:       "general crypto questions, security, platforms or recommendations",
}

// BuildPrompt renders the extraction prompt with examples anchored at now.
func BuildPrompt(userText string, now time.Time) string {
	var sb strings.Builder
	for _, i := range model.Intents {
		fmt.Fprintf(&sb, "- %q (%s)\n", i, intentHelp[i])
	}

	return fmt.Sprintf(promptTemplate,
		strings.TrimRight(sb.String(), "\n"),
		dates.Format(now),
		dates.DaysAgo(now, 6*30),
		dates.DaysAgo(now, 10),
		userText,
	)
}
