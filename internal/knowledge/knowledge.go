// internal/knowledge/knowledge.go

// Package knowledge holds the static per-domain keyword→answer tables the
// support pipeline consults. Table iteration order is insertion order,
// which fixes first-match precedence when a query contains several
// keywords.
package knowledge

import (
	"encoding/json"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// NoArticleFound is the sentinel Lookup returns when no keyword matches.
const NoArticleFound = "No specific knowledge base article found for this query."

// QA is one question/answer pair, surfaced in table order.
type QA struct {
	Question string
	Answer   string
}

// Base is the loaded knowledge base: domain → ordered keyword→answer table.
type Base struct {
	domains *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, string]]
}

// NewBase returns an empty knowledge base.
func NewBase() *Base {
	return &Base{domains: orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()}
}

// Set appends or replaces one keyword→answer entry under a domain.
func (b *Base) Set(domain, keyword, answer string) {
	table, ok := b.domains.Get(domain)
	if !ok {
		table = orderedmap.New[string, string]()
		b.domains.Set(domain, table)
	}
	table.Set(keyword, answer)
}

// Load reads the domain tables from a JSON file shaped
// {"domain": {"keyword": "answer", ...}, ...}. A missing or malformed
// file falls back to the built-in default table; loading never fails.
func Load(path string, logger *zap.Logger) *Base {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("knowledge base file not found, using built-in defaults",
			zap.String("path", path), zap.Error(err))
		return defaultBase()
	}

	domains := orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()
	if err := json.Unmarshal(data, domains); err != nil {
		logger.Error("failed to decode knowledge base file, using built-in defaults",
			zap.String("path", path), zap.Error(err))
		return defaultBase()
	}

	logger.Info("loaded knowledge base",
		zap.String("path", path), zap.Int("domains", domains.Len()))
	return &Base{domains: domains}
}

// Lookup returns the first answer whose keyword occurs in the lowercased
// query, or NoArticleFound. Table order decides when several keywords hit.
func (b *Base) Lookup(query, domain string) string {
	table, ok := b.domains.Get(domain)
	if !ok {
		return NoArticleFound
	}

	queryLower := strings.ToLower(query)
	for pair := table.Oldest(); pair != nil; pair = pair.Next() {
		if strings.Contains(queryLower, pair.Key) {
			return pair.Value
		}
	}
	return NoArticleFound
}

// Pairs returns the domain's entries in table order, nil for an unknown
// domain.
func (b *Base) Pairs(domain string) []QA {
	table, ok := b.domains.Get(domain)
	if !ok {
		return nil
	}

	pairs := make([]QA, 0, table.Len())
	for pair := table.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, QA{Question: pair.Key, Answer: pair.Value})
	}
	return pairs
}

func defaultBase() *Base {
	b := NewBase()

	b.Set("general", "refund status", "Refunds typically take 5-7 business days to process. Please provide your order number to check the status.")

	b.Set("technical", "internet not working", "Please try restarting your router and modem. If the issue persists, check the service status page for your area.")
	b.Set("technical", "installation help", "For installation assistance, please refer to your product manual or visit our online guides.")

	b.Set("finance", "billing inquiry", "For billing inquiries, please provide your account number. You can also check your last bill online.")

	b.Set("travel", "change plan", "You can change your service plan through your online account portal or by speaking with a sales representative.")
	b.Set("travel", "flight status", "You can check your flight status on the airline's website or app using your booking reference.")

	return b
}
