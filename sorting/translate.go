package sorting

import (
	"strings"

	"github.com/ncobase/habits/types"
)

// Token is one parsed entry of a sort string.
type Token struct {
	Field      string
	Descending bool
}

// Parse splits a sort string into tokens in their supplied order.
func Parse(sort string) []Token {
	var tokens []Token
	for _, raw := range strings.Split(sort, ",") {
		raw = strings.TrimSpace(raw)
		desc := strings.HasPrefix(raw, "-")
		if desc {
			raw = strings.TrimSpace(raw[1:])
		}
		if raw == "" {
			continue
		}
		tokens = append(tokens, Token{Field: raw, Descending: desc})
	}
	return tokens
}

// Translate converts a sort string into ordering criteria through def.
// Unknown tokens are dropped; when none remain, defaultField is used in
// ascending order. An empty defaultField yields an empty recipe and leaves
// ordering to the caller.
func Translate(sort string, def *Definition, defaultField string) types.MultiCriteria {
	criteria := translateTokens(Parse(sort), def)
	if len(criteria) == 0 && defaultField != "" {
		criteria = translateTokens([]Token{{Field: defaultField}}, def)
		if len(criteria) == 0 {
			criteria = []types.Criterion{{Field: defaultField, Order: types.Ascending}}
		}
	}
	return types.MultiCriteria{Criteria: criteria}
}

func translateTokens(tokens []Token, def *Definition) []types.Criterion {
	criteria := make([]types.Criterion, 0, len(tokens))
	for _, tok := range tokens {
		m, ok := def.Lookup(tok.Field)
		if !ok {
			continue
		}
		order := types.Ascending
		if tok.Descending != m.Reverse {
			order = types.Descending
		}
		criteria = append(criteria, types.Criterion{Field: m.TargetPath, Order: order})
	}
	return criteria
}

// Validate reports whether every token of sort is declared in def. An empty
// sort string is valid.
func Validate(sort string, def *Definition) bool {
	for _, tok := range Parse(sort) {
		if _, ok := def.Lookup(tok.Field); !ok {
			return false
		}
	}
	return true
}
