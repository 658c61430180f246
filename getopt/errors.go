package getopt

import (
	"github.com/dzonerzy/go-getopt/internal/fuzzy"
)

// ErrorType categorizes the fatal conditions Parse can report. Unrecognized
// flags and failed value conversions are not errors; they come back in the
// slice Parse returns.
type ErrorType string

const (
	// ErrorTypeNoArgs means Parse ran before SetArgs supplied a vector.
	ErrorTypeNoArgs ErrorType = "no_args"
	// ErrorTypeBadDialect means the dialect value is outside the closed
	// enum. Defensive; unreachable through the exported constants.
	ErrorTypeBadDialect ErrorType = "bad_dialect"
)

// ParseError is the error type returned by Parse.
type ParseError struct {
	Type    ErrorType
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// suggestMaxDistance is the edit-distance cutoff for flag suggestions.
const suggestMaxDistance = 2

// Suggest returns the registered spelling closest to an unrecognized token,
// or "" when nothing is within edit distance 2. Useful for building
// "did you mean" messages from the slice Parse returns.
func (p *Parser) Suggest(token string) string {
	return fuzzy.FindBestFlag(token, p.spellings, suggestMaxDistance)
}

// SuggestAll maps each token that has a near-miss registered spelling to
// that spelling. Tokens without a close match are omitted.
func (p *Parser) SuggestAll(tokens []string) map[string]string {
	suggestions := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if match := p.Suggest(tok); match != "" {
			suggestions[tok] = match
		}
	}
	return suggestions
}
