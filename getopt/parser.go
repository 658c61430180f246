// Package getopt implements a small getopt-style command-line parser. Flags
// are registered as comma-separated spelling families ("-a,--append") bound
// to typed storage cells, then a single Parse pass walks the argument vector,
// mutates the cells in place and returns the tokens that matched no
// registered flag. Two dialects are supported: Strict distinguishes
// short-flag ("-a value") from long-flag ("--append=value") syntax, while
// AsIs accepts either separator form for any flag. Clustered short flags
// ("-abc") are expanded into their single-character parts.
package getopt

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-getopt/internal/intern"
	"github.com/dzonerzy/go-getopt/internal/pool"
)

// Dialect selects how flag values are separated from flag names.
type Dialect int

const (
	// Strict accepts "-a value" and "--append=value" but rejects
	// "--append value" and treats the '=' in "-a=value" as opaque text.
	Strict Dialect = iota
	// AsIs accepts either the '=' or the following-token form for any
	// flag. Useful for Windows-style "/flag" spellings.
	AsIs
)

// Parser binds registered flag families to storage cells and parses an
// argument vector against them. The zero value is not usable; call New.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	args       []string
	fromSystem bool
	configured bool

	// Main lookup routes a spelling to its kind; the typed lookups hold
	// the shared storage cells.
	kinds  map[string]FlagKind
	bools  map[string]*bool
	ints   map[string]*int
	floats map[string]*float64
	strs   map[string]*string

	// markers holds the first byte of every registered spelling; a token
	// is flag-like when its first byte is one of them.
	markers map[byte]struct{}

	// spellings preserves registration order for suggestions.
	spellings []string

	// options accumulates free-standing tokens across Parse calls.
	options []string
}

// New creates an empty Parser. Register flags and call SetArgs before Parse.
func New() *Parser {
	return &Parser{
		kinds:   make(map[string]FlagKind, 16),
		bools:   make(map[string]*bool, 8),
		ints:    make(map[string]*int, 8),
		floats:  make(map[string]*float64, 4),
		strs:    make(map[string]*string, 8),
		markers: make(map[byte]struct{}, 2),
	}
}

// FromCommandLine creates a Parser bound to os.Args. The leading executable
// name is skipped during parsing.
func FromCommandLine() *Parser {
	p := New()
	p.SetArgs(os.Args, true)
	return p
}

// SetArgs supplies the argument vector to parse. When fromSystem is true the
// vector is treated as process argv and parsing starts at index 1, skipping
// the executable name. The vector is never mutated by Parse.
func (p *Parser) SetArgs(args []string, fromSystem bool) {
	p.args = args
	p.fromSystem = fromSystem
	p.configured = true
}

// Options returns a copy of the free-standing tokens seen so far. The
// accumulator persists across Parse calls on the same Parser and is never
// cleared.
func (p *Parser) Options() []string {
	return slices.Clone(p.options)
}

// Parse walks the argument vector once, stores every recognized flag value
// into its registered cell and returns the tokens that looked flag-like but
// matched no registered spelling. Free-standing tokens go to the Options
// accumulator. Numeric values that fail to convert are reported in the
// returned slice and leave their cell untouched.
//
// Parse fails only when no argument vector was supplied or the dialect is
// out of range.
func (p *Parser) Parse(dialect Dialect) ([]string, error) {
	if !p.configured {
		return nil, &ParseError{
			Type:    ErrorTypeNoArgs,
			Message: "no argument vector configured; call SetArgs first",
		}
	}
	if dialect != Strict && dialect != AsIs {
		return nil, &ParseError{
			Type:    ErrorTypeBadDialect,
			Message: "unknown dialect value " + strconv.Itoa(int(dialect)),
		}
	}

	// vec aliases the caller's vector until a cluster forces a private,
	// pooled copy. The buffer is returned on every exit path and the
	// caller's vector is live again once Parse returns.
	vec := p.args
	var buf *[]string
	defer func() {
		if buf != nil {
			pool.PutArgv(buf)
		}
	}()

	var unrecognized []string

	i := 0
	if p.fromSystem {
		i = 1
	}

	for i < len(vec) {
		tok := vec[i]
		if len(tok) == 0 {
			p.options = append(p.options, tok)
			i++
			continue
		}

		flagOnly := tok
		suffix := ""
		hasEq := false
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			flagOnly = tok[:eq]
			suffix = tok[eq+1:]
			hasEq = true
		}

		kind, ok := p.kinds[flagOnly]
		if !ok {
			if _, flagLike := p.markers[tok[0]]; !flagLike {
				p.options = append(p.options, tok)
				i++
				continue
			}
			prefix := tok
			if len(tok) > 2 {
				prefix = tok[:2]
			}
			if _, cluster := p.kinds[prefix]; !cluster {
				unrecognized = append(unrecognized, tok)
				i++
				continue
			}
			// Clustered short flags ("-abc"): rewrite the current
			// slot to the final flag and append each interior
			// character as its own token, so a trailing value
			// still belongs to the final flag. The slot is then
			// re-evaluated without advancing.
			if buf == nil {
				buf = pool.GetArgv()
				*buf = append(*buf, vec...)
			}
			marker := tok[0]
			(*buf)[i] = intern.ShortToken(marker, tok[len(tok)-1])
			for j := 1; j < len(tok)-1; j++ {
				*buf = append(*buf, intern.ShortToken(marker, tok[j]))
			}
			vec = *buf
			continue
		}

		if kind == KindBool {
			i = p.consumeBool(vec, i, tok, flagOnly, suffix, hasEq, dialect)
			continue
		}
		i, unrecognized = p.consumeValue(vec, i, tok, flagOnly, suffix, kind, hasEq, dialect, unrecognized)
	}

	return unrecognized, nil
}

// consumeBool applies the boolean consumption rules and returns the next
// index. In the '=' form an absent or non-"0" suffix means true. In the
// following-token form only a literal "0" or "1" is consumed; anything else
// leaves the token alone and the flag becomes true.
func (p *Parser) consumeBool(vec []string, i int, tok, flagOnly, suffix string, hasEq bool, dialect Dialect) int {
	cell := p.bools[flagOnly]

	long := strings.HasPrefix(tok, "--")
	if (dialect == Strict && long) || (dialect == AsIs && hasEq) {
		if !hasEq {
			*cell = true
			return i + 1
		}
		*cell = stripQuotes(suffix) != "0"
		return i + 1
	}

	if i+1 < len(vec) {
		switch stripQuotes(vec[i+1]) {
		case "0":
			*cell = false
			return i + 2
		case "1":
			*cell = true
			return i + 2
		}
	}
	*cell = true
	return i + 1
}

// consumeValue applies the shared consumption rules for int, float and
// string flags. The separator policy is the only dialect difference: Strict
// honors '=' on long-form tokens and requires the following token otherwise,
// AsIs honors '=' everywhere. A value that fails to convert is reported in
// the unrecognized slice; consumption still advances past it.
func (p *Parser) consumeValue(
	vec []string,
	i int,
	tok, flagOnly, suffix string,
	kind FlagKind,
	hasEq bool,
	dialect Dialect,
	unrecognized []string,
) (int, []string) {
	long := strings.HasPrefix(tok, "--")

	switch {
	case hasEq && (dialect == AsIs || long):
		if !p.store(kind, flagOnly, stripQuotes(suffix)) {
			unrecognized = append(unrecognized, tok)
		}
		return i + 1, unrecognized

	case dialect == Strict && long:
		// Long form without '=' carries no value in Strict.
		unrecognized = append(unrecognized, tok)
		return i + 1, unrecognized

	case i+1 >= len(vec):
		unrecognized = append(unrecognized, tok)
		return i + 1, unrecognized

	default:
		if !p.store(kind, flagOnly, stripQuotes(vec[i+1])) {
			unrecognized = append(unrecognized, tok)
		}
		return i + 2, unrecognized
	}
}

// store converts value for the flag's kind and writes it into the bound
// cell. It reports false, leaving the cell untouched, when the conversion
// fails.
func (p *Parser) store(kind FlagKind, flagOnly, value string) bool {
	switch kind {
	case KindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		*p.ints[flagOnly] = n
	case KindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		*p.floats[flagOnly] = f
	case KindString:
		*p.strs[flagOnly] = value
	case KindBool:
		// Booleans never reach the shared value path.
	}
	return true
}
