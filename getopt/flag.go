package getopt

import "strings"

// FlagKind identifies the storage type a registered flag binds to.
type FlagKind int

const (
	KindBool FlagKind = iota
	KindInt
	KindFloat
	KindString
)

// String returns the human-readable name of the kind.
func (k FlagKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// register records every comma-separated spelling under the given kind and
// returns the spellings so the caller can bind them to one shared cell.
// Re-registering a spelling silently overwrites the previous entry.
func (p *Parser) register(spellings string, kind FlagKind) []string {
	names := make([]string, 0, 2)
	for _, name := range strings.Split(spellings, ",") {
		if name == "" {
			continue
		}
		if _, dup := p.kinds[name]; !dup {
			p.spellings = append(p.spellings, name)
		}
		p.kinds[name] = kind
		p.markers[name[0]] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Bool registers a boolean flag family. Spellings are comma-separated, e.g.
// "-a,--append". All spellings share the returned cell, which is initialized
// to def and mutated in place by Parse. The caller owns the cell.
func (p *Parser) Bool(spellings string, def bool) *bool {
	cell := new(bool)
	*cell = def
	for _, name := range p.register(spellings, KindBool) {
		p.bools[name] = cell
	}
	return cell
}

// Int registers an integer flag family. See Bool for spelling and
// ownership semantics.
func (p *Parser) Int(spellings string, def int) *int {
	cell := new(int)
	*cell = def
	for _, name := range p.register(spellings, KindInt) {
		p.ints[name] = cell
	}
	return cell
}

// Float registers a float64 flag family. See Bool for spelling and
// ownership semantics.
func (p *Parser) Float(spellings string, def float64) *float64 {
	cell := new(float64)
	*cell = def
	for _, name := range p.register(spellings, KindFloat) {
		p.floats[name] = cell
	}
	return cell
}

// String registers a string flag family. See Bool for spelling and
// ownership semantics.
func (p *Parser) String(spellings string, def string) *string {
	cell := new(string)
	*cell = def
	for _, name := range p.register(spellings, KindString) {
		p.strs[name] = cell
	}
	return cell
}
