// Package intern provides canonical short-flag tokens for go-getopt.
// Cluster expansion rewrites "-abc" into the tokens "-c", "-a", "-b"; every
// such token is two bytes (marker + flag character), so handing out
// pre-built or interned strings keeps repeated Parse calls from
// reallocating them.
package intern

import "sync"

// dashTokens holds every "-c" token up front; '-' is by far the most common
// marker byte.
var dashTokens [256]string

func init() {
	for c := 0; c < 256; c++ {
		dashTokens[c] = string([]byte{'-', byte(c)})
	}
}

// ShortToken returns the canonical two-byte token for a marker and flag
// character, e.g. ShortToken('-', 'a') == "-a". Non-dash markers (Windows
// style '/') go through the shared interner.
func ShortToken(marker, c byte) string {
	if marker == '-' {
		return dashTokens[c]
	}
	return defaultInterner.Intern(string([]byte{marker, c}))
}

// Interner is a thread-safe string intern table.
type Interner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewInterner creates an Interner with the given pre-allocated capacity.
func NewInterner(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mutex.RLock()
	if canonical, ok := in.strings[s]; ok {
		in.mutex.RUnlock()
		return canonical
	}
	in.mutex.RUnlock()

	in.mutex.Lock()
	defer in.mutex.Unlock()

	// Double-check after acquiring the write lock.
	if canonical, ok := in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// Len reports how many distinct strings the interner holds.
func (in *Interner) Len() int {
	in.mutex.RLock()
	defer in.mutex.RUnlock()
	return len(in.strings)
}

// defaultInterner backs ShortToken for uncommon marker bytes.
var defaultInterner = NewInterner(16)
