package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-git/gcfg/types"
)

// Values is the typed view of a Source. It follows git-config conventions:
// booleans accept true/yes/on/1 and false/no/off/0 in any case, a key with
// an empty value counts as true, and integers may carry a k, m or g suffix.
// A value that does not parse yields the caller's default.
type Values struct {
	src Source
}

// NewValues wraps src. A nil src behaves as an empty source.
func NewValues(src Source) Values {
	if src == nil {
		src = Map{}
	}
	return Values{src: src}
}

// GetString returns the raw value and whether it is set.
func (v Values) GetString(key string) (string, bool) {
	return v.src.Lookup(key)
}

// GetStringDefault returns the raw value, or def when the key is not set.
func (v Values) GetStringDefault(key, def string) string {
	if s, ok := v.src.Lookup(key); ok {
		return s
	}
	return def
}

// GetBool returns the boolean value of key, or def when unset or unparseable.
func (v Values) GetBool(key string, def bool) bool {
	s, ok := v.src.Lookup(key)
	if !ok {
		return def
	}
	b, ok := parseBool(s)
	if !ok {
		return def
	}
	return b
}

// GetLong returns the integer value of key, or def when unset or unparseable.
func (v Values) GetLong(key string, def int64) int64 {
	s, ok := v.src.Lookup(key)
	if !ok {
		return def
	}
	n, ok := parseLong(s)
	if !ok {
		return def
	}
	return n
}

// GetInt is GetLong restricted to the int range.
func (v Values) GetInt(key string, def int) int {
	n := v.GetLong(key, int64(def))
	if n < math.MinInt || n > math.MaxInt {
		return def
	}
	return int(n)
}

// Keys lists the keys of the underlying source.
func (v Values) Keys() []string {
	return v.src.Keys()
}

// parseBool accepts the git-config boolean words. A blank value is true,
// as for a key written without "= value".
func parseBool(s string) (bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return true, true
	}
	b, err := types.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}

func parseLong(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var mul int64 = 1
	switch s[len(s)-1] {
	case 'k', 'K':
		mul = 1 << 10
	case 'm', 'M':
		mul = 1 << 20
	case 'g', 'G':
		mul = 1 << 30
	}
	if mul != 1 {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if n > math.MaxInt64/mul || n < math.MinInt64/mul {
		return 0, false
	}
	return n * mul, true
}
