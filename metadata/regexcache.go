package metadata

import (
	"regexp"
	"sync"

	"golang.org/x/sync/singleflight"
)

// patternCache interns compiled regular expressions by their source
// text plus anchoring mode, so the same national_number_pattern shared
// by a dozen regions is compiled exactly once for the life of the
// process. A singleflight.Group collapses concurrent first-touch
// compiles of the same key into one regexp.Compile call, satisfying
// §5's "double-initialization is acceptable only if results are
// byte-equal" requirement without a hand-rolled double-checked lock.
type patternCache struct {
	mu    sync.RWMutex
	full  map[string]*regexp.Regexp
	pfx   map[string]*regexp.Regexp
	group singleflight.Group
}

var patterns = &patternCache{
	full: make(map[string]*regexp.Regexp),
	pfx:  make(map[string]*regexp.Regexp),
}

// FullMatch returns the cached anchored regexp that requires the
// entire input to match pattern, per the design note in §9: "a 'full
// match' wraps the pattern" with explicit start/end anchors.
func FullMatch(pattern string) *regexp.Regexp {
	return patterns.get(&patterns.full, "f:"+pattern, "^(?:"+pattern+")$")
}

// PrefixMatch returns the cached regexp that requires pattern to match
// starting at the beginning of the input, without requiring the input
// to be fully consumed — the "prefix match appends a catch-all suffix"
// variant from §9, used while testing whether an in-progress national
// number could still satisfy a leading_digits_pattern or an
// as-you-type candidate format.
func PrefixMatch(pattern string) *regexp.Regexp {
	return patterns.get(&patterns.pfx, "p:"+pattern, "^(?:"+pattern+")")
}

func (c *patternCache) get(bucket *map[string]*regexp.Regexp, key, source string) *regexp.Regexp {
	c.mu.RLock()
	if re, ok := (*bucket)[key]; ok {
		c.mu.RUnlock()
		return re
	}
	c.mu.RUnlock()

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		re := regexp.MustCompile(source)
		c.mu.Lock()
		(*bucket)[key] = re
		c.mu.Unlock()
		return re, nil
	})
	return v.(*regexp.Regexp)
}
