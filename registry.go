package num2text

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// registry maps normalized locale tags to rule sets behind a RWMutex, so
// lookups from converting goroutines never contend with each other.
type registry struct {
	mu    sync.RWMutex
	rules map[string]*RuleSet
}

var defaultRegistry = func() *registry {
	r := &registry{rules: make(map[string]*RuleSet, 8)}
	for _, rs := range []*RuleSet{English, Russian, Ukrainian, Vietnamese} {
		r.rules[registryKey(rs.Tag)] = rs.clone()
	}
	return r
}()

// Register validates a rule set and makes it available to Lookup and
// ConvertIn under its tag, replacing any earlier registration. The rule set
// is deep-copied so later changes by the caller cannot leak into running
// conversions.
func Register(rs *RuleSet) error {
	if rs == nil {
		return fmt.Errorf("num2text: cannot register a nil rule set")
	}
	if err := rs.Validate(); err != nil {
		return err
	}
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.rules[registryKey(rs.Tag)] = rs.clone()
	return nil
}

// Lookup resolves a locale to a registered rule set. Tags are matched after
// normalization, and when no exact entry exists the parent chain is walked,
// so "en-AU" and "ru_RU" resolve to "en" and "ru". A miss reports
// ErrUnsupportedLocale.
func Lookup(locale string) (*RuleSet, error) {
	norm := normalizeLocale(locale)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty locale", ErrUnsupportedLocale)
	}

	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	if rs, ok := defaultRegistry.rules[registryKey(norm)]; ok {
		return rs, nil
	}
	for _, parent := range parentChain(norm) {
		if rs, ok := defaultRegistry.rules[registryKey(parent)]; ok {
			return rs, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
}

// Locales returns the tags of every registered rule set, sorted.
func Locales() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	tags := make([]string, 0, len(defaultRegistry.rules))
	for _, rs := range defaultRegistry.rules {
		tags = append(tags, rs.Tag)
	}
	sort.Strings(tags)
	return tags
}

// normalizeLocale trims whitespace and folds underscores to hyphens, the
// usual POSIX-to-BCP-47 touch-up.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func registryKey(locale string) string {
	return strings.ToLower(locale)
}

// parentChain lists the fallback tags for a locale from closest to root,
// preferring the language library's view of the hierarchy and falling back
// to chopping subtags for strings it cannot parse.
func parentChain(locale string) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, ok := seen[value]; ok {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := chopSubtag(locale); current != ""; current = chopSubtag(current) {
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}

func chopSubtag(locale string) string {
	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}
