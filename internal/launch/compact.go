package launch

import "strings"

// VM options sharing one of these prefixes are the same option; the last
// occurrence wins. A value exactly equal to a prefix is deliberately not
// keyed by it, so a bare flag cannot collapse a keyed option.
var optionPrefixes = []string{
	"-Xms",
	"-Xmx",
	"-Xss",
	"-Xloggc:",
	"-Xshare:",
	"-Xbootclasspath:",
	"-splash:",
}

// optionKey returns the equivalence key under which two VM options count
// as the same option.
func optionKey(val string) string {
	if i := strings.IndexByte(val, '='); i >= 0 {
		return val[:i+1]
	}
	for _, p := range optionPrefixes {
		if len(val) > len(p) && strings.HasPrefix(val, p) {
			return p
		}
	}
	return val
}

// CompactOptions deduplicates a VM option list by equivalence key. For
// each key the last occurrence in input order survives; relative order
// among survivors is preserved.
func CompactOptions(values []string) []string {
	// exact marks a key that is the whole value rather than a prefix, so a
	// bare "-Xmx" and the prefix key of "-Xmx512m" stay distinct.
	type seenKey struct {
		key   string
		exact bool
	}
	seen := make(map[seenKey]struct{}, len(values))
	kept := make([]string, 0, len(values))

	for i := len(values) - 1; i >= 0; i-- {
		key := optionKey(values[i])
		k := seenKey{key: key, exact: key == values[i] && !strings.Contains(key, "=")}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, values[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}
