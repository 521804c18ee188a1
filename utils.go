package pathkit

import (
	"net/url"
	"sort"
	"strings"
)

// unescape decodes %XX sequences only, a '+' is kept as is.
func unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

// escapeSegment escapes s so it can be placed inside a path segment.
func escapeSegment(s string) string {
	return url.PathEscape(s)
}

func getSortedKeys[M ~map[string]V, V any](m M) (ret []string) {
	for k := range m {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
