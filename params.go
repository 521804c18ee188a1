package pathkit

// Params is an ordered list of key value pairs.
// It is used both for query parameters, where the order of the pairs
// decides the order of the encoded query string, and for the parameters
// matched from a path by a Pattern, where the first token of the
// template is also the first slice value.
type Params struct {
	Keys   []string
	Values []string
}

// ParamsFromMap converts m to Params, the keys are sorted so that
// the result is deterministic.
func ParamsFromMap(m map[string]string) Params {
	ps := Params{}
	if len(m) == 0 {
		return ps
	}
	keys := getSortedKeys(m)
	ps.Keys = keys
	ps.Values = make([]string, len(keys))
	for i, k := range keys {
		ps.Values[i] = m[k]
	}
	return ps
}

// Len returns the number of pairs in Params.
func (ps *Params) Len() int {
	return len(ps.Keys)
}

// Get returns the value of the param which matches name.
// If no matching param is found, an empty string is returned.
// When a key is present more than once, the last value is returned.
func (ps *Params) Get(name string) string {
	v, _ := ps.Lookup(name)
	return v
}

// Lookup is like Get, but also reports whether the key is present.
func (ps *Params) Lookup(name string) (string, bool) {
	for i := len(ps.Keys) - 1; i >= 0; i-- {
		if ps.Keys[i] == name {
			return ps.Values[i], true
		}
	}
	return "", false
}

// Append appends a new key value pair to Params.
func (ps *Params) Append(key, value string) {
	ps.Keys = append(ps.Keys, key)
	ps.Values = append(ps.Values, value)
}

// Set replaces the value of key in place, or appends the pair if
// key is not present yet.
func (ps *Params) Set(key, value string) {
	for i, k := range ps.Keys {
		if k == key {
			ps.Values[i] = value
			return
		}
	}
	ps.Append(key, value)
}

// Map returns the pairs as a map, later duplicates win.
func (ps *Params) Map() map[string]string {
	m := make(map[string]string, len(ps.Keys))
	for i, k := range ps.Keys {
		m[k] = ps.Values[i]
	}
	return m
}

// Property implements PropertyReader, so that matched params can be
// fed back into a template.
func (ps Params) Property(name string) (any, bool) {
	v, ok := ps.Lookup(name)
	if !ok {
		return nil, false
	}
	return v, true
}
