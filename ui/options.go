package ui

import "strconv"

// Options carries host-supplied UI settings as free-form string pairs.
// Backends read the keys they understand and ignore the rest.
type Options map[string]string

// Bool returns def when the key is absent; a present value is true only
// for "yes" or "true".
func (o Options) Bool(key string, def bool) bool {
	v, ok := o[key]
	if !ok {
		return def
	}
	return v == "yes" || v == "true"
}

// Int returns the parsed value, or def when absent or malformed
func (o Options) Int(key string, def int) int {
	v, ok := o[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// String returns the value, or def when absent
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}
