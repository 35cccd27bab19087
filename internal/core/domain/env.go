package domain

import "slices"

// Entry is a single key-value pair from an env file.
type Entry struct {
	Key   string
	Value string
}

// String renders the entry the way it appears in an env file.
func (e Entry) String() string {
	return e.Key + "=" + e.Value
}

// Env is an insertion-ordered mapping from key to value.
// Updating an existing key keeps its position; new keys are appended.
// The zero value is not usable, create one with NewEnv.
type Env struct {
	keys   []string
	values map[string]string
}

// NewEnv creates an empty Env.
func NewEnv() *Env {
	return &Env{
		values: make(map[string]string),
	}
}

// Set stores value under key.
func (e *Env) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value for key and whether it exists.
func (e *Env) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Has reports whether key exists.
func (e *Env) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Delete removes key. It returns false if the key was not present.
func (e *Env) Delete(key string) bool {
	if _, ok := e.values[key]; !ok {
		return false
	}
	delete(e.values, key)
	if i := slices.Index(e.keys, key); i >= 0 {
		e.keys = slices.Delete(e.keys, i, i+1)
	}
	return true
}

// Len returns the number of entries.
func (e *Env) Len() int {
	return len(e.keys)
}

// Keys returns the keys in order.
func (e *Env) Keys() []string {
	return slices.Clone(e.keys)
}

// Entries returns a snapshot of all entries in order.
func (e *Env) Entries() []Entry {
	entries := make([]Entry, 0, len(e.keys))
	for _, k := range e.keys {
		entries = append(entries, Entry{Key: k, Value: e.values[k]})
	}
	return entries
}

// Equal reports whether both envs hold the same entries in the same order.
func (e *Env) Equal(other *Env) bool {
	if other == nil {
		return false
	}
	return slices.Equal(e.Entries(), other.Entries())
}
