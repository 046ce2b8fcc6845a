package catalog

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// index maps keys to ordered value sets and remembers key insertion order.
// holders is the reverse view: for each value, the keys whose set contains it.
type index struct {
	entries *orderedmap.OrderedMap[string, *OrderedSet[string]]
	holders map[string]*OrderedSet[string]
}

func newIndex() *index {
	return &index{
		entries: orderedmap.New[string, *OrderedSet[string]](),
		holders: make(map[string]*OrderedSet[string]),
	}
}

func (ix *index) get(key string) (*OrderedSet[string], bool) {
	return ix.entries.Get(key)
}

// keys returns the keys in insertion order.
func (ix *index) keys() []string {
	out := make([]string, 0, ix.entries.Len())
	for pair := ix.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// put stores set under key. An existing key keeps its position.
func (ix *index) put(key string, set *OrderedSet[string]) {
	if old, ok := ix.entries.Get(key); ok {
		for _, value := range old.Values() {
			ix.dropHolder(value, key)
		}
	}
	ix.entries.Set(key, set)
	for _, value := range set.Values() {
		ix.addHolder(value, key)
	}
}

// link adds value to key's set, creating the entry on first use.
func (ix *index) link(key, value string) {
	set, ok := ix.entries.Get(key)
	if !ok {
		set = NewOrderedSet[string]()
		ix.entries.Set(key, set)
	}
	if set.Add(value) {
		ix.addHolder(value, key)
	}
}

// unlink removes value from key's set and drops the entry once it is empty.
func (ix *index) unlink(key, value string) {
	set, ok := ix.entries.Get(key)
	if !ok {
		return
	}
	if set.Remove(value) {
		ix.dropHolder(value, key)
	}
	if set.Len() == 0 {
		ix.entries.Delete(key)
	}
}

// unlinkEverywhere removes value from every set holding it.
func (ix *index) unlinkEverywhere(value string) {
	holders, ok := ix.holders[value]
	if !ok {
		return
	}
	for _, key := range holders.Values() {
		ix.unlink(key, value)
	}
}

func (ix *index) delete(key string) {
	set, ok := ix.entries.Delete(key)
	if !ok {
		return
	}
	for _, value := range set.Values() {
		ix.dropHolder(value, key)
	}
}

func (ix *index) len() int {
	return ix.entries.Len()
}

func (ix *index) addHolder(value, key string) {
	holders, ok := ix.holders[value]
	if !ok {
		holders = NewOrderedSet[string]()
		ix.holders[value] = holders
	}
	holders.Add(key)
}

func (ix *index) dropHolder(value, key string) {
	holders, ok := ix.holders[value]
	if !ok {
		return
	}
	holders.Remove(key)
	if holders.Len() == 0 {
		delete(ix.holders, value)
	}
}
