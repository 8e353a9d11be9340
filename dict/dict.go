// Package dict implement an ordered multiset of keys based on golang
// map. Primarily meant as reference for validating more useful
// multiset algorithms.
package dict

import "cmp"
import "fmt"
import "slices"

// Dict is a reference data structure, for validation purpose.
type Dict[K cmp.Ordered] struct {
	id     string
	dict   map[K]int64
	keys   []K
	total  int64
	sorted bool
}

// NewDict create a new golang map for indexing keys and their
// occurrence counts.
func NewDict[K cmp.Ordered]() *Dict[K] {
	return &Dict[K]{
		id:   "dict",
		dict: make(map[K]int64),
		keys: make([]K, 0, 1024),
	}
}

// ID is constant for dictionaries.
func (d *Dict[K]) ID() string {
	return d.id
}

// Len return the number of occurrences held by the dictionary,
// duplicates included.
func (d *Dict[K]) Len() int64 {
	return d.total
}

// Distinct return the number of distinct keys held by the dictionary.
func (d *Dict[K]) Distinct() int64 {
	return int64(len(d.dict))
}

// IsEmpty return true if the dictionary holds no occurrence.
func (d *Dict[K]) IsEmpty() bool {
	return d.total == 0
}

// Has return whether key is present in the dictionary.
func (d *Dict[K]) Has(key K) bool {
	_, ok := d.dict[key]
	return ok
}

// Count return the number of occurrences of key, missing keys count
// zero.
func (d *Dict[K]) Count(key K) int64 {
	return d.dict[key]
}

// Min return the smallest key, ok is false when the dictionary is
// empty.
func (d *Dict[K]) Min() (key K, ok bool) {
	keys := d.sortedkeys()
	if len(keys) == 0 {
		return key, false
	}
	return keys[0], true
}

// Max return the largest key, ok is false when the dictionary is
// empty.
func (d *Dict[K]) Max() (key K, ok bool) {
	keys := d.sortedkeys()
	if len(keys) == 0 {
		return key, false
	}
	return keys[len(keys)-1], true
}

// Insert a single occurrence of key into the dictionary.
func (d *Dict[K]) Insert(key K) {
	d.Insertn(key, 1)
}

// Insertn insert n occurrences of key, n shall be positive.
func (d *Dict[K]) Insertn(key K, n int64) {
	if n <= 0 {
		panic(fmt.Errorf("Insertn(): count %v, call the programmer", n))
	}
	if _, ok := d.dict[key]; ok == false {
		d.sorted = false
	}
	d.dict[key] += n
	d.total += n
}

// Delete remove one occurrence of key, return false if key is
// missing in the dictionary.
func (d *Dict[K]) Delete(key K) bool {
	count, ok := d.dict[key]
	if ok == false {
		return false
	}
	if count == 1 {
		delete(d.dict, key)
		d.sorted = false
	} else {
		d.dict[key] = count - 1
	}
	d.total--
	return true
}

// Deleteall remove every occurrence of key, return false if key is
// missing in the dictionary.
func (d *Dict[K]) Deleteall(key K) bool {
	count, ok := d.dict[key]
	if ok == false {
		return false
	}
	delete(d.dict, key)
	d.sorted = false
	d.total -= count
	return true
}

// Delmin remove one occurrence of the smallest key and return it, ok
// is false when the dictionary is empty.
func (d *Dict[K]) Delmin() (key K, ok bool) {
	if key, ok = d.Min(); ok {
		d.Delete(key)
	}
	return key, ok
}

// Delmax remove one occurrence of the largest key and return it, ok
// is false when the dictionary is empty.
func (d *Dict[K]) Delmax() (key K, ok bool) {
	if key, ok = d.Max(); ok {
		d.Delete(key)
	}
	return key, ok
}

// Clear drop every entry from the dictionary.
func (d *Dict[K]) Clear() {
	d.dict = make(map[K]int64)
	d.keys, d.total, d.sorted = d.keys[:0], 0, false
}

// Destroy release the dictionary.
func (d *Dict[K]) Destroy() error {
	d.dict, d.keys = nil, nil
	return nil
}

// Range over dictionary entries between a low and high key, either of
// which can be nil for an unbounded end. incl can be "both", "low",
// "high" or "none" and picks the bounds that admit their own key.
// Entries are supplied to callb in sort order, or in reverse sort
// order when reverse is true, until callb returns false.
func (d *Dict[K]) Range(
	lk, hk *K, incl string, reverse bool, callb func(key K, count int64) bool) {

	keys := d.sortedkeys()
	if reverse {
		for i := len(keys) - 1; i >= 0; i-- {
			key := keys[i]
			if inlow(key, lk, incl) == false {
				break
			} else if inhigh(key, hk, incl) == false {
				continue
			}
			if callb(key, d.dict[key]) == false {
				break
			}
		}
		return
	}
	for _, key := range keys {
		if inhigh(key, hk, incl) == false {
			break
		} else if inlow(key, lk, incl) == false {
			continue
		}
		if callb(key, d.dict[key]) == false {
			break
		}
	}
}

// Rangecount return the number of occurrences held between a low and
// high key, bounds behave as in Range.
func (d *Dict[K]) Rangecount(lk, hk *K, incl string) (count int64) {
	d.Range(lk, hk, incl, false, func(_ K, n int64) bool {
		count += n
		return true
	})
	return count
}

// Rank return the number of occurrences sorting before key,
// occurrences of key excluded.
func (d *Dict[K]) Rank(key K) (rank int64) {
	for _, k := range d.sortedkeys() {
		if cmp.Compare(k, key) >= 0 {
			break
		}
		rank += d.dict[k]
	}
	return rank
}

// Select return the key at position rank in the sorted stream of
// occurrences, zero based. ok is false when rank falls outside the
// dictionary.
func (d *Dict[K]) Select(rank int64) (key K, ok bool) {
	if rank < 0 {
		return key, false
	}
	for _, k := range d.sortedkeys() {
		if count := d.dict[k]; rank < count {
			return k, true
		} else {
			rank -= count
		}
	}
	return key, false
}

func (d *Dict[K]) sortedkeys() []K {
	if d.sorted {
		return d.keys
	}
	d.keys = d.keys[:0]
	for key := range d.dict {
		d.keys = append(d.keys, key)
	}
	slices.Sort(d.keys)
	d.sorted = true
	return d.keys
}

func inlow[K cmp.Ordered](key K, lk *K, incl string) bool {
	if lk == nil {
		return true
	}
	c := cmp.Compare(key, *lk)
	if incl == "low" || incl == "both" {
		return c >= 0
	}
	return c > 0
}

func inhigh[K cmp.Ordered](key K, hk *K, incl string) bool {
	if hk == nil {
		return true
	}
	c := cmp.Compare(key, *hk)
	if incl == "high" || incl == "both" {
		return c <= 0
	}
	return c < 0
}
