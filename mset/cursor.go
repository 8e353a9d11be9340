package mset

import "io"

import "github.com/bnclabs/gomset/api"

// Cursor object maintains an active pointer into the multiset for
// lazy, resumable iteration. Use Iterate on the MSet instance to
// open a new cursor and Close to give it back once done. Mutating
// the multiset while a cursor is active is not supported.
type Cursor[K any] struct {
	mset    *MSet[K]
	stack   []*node[K]
	lk      *K
	hk      *K
	incl    string
	occ     int64
	reverse bool
	ynext   bool
	closed  bool
}

// Iterate over multiset entries between a low and high key, bounds
// behave as in Range. The returned cursor starts out positioned on
// the first in-range occurrence.
func (mset *MSet[K]) Iterate(lk, hk *K, incl string, reverse bool) *Cursor[K] {
	cur := mset.getcursor().open(mset, lk, hk, incl, reverse)
	mset.n_ranges++
	mset.n_activeiter++
	return cur
}

// Scan return a full table iterator over the multiset, distinct keys
// supplied in sort order along with their counts, ending with
// io.EOF. Call the iterator with fin true to release it early, a
// fully drained iterator releases itself.
func (mset *MSet[K]) Scan() api.Iterator[K] {
	cur := mset.Iterate(nil, nil, "both", false)
	return func(fin bool) (key K, count int64, err error) {
		var zero K
		if cur == nil {
			return zero, 0, io.EOF
		} else if fin {
			cur.Close()
			cur = nil
			return zero, 0, io.EOF
		}
		key, count, err = cur.YNext(false /*fin*/)
		if err != nil {
			cur.Close()
			cur = nil
		}
		return
	}
}

// Key return the key under the cursor without moving it, ok is false
// once the cursor is exhausted.
func (cur *Cursor[K]) Key() (key K, ok bool) {
	if len(cur.stack) == 0 {
		return key, false
	}
	return cur.stack[len(cur.stack)-1].key, true
}

// Count return the occurrence count of the key under the cursor,
// zero once the cursor is exhausted.
func (cur *Cursor[K]) Count() int64 {
	if len(cur.stack) == 0 {
		return 0
	}
	return cur.stack[len(cur.stack)-1].count
}

// Next return the next occurrence in the iteration order, a key with
// count k is supplied k times over before moving on. Exhausted
// cursors return io.EOF and stay exhausted.
func (cur *Cursor[K]) Next() (key K, err error) {
	if cur.closed {
		panic("cannot iterate over a closed cursor")
	}
	if len(cur.stack) == 0 {
		return key, io.EOF
	}
	nd := cur.stack[len(cur.stack)-1]
	if cur.occ < nd.count {
		cur.occ++
		return nd.key, nil
	}
	cur.advance()
	if len(cur.stack) == 0 {
		return key, io.EOF
	}
	nd = cur.stack[len(cur.stack)-1]
	cur.occ = 1
	return nd.key, nil
}

// YNext implements api.Iterator, iterating one distinct key at a
// time along with its count. Mixing YNext and Next calls on the same
// cursor is not supported.
func (cur *Cursor[K]) YNext(fin bool) (key K, count int64, err error) {
	if cur.closed {
		panic("cannot iterate over a closed cursor")
	}
	if len(cur.stack) == 0 {
		return key, 0, io.EOF
	}
	if cur.ynext == false {
		cur.ynext = true
		nd := cur.stack[len(cur.stack)-1]
		return nd.key, nd.count, nil
	}
	cur.advance()
	if len(cur.stack) == 0 {
		return key, 0, io.EOF
	}
	nd := cur.stack[len(cur.stack)-1]
	return nd.key, nd.count, nil
}

// Close the cursor and give it back to the multiset instance for
// reuse.
func (cur *Cursor[K]) Close() {
	if cur.closed {
		panic("cannot close a closed cursor")
	}
	mset := cur.mset
	cur.closed = true
	mset.n_activeiter--
	mset.putcursor(cur)
}

func (cur *Cursor[K]) open(
	mset *MSet[K], lk, hk *K, incl string, reverse bool) *Cursor[K] {

	cur.mset, cur.incl, cur.reverse = mset, incl, reverse
	cur.occ, cur.ynext, cur.closed = 0, false, false
	cur.lk, cur.hk = nil, nil
	if lk != nil {
		lkey := *lk
		cur.lk = &lkey
	}
	if hk != nil {
		hkey := *hk
		cur.hk = &hkey
	}

	if reverse {
		cur.stack = cur.last(mset.getroot(), cur.stack[:0])
	} else {
		cur.stack = cur.first(mset.getroot(), cur.stack[:0])
	}
	// seeking honors the near bound, the far bound is checked here
	// and on every advance.
	if len(cur.stack) > 0 {
		nd := cur.stack[len(cur.stack)-1]
		if reverse && !cur.inlow(nd.key) {
			cur.stack = cur.stack[:0]
		} else if !reverse && !cur.inhigh(nd.key) {
			cur.stack = cur.stack[:0]
		}
	}
	return cur
}

// seek to the smallest key honoring the low bound, stacking the
// path for later resumption.
func (cur *Cursor[K]) first(root *node[K], stack []*node[K]) []*node[K] {
	for nd := root; nd != nil; {
		if cur.inlow(nd.key) {
			stack = append(stack, nd)
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return stack
}

// seek to the largest key honoring the high bound.
func (cur *Cursor[K]) last(root *node[K], stack []*node[K]) []*node[K] {
	for nd := root; nd != nil; {
		if cur.inhigh(nd.key) {
			stack = append(stack, nd)
			nd = nd.right
		} else {
			nd = nd.left
		}
	}
	return stack
}

func (cur *Cursor[K]) advance() {
	nd := cur.stack[len(cur.stack)-1]
	cur.stack = cur.stack[:len(cur.stack)-1]
	if cur.reverse {
		for x := nd.left; x != nil; x = x.right {
			cur.stack = append(cur.stack, x)
		}
		if n := len(cur.stack); n > 0 && !cur.inlow(cur.stack[n-1].key) {
			cur.stack = cur.stack[:0]
		}
	} else {
		for x := nd.right; x != nil; x = x.left {
			cur.stack = append(cur.stack, x)
		}
		if n := len(cur.stack); n > 0 && !cur.inhigh(cur.stack[n-1].key) {
			cur.stack = cur.stack[:0]
		}
	}
}

func (cur *Cursor[K]) inlow(key K) bool {
	if cur.lk == nil {
		return true
	}
	c := cur.mset.cmp(key, *cur.lk)
	if cur.incl == "both" || cur.incl == "low" {
		return c >= 0
	}
	return c > 0
}

func (cur *Cursor[K]) inhigh(key K) bool {
	if cur.hk == nil {
		return true
	}
	c := cur.mset.cmp(key, *cur.hk)
	if cur.incl == "both" || cur.incl == "high" {
		return c <= 0
	}
	return c < 0
}

func (mset *MSet[K]) getcursor() (cur *Cursor[K]) {
	select {
	case cur = <-mset.iterpool:
	default:
		cur = &Cursor[K]{stack: make([]*node[K], 0, 32)}
	}
	return cur
}

func (mset *MSet[K]) putcursor(cur *Cursor[K]) {
	cur.mset, cur.stack = nil, cur.stack[:0]
	cur.lk, cur.hk = nil, nil

	select {
	case mset.iterpool <- cur:
	default: // let cur be collected by GC
	}
}
