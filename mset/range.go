package mset

// Range over the multiset entries between a low and high key, either
// of which can be nil to mean unbounded on that side. Entries are
// supplied to callb one per distinct key along with the occurrence
// count, in sort order, reverse sort order when reverse is true.
// Returning false from callb stops the walk. incl can be "both",
// "low", "high" or "none" picking which of the bounds are inclusive.
// Bounds are honored as supplied, an empty effective range yields
// nothing.
func (mset *MSet[K]) Range(
	lk, hk *K, incl string, reverse bool, callb func(key K, count int64) bool) {

	root := mset.getroot()
	if reverse {
		switch incl {
		case "both":
			mset.rvrslehe(root, lk, hk, callb)
		case "high":
			mset.rvrsleht(root, lk, hk, callb)
		case "low":
			mset.rvrslthe(root, lk, hk, callb)
		default:
			mset.rvrsltht(root, lk, hk, callb)
		}
	} else {
		switch incl {
		case "both":
			mset.rangehele(root, lk, hk, callb)
		case "high":
			mset.rangehtle(root, lk, hk, callb)
		case "low":
			mset.rangehelt(root, lk, hk, callb)
		default:
			mset.rangehtlt(root, lk, hk, callb)
		}
	}
	mset.n_ranges++
}

// Rangecount return the number of occurrences that Range would
// supply for the same bounds, computed from subtree sizes in
// O(log n) without walking the range.
func (mset *MSet[K]) Rangecount(lk, hk *K, incl string) int64 {
	root, lo, hi := mset.getroot(), int64(0), mset.n_total
	if hk != nil {
		hi = mset.rankbelow(root, *hk)
		if incl == "both" || incl == "high" {
			hi += mset.Count(*hk)
		}
	}
	if lk != nil {
		lo = mset.rankbelow(root, *lk)
		if incl != "both" && incl != "low" {
			lo += mset.Count(*lk)
		}
	}
	mset.n_ranges++
	if hi < lo {
		return 0
	}
	return hi - lo
}

// Rank return the number of occurrences sorting strictly before key,
// every occurrence of a duplicated key counts. key itself need not
// be present in the multiset.
func (mset *MSet[K]) Rank(key K) int64 {
	return mset.rankbelow(mset.getroot(), key)
}

// Select return the k-th smallest occurrence, zero indexed, so that
// Select(Rank(key)) returns key whenever key is present. Duplicates
// occupy adjacent positions. ok is false when k falls outside
// [0, Len()).
func (mset *MSet[K]) Select(k int64) (key K, ok bool) {
	if k < 0 {
		return key, false
	}
	for nd := mset.getroot(); nd != nil; {
		if ls := treesize(nd.left); k < ls {
			nd = nd.left
		} else if k < ls+nd.count {
			return nd.key, true
		} else {
			k -= ls + nd.count
			nd = nd.right
		}
	}
	return key, false
}

// occurrences sorting strictly before key, accumulated from subtree
// sizes on every right turn.
func (mset *MSet[K]) rankbelow(nd *node[K], key K) (below int64) {
	for nd != nil {
		if c := mset.cmp(key, nd.key); c < 0 {
			nd = nd.left
		} else if c > 0 {
			below += treesize(nd.left) + nd.count
			nd = nd.right
		} else {
			below += treesize(nd.left)
			return below
		}
	}
	return below
}
