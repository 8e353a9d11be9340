// mset methods in this file are shared between forward and reverse
// scans, and between callback ranges and cursors.

package mset

import "fmt"

import "github.com/bnclabs/gomset/lib"

// low <= (keys) <= high
func (mset *MSet[K]) rangehele(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if hk != nil && mset.cmp(nd.key, *hk) > 0 {
		return mset.rangehele(nd.left, lk, hk, callb)
	}
	if lk != nil && mset.cmp(nd.key, *lk) < 0 {
		return mset.rangehele(nd.right, lk, hk, callb)
	}
	if !mset.rangehele(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rangehele(nd.right, lk, hk, callb)
}

// low <= (keys) < high
func (mset *MSet[K]) rangehelt(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if hk != nil && mset.cmp(nd.key, *hk) >= 0 {
		return mset.rangehelt(nd.left, lk, hk, callb)
	}
	if lk != nil && mset.cmp(nd.key, *lk) < 0 {
		return mset.rangehelt(nd.right, lk, hk, callb)
	}
	if !mset.rangehelt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rangehelt(nd.right, lk, hk, callb)
}

// low < (keys) <= high
func (mset *MSet[K]) rangehtle(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if hk != nil && mset.cmp(nd.key, *hk) > 0 {
		return mset.rangehtle(nd.left, lk, hk, callb)
	}
	if lk != nil && mset.cmp(nd.key, *lk) <= 0 {
		return mset.rangehtle(nd.right, lk, hk, callb)
	}
	if !mset.rangehtle(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rangehtle(nd.right, lk, hk, callb)
}

// low < (keys) < high
func (mset *MSet[K]) rangehtlt(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if hk != nil && mset.cmp(nd.key, *hk) >= 0 {
		return mset.rangehtlt(nd.left, lk, hk, callb)
	}
	if lk != nil && mset.cmp(nd.key, *lk) <= 0 {
		return mset.rangehtlt(nd.right, lk, hk, callb)
	}
	if !mset.rangehtlt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rangehtlt(nd.right, lk, hk, callb)
}

// high >= (keys) >= low
func (mset *MSet[K]) rvrslehe(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if lk != nil && mset.cmp(nd.key, *lk) < 0 {
		return mset.rvrslehe(nd.right, lk, hk, callb)
	}
	if hk != nil && mset.cmp(nd.key, *hk) > 0 {
		return mset.rvrslehe(nd.left, lk, hk, callb)
	}
	if !mset.rvrslehe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rvrslehe(nd.left, lk, hk, callb)
}

// high >= (keys) > low
func (mset *MSet[K]) rvrsleht(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if lk != nil && mset.cmp(nd.key, *lk) <= 0 {
		return mset.rvrsleht(nd.right, lk, hk, callb)
	}
	if hk != nil && mset.cmp(nd.key, *hk) > 0 {
		return mset.rvrsleht(nd.left, lk, hk, callb)
	}
	if !mset.rvrsleht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rvrsleht(nd.left, lk, hk, callb)
}

// high > (keys) >= low
func (mset *MSet[K]) rvrslthe(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if lk != nil && mset.cmp(nd.key, *lk) < 0 {
		return mset.rvrslthe(nd.right, lk, hk, callb)
	}
	if hk != nil && mset.cmp(nd.key, *hk) >= 0 {
		return mset.rvrslthe(nd.left, lk, hk, callb)
	}
	if !mset.rvrslthe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rvrslthe(nd.left, lk, hk, callb)
}

// high > (keys) > low
func (mset *MSet[K]) rvrsltht(
	nd *node[K], lk, hk *K, callb func(K, int64) bool) bool {

	if nd == nil {
		return true
	}
	if lk != nil && mset.cmp(nd.key, *lk) <= 0 {
		return mset.rvrsltht(nd.right, lk, hk, callb)
	}
	if hk != nil && mset.cmp(nd.key, *hk) >= 0 {
		return mset.rvrsltht(nd.left, lk, hk, callb)
	}
	if !mset.rvrsltht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.key, nd.count) {
		return false
	}
	return mset.rvrsltht(nd.left, lk, hk, callb)
}

func (mset *MSet[K]) heightstats(
	nd *node[K], depth int64, h *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	h.Add(depth)
	mset.heightstats(nd.left, depth+1, h)
	mset.heightstats(nd.right, depth+1, h)
}

func (mset *MSet[K]) countstats(nd *node[K], av *lib.AverageInt64) {
	if nd == nil {
		return
	}
	av.Add(nd.count)
	mset.countstats(nd.left, av)
	mset.countstats(nd.right, av)
}

func (mset *MSet[K]) countblacks(nd *node[K], count int) int {
	if nd != nil {
		if !isred(nd) {
			count++
		}
		x := mset.countblacks(nd.left, count)
		y := mset.countblacks(nd.right, count)
		if x != y {
			fmsg := "countblacks(): no. of blacks {left,right} : {%v,%v}"
			panic(fmt.Errorf(fmsg, x, y))
		}
		return x
	}
	return count
}
