package mset

import "fmt"
import "math"
import "errors"

import "github.com/bnclabs/gomset/lib"

// height of the tree cannot exceed a certain limit. For example if the
// tree holds 1-million keys, a fully balanced tree shall have a height
// of 20 levels. maxheight provide some breathing space on top of the
// ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate data structure. Walks the entire tree to confirm the
// red-black rules, the sort order, the per-subtree occurrence
// accounting and the statistics counters. Panics when a check fails.
func (mset *MSet[K]) Validate() {
	root := mset.getroot()

	h := lib.NewhistogramInt64(1, 256, 1)
	_, distinct, total := mset.validatetree(
		root, isred(root), 0 /*blacks*/, 1 /*depth*/, h)
	if distinct != mset.n_count {
		fmsg := "validate(): n_count:%v != actual:%v"
		panic(fmt.Errorf(fmsg, mset.n_count, distinct))
	} else if total != mset.n_total {
		fmsg := "validate(): n_total:%v != actual:%v"
		panic(fmt.Errorf(fmsg, mset.n_total, total))
	}
	// `h_height`.max should not exceed certain limit
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(mset.n_count) {
			fmsg := "validate(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), mset.n_count))
		}
	}
	mset.validatestats()
}

/*
following expectations on the tree should be met.
* if a node is red, the node it hangs from should be black.
* at each level, number of black-links on the left subtree should be
  equal to number of black-links on the right subtree.
* the tree should be in sort order.
* every node should carry a positive occurrence count, and its subtree
  size should tally with its count and its children.
* return number of blacks, number of distinct keys and number of
  occurrences under nd.
*/
func (mset *MSet[K]) validatetree(
	nd *node[K], fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, distinct, total int64) {

	if nd != nil {
		h.Add(depth)
		if fromred && isred(nd) {
			panic(redafterred)
		}
		if !isred(nd) {
			blacks++
		}

		lblacks, ldistinct, ltotal := mset.validatetree(
			nd.left, isred(nd), blacks, depth+1, h)
		rblacks, rdistinct, rtotal := mset.validatetree(
			nd.right, isred(nd), blacks, depth+1, h)

		if lblacks != rblacks {
			panic(unbalancedblacks(lblacks, rblacks))
		}

		key := nd.key
		if nd.left != nil && mset.cmp(nd.left.key, key) >= 0 {
			fmsg := "validate(): sort order, left node %v is >= node %v"
			panic(fmt.Errorf(fmsg, nd.left.key, key))
		}
		if nd.right != nil && mset.cmp(nd.right.key, key) <= 0 {
			fmsg := "validate(): sort order, right node %v is <= node %v"
			panic(fmt.Errorf(fmsg, nd.right.key, key))
		}
		if nd.count < 1 {
			fmsg := "validate(): node %v count %v is not positive"
			panic(fmt.Errorf(fmsg, key, nd.count))
		}
		size := nd.count + treesize(nd.left) + treesize(nd.right)
		if size != nd.size {
			fmsg := "validate(): node %v size %v, expected %v"
			panic(fmt.Errorf(fmsg, key, nd.size, size))
		}

		distinct = ldistinct + rdistinct + 1
		total = ltotal + rtotal + nd.count
		return lblacks, distinct, total
	}
	return blacks, 0, 0
}

func (mset *MSet[K]) validatestats() {
	// n_total should match (n_inserts - n_deletes)
	n_total := mset.n_total
	n_inserts, n_deletes := mset.n_inserts, mset.n_deletes
	if n_total != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_total:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, n_total, n_inserts, n_deletes))
	}
	// n_count should match (n_nodes - n_frees)
	n_count := mset.n_count
	n_nodes, n_frees := mset.n_nodes, mset.n_frees
	if n_count != (n_nodes - n_frees) {
		fmsg := "validatestats(): n_count:%v != (n_nodes:%v - n_frees:%v)"
		panic(fmt.Errorf(fmsg, n_count, n_nodes, n_frees))
	}
	// the root size should tally with the counters
	if size := treesize(mset.getroot()); size != n_total {
		fmsg := "validatestats(): treesize:%v != n_total:%v"
		panic(fmt.Errorf(fmsg, size, n_total))
	}

	a_count := &lib.AverageInt64{}
	mset.countstats(mset.getroot(), a_count)
	if a_count.Samples() != n_count {
		fmsg := "validatestats(): a_count.samples:%v != n_count:%v"
		panic(fmt.Errorf(fmsg, a_count.Samples(), n_count))
	} else if a_count.Sum() != n_total {
		fmsg := "validatestats(): a_count.sum:%v != n_total:%v"
		panic(fmt.Errorf(fmsg, a_count.Sum(), n_total))
	}
}
