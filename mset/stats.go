package mset

import "unsafe"

import "github.com/bnclabs/gomset/lib"
import humanize "github.com/dustin/go-humanize"

// msetstats is in-memory book-keeping of data-structure statistics
// and operational statistics. Write counters account individual
// occurrences, not distinct keys.
type msetstats struct {
	n_count      int64 // number of distinct keys in the tree
	n_total      int64 // number of occurrences, duplicates included
	n_inserts    int64
	n_updates    int64
	n_deletes    int64
	n_nodes      int64
	n_frees      int64
	n_clones     int64
	n_ranges     int64
	n_activeiter int64
}

// Stats return a map of data-structure statistics and operational
// statistics.
func (mset *MSet[K]) Stats() map[string]interface{} {
	return mset.stats()
}

// Fullstats is Stats with additional statistics gathered by walking
// the entire tree, a costly operation.
func (mset *MSet[K]) Fullstats() map[string]interface{} {
	stats := mset.stats()

	h_height := lib.NewhistogramInt64(1, 256, 1)
	mset.heightstats(mset.getroot(), 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()

	a_count := &lib.AverageInt64{}
	mset.countstats(mset.getroot(), a_count)
	stats["a_count"] = a_count.Stats()

	stats["n_blacks"] = mset.countblacks(mset.getroot(), 0)
	return stats
}

func (mset *MSet[K]) stats() map[string]interface{} {
	m := make(map[string]interface{})
	m["n_count"] = mset.n_count
	m["n_total"] = mset.n_total
	m["n_inserts"] = mset.n_inserts
	m["n_updates"] = mset.n_updates
	m["n_deletes"] = mset.n_deletes
	m["n_nodes"] = mset.n_nodes
	m["n_frees"] = mset.n_frees
	m["n_clones"] = mset.n_clones
	m["n_ranges"] = mset.n_ranges
	m["n_activeiter"] = mset.n_activeiter
	m["n_flists"] = int64(len(mset.freelist))
	m["node.heap"] = mset.n_count * int64(unsafe.Sizeof(node[K]{}))
	m["h_upsertdepth"] = mset.h_upsertdepth.Fullstats()
	return m
}

// Log vital information.
func (mset *MSet[K]) Log() {
	lprefix, stats := mset.logprefix, mset.stats()

	heap := humanize.Bytes(uint64(stats["node.heap"].(int64)))
	a, b := stats["n_flists"], stats["n_activeiter"]
	infof("%v heap (%v): %10d(fls) %10d(act)\n", lprefix, heap, a, b)

	a, b = stats["n_count"], stats["n_total"]
	infof("%v count: %10d(dst) %10d(tot)\n", lprefix, a, b)

	a, b, c := stats["n_inserts"], stats["n_updates"], stats["n_deletes"]
	infof("%v write: %10d(ins) %10d(ups) %10d(del)\n", lprefix, a, b, c)

	a, b, c = stats["n_nodes"], stats["n_frees"], stats["n_clones"]
	infof("%v nodes: %10d(nds) %10d(fre) %10d(cln)\n", lprefix, a, b, c)

	infof("%v reads: %10d(rng)\n", lprefix, stats["n_ranges"])

	hstat := stats["h_upsertdepth"].(map[string]interface{})
	a, b, c = hstat["samples"], hstat["max"], hstat["mean"]
	infof("%v h_upsertdepth: %10d(cnt) %10d(max) %10d(mea)\n", lprefix, a, b, c)
}
