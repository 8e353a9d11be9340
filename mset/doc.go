// Package mset implement an ordered multiset on top of a
// self-balancing binary-tree, called, LLRB (Left Leaning Red Black).
//
//   * Keys are ordered by cmp.Compare or by an application supplied
//     comparator.
//   * Duplicate insertions of a key are held as an occurrence count
//     on a single tree node, never as duplicate nodes.
//   * Every node tracks the number of occurrences under its subtree,
//     making rank and select lookups O(log n).
//   * Reads and writes are expected to be single threaded, mutating
//     the multiset while a cursor is active is not supported.
//
// Index resides entirely in memory.
package mset
