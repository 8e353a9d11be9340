// Package gomset implement an ordered multiset and necessary tools
// and libraries.
//
// api:
//
// Interface specification to access gomset datastructures.
//
// dict:
//
// Reference multiset backed by golang map, sorted on demand. Meant
// for validation, useful only for development.
//
// lib:
//
// Convinience functions that can be used by other packages. Package
// shall not import packages other than golang's standard packages.
//
// mset:
//
// A version of Left Leaning Red Black tree for sorting {key,count}
// entries, where count tracks duplicate insertions of the same key.
// Sub-tree cardinality is maintained on every node, making rank and
// select lookups O(log n). Index resides entirely in memory.
package gomset
