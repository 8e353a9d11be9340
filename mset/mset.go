package mset

import "io"
import "cmp"
import "fmt"
import "strings"

import "github.com/bnclabs/gomset/api"
import "github.com/bnclabs/gomset/lib"
import s "github.com/bnclabs/gosettings"

// MSet manage a single instance of in-memory ordered multiset using
// left-leaning-red-black tree. Duplicate insertions of a key are held
// as an occurrence count on a single node, and every node maintains
// the number of occurrences under its subtree, making rank and select
// lookups O(log n). MSet instances are not safe for concurrent use.
type MSet[K any] struct {
	msetstats

	name     string
	root     *node[K]
	cmp      func(a, b K) int
	dead     bool
	freelist []*node[K]
	iterpool chan *Cursor[K]

	h_upsertdepth *lib.HistogramInt64

	// settings
	allocator    string
	flistsize    int64
	iterpoolsize int64
	setts        s.Settings
	logprefix    string
}

// NewMSet create a new multiset instance over an ordered key type,
// keys compare through cmp.Compare.
func NewMSet[K cmp.Ordered](name string, setts s.Settings) *MSet[K] {
	return NewMSetCmp[K](name, cmp.Compare[K], setts)
}

// NewMSetCmp create a new multiset instance with an application
// supplied comparator. cmpfn shall return negative, zero or positive
// when a sorts before, same as, or after b, and shall be a total
// order over the key type.
func NewMSetCmp[K any](
	name string, cmpfn func(a, b K) int, setts s.Settings) *MSet[K] {

	if cmpfn == nil {
		panic("NewMSetCmp(): nil comparator, call the programmer")
	}
	mset := &MSet[K]{
		name:      name,
		cmp:       cmpfn,
		logprefix: fmt.Sprintf("MSET [%s]", name),
	}

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	mset.readsettings(setts)
	mset.setts = setts

	mset.iterpool = make(chan *Cursor[K], mset.iterpoolsize)
	if mset.allocator == "flist" {
		mset.freelist = make([]*node[K], 0, minfreelist)
	}

	// statistics
	mset.h_upsertdepth = lib.NewhistogramInt64(1, 256, 4)

	infof("%v started ...\n", mset.logprefix)
	return mset
}

// LoadMSet create a multiset instance and populate it with an initial
// set of entries from iter. Every entry shall carry a positive count
// and a key not already supplied by an earlier entry, else loading
// fails with api.ErrorInvalidEntry.
func LoadMSet[K cmp.Ordered](
	name string, setts s.Settings, iter api.Iterator[K]) (*MSet[K], error) {

	return LoadMSetCmp[K](name, cmp.Compare[K], setts, iter)
}

// LoadMSetCmp is LoadMSet with an application supplied comparator.
func LoadMSetCmp[K any](
	name string, cmpfn func(a, b K) int,
	setts s.Settings, iter api.Iterator[K]) (*MSet[K], error) {

	mset := NewMSetCmp[K](name, cmpfn, setts)
	if iter == nil {
		return mset, nil
	}
	key, count, err := iter(false /*fin*/)
	for err == nil {
		if count <= 0 || mset.Has(key) {
			iter(true /*fin*/)
			mset.Destroy()
			return nil, api.ErrorInvalidEntry
		}
		mset.Insertn(key, count)
		key, count, err = iter(false /*fin*/)
	}
	if err != io.EOF {
		mset.Destroy()
		return nil, err
	}
	return mset, nil
}

//---- local accessor methods.

func (mset *MSet[K]) getroot() *node[K] {
	return mset.root
}

func (mset *MSet[K]) setroot(root *node[K]) {
	mset.root = root
}

//---- maintenance api.

// ID is same as the name supplied while creating the multiset.
func (mset *MSet[K]) ID() string {
	return mset.name
}

// Len return the number of occurrences held by the multiset,
// duplicates included.
func (mset *MSet[K]) Len() int64 {
	return mset.n_total
}

// Distinct return the number of distinct keys held by the multiset.
func (mset *MSet[K]) Distinct() int64 {
	return mset.n_count
}

// IsEmpty return true if the multiset holds no occurrence.
func (mset *MSet[K]) IsEmpty() bool {
	return mset.n_total == 0
}

// Clone the multiset under a new name, a deep copy that shares
// nothing with the receiver.
func (mset *MSet[K]) Clone(name string) *MSet[K] {
	if mset.dead {
		panic("Clone(): already destroyed tree")
	}

	newm := NewMSetCmp[K](name, mset.cmp, mset.setts)
	newm.msetstats = mset.msetstats
	newm.n_clones, newm.n_activeiter = 0, 0
	newm.h_upsertdepth = mset.h_upsertdepth.Clone()
	newm.setroot(newm.clonetree(mset.getroot()))
	return newm
}

// Clear drop every entry from the multiset in a single stroke.
// Dropped nodes are left to the garbage collector, hence cursors
// opened before the clear can continue over the old entries.
func (mset *MSet[K]) Clear() {
	if mset.dead {
		panic("Clear(): already destroyed tree")
	}
	mset.n_deletes += mset.n_total
	mset.n_frees += mset.n_count
	mset.n_total, mset.n_count = 0, 0
	mset.setroot(nil)
}

// Destroy release the multiset instance and the entries held by it.
// Destroy with active cursors shall refuse with
// api.ErrorActiveIterators. Can be called only once.
func (mset *MSet[K]) Destroy() error {
	if mset.n_activeiter > 0 {
		infof("%v n_activeiter: %v\n", mset.logprefix, mset.n_activeiter)
		return api.ErrorActiveIterators
	}
	if mset.dead == false {
		mset.setroot(nil)
		mset.freelist, mset.setts = nil, nil
		mset.dead = true
		infof("%v destroyed\n", mset.logprefix)
		return nil
	}
	panic("Destroy(): already dead tree")
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (mset *MSet[K]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph mset {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	mset.getroot().dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

//---- read methods.

// Has return whether key is present in the multiset.
func (mset *MSet[K]) Has(key K) bool {
	return getkey(mset.cmp, mset.getroot(), key) != nil
}

// Count return the number of occurrences of key, missing keys count
// zero.
func (mset *MSet[K]) Count(key K) int64 {
	if nd := getkey(mset.cmp, mset.getroot(), key); nd != nil {
		return nd.count
	}
	return 0
}

// Min return the smallest key, ok is false when the multiset is
// empty.
func (mset *MSet[K]) Min() (key K, ok bool) {
	if nd := getmin(mset.getroot()); nd != nil {
		return nd.key, true
	}
	return key, false
}

// Max return the largest key, ok is false when the multiset is
// empty.
func (mset *MSet[K]) Max() (key K, ok bool) {
	if nd := getmax(mset.getroot()); nd != nil {
		return nd.key, true
	}
	return key, false
}

//---- write methods.

// Insert a single occurrence of key into the multiset. Inserting a
// key already present is the expected case and bumps its occurrence
// count.
func (mset *MSet[K]) Insert(key K) {
	mset.Insertn(key, 1)
}

// Insertn insert n occurrences of key in a single descent, n shall
// be positive.
func (mset *MSet[K]) Insertn(key K, n int64) {
	if n <= 0 {
		panic(fmt.Errorf("Insertn(): count %v, call the programmer", n))
	} else if mset.dead {
		panic("Insertn(): already destroyed tree")
	}

	root, created := mset.insert(mset.getroot(), 1 /*depth*/, key, n)
	root.setblack()
	mset.setroot(root)
	mset.upsertcounts(created, n)
}

// Delete remove one occurrence of key, return false if key is
// missing in the multiset. Removing one of many occurrences does not
// touch the tree structure, the final occurrence unlinks the node.
func (mset *MSet[K]) Delete(key K) bool {
	if mset.dead {
		panic("Delete(): already destroyed tree")
	}

	nd := getkey(mset.cmp, mset.getroot(), key)
	if nd == nil {
		return false
	}
	if nd.count > 1 {
		mset.decrement(mset.getroot(), key, 1)
		mset.delcounts(false /*structural*/, 1)
		return true
	}

	root, deleted := mset.delete(mset.getroot(), key)
	if root != nil {
		root.setblack()
	}
	mset.setroot(root)
	if deleted == nil {
		panic("Delete(): fatal logic, call the programmer")
	}
	mset.delcounts(true /*structural*/, 1)
	mset.freenode(deleted)
	return true
}

// Deleteall remove every occurrence of key in a single structural
// delete, return false if key is missing in the multiset.
func (mset *MSet[K]) Deleteall(key K) bool {
	if mset.dead {
		panic("Deleteall(): already destroyed tree")
	}

	root, deleted := mset.delete(mset.getroot(), key)
	if root != nil {
		root.setblack()
	}
	mset.setroot(root)
	if deleted == nil {
		return false
	}
	mset.delcounts(true /*structural*/, deleted.count)
	mset.freenode(deleted)
	return true
}

// Delmin remove one occurrence of the smallest key and return it, ok
// is false when the multiset is empty.
func (mset *MSet[K]) Delmin() (key K, ok bool) {
	if mset.dead {
		panic("Delmin(): already destroyed tree")
	}

	nd := getmin(mset.getroot())
	if nd == nil {
		return key, false
	}
	key = nd.key
	if nd.count > 1 {
		mset.decrementmin(mset.getroot(), 1)
		mset.delcounts(false /*structural*/, 1)
		return key, true
	}

	root, deleted := mset.deletemin(mset.getroot())
	if root != nil {
		root.setblack()
	}
	mset.setroot(root)
	mset.delcounts(true /*structural*/, 1)
	mset.freenode(deleted)
	return key, true
}

// Delmax remove one occurrence of the largest key and return it, ok
// is false when the multiset is empty.
func (mset *MSet[K]) Delmax() (key K, ok bool) {
	if mset.dead {
		panic("Delmax(): already destroyed tree")
	}

	nd := getmax(mset.getroot())
	if nd == nil {
		return key, false
	}
	key = nd.key
	if nd.count > 1 {
		mset.decrementmax(mset.getroot(), 1)
		mset.delcounts(false /*structural*/, 1)
		return key, true
	}

	root, deleted := mset.deletemax(mset.getroot())
	if root != nil {
		root.setblack()
	}
	mset.setroot(root)
	mset.delcounts(true /*structural*/, 1)
	mset.freenode(deleted)
	return key, true
}

// returns root, created
func (mset *MSet[K]) insert(
	nd *node[K], depth int64, key K, n int64) (*node[K], bool) {

	var created bool

	if nd == nil {
		newnd := mset.newnode(key, n)
		mset.h_upsertdepth.Add(depth)
		return newnd, true
	}

	nd = mset.walkdownrot23(nd)

	if c := mset.cmp(key, nd.key); c < 0 {
		nd.left, created = mset.insert(nd.left, depth+1, key, n)
	} else if c > 0 {
		nd.right, created = mset.insert(nd.right, depth+1, key, n)
	} else {
		nd.count += n
		mset.h_upsertdepth.Add(depth)
	}
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)

	nd = mset.walkuprot23(nd)
	return nd, created
}

// using 2-3 trees
func (mset *MSet[K]) deletemin(nd *node[K]) (newnd, deleted *node[K]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !isred(nd.left) && !isred(nd.left.left) {
		nd = mset.moveredleft(nd)
	}
	nd.left, deleted = mset.deletemin(nd.left)
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)
	return mset.fixup(nd), deleted
}

// using 2-3 trees
func (mset *MSet[K]) deletemax(nd *node[K]) (newnd, deleted *node[K]) {
	if nd == nil {
		return nil, nil
	}
	if isred(nd.left) {
		nd = mset.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !isred(nd.right) && !isred(nd.right.left) {
		nd = mset.moveredright(nd)
	}
	nd.right, deleted = mset.deletemax(nd.right)
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)
	return mset.fixup(nd), deleted
}

func (mset *MSet[K]) delete(nd *node[K], key K) (newnd, deleted *node[K]) {
	if nd == nil {
		return nil, nil
	}

	if mset.cmp(key, nd.key) < 0 {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !isred(nd.left) && !isred(nd.left.left) {
			nd = mset.moveredleft(nd)
		}
		nd.left, deleted = mset.delete(nd.left, key)

	} else {
		if isred(nd.left) {
			nd = mset.rotateright(nd)
		}
		// if key equals nd.key and no right children at nd
		if mset.cmp(key, nd.key) == 0 && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil && !isred(nd.right) && !isred(nd.right.left) {
			nd = mset.moveredright(nd)
		}
		// if key equals nd.key, and (from above) nd.right != nil
		if mset.cmp(key, nd.key) == 0 {
			var subdeleted *node[K]
			nd.right, subdeleted = mset.deletemin(nd.right)
			if subdeleted == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			newnd := mset.newnode(subdeleted.key, subdeleted.count)
			newnd.left, newnd.right = nd.left, nd.right
			newnd.black = nd.black
			newnd.size = newnd.count + treesize(newnd.left) + treesize(newnd.right)
			deleted, nd = nd, newnd
			mset.freenode(subdeleted)
		} else { // else, key is bigger than nd.key
			nd.right, deleted = mset.delete(nd.right, key)
		}
	}
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)
	return mset.fixup(nd), deleted
}

// drop one occurrence without touching the tree structure, the
// remaining count at key shall stay positive.
func (mset *MSet[K]) decrement(nd *node[K], key K, n int64) bool {
	if nd == nil {
		return false
	}
	var ok bool
	if c := mset.cmp(key, nd.key); c < 0 {
		ok = mset.decrement(nd.left, key, n)
	} else if c > 0 {
		ok = mset.decrement(nd.right, key, n)
	} else {
		if nd.count <= n {
			panic("decrement(): dropping full count, call the programmer")
		}
		nd.count -= n
		ok = true
	}
	if ok {
		nd.size -= n
	}
	return ok
}

func (mset *MSet[K]) decrementmin(nd *node[K], n int64) {
	for ; nd != nil; nd = nd.left {
		nd.size -= n
		if nd.left == nil {
			nd.count -= n
		}
	}
}

func (mset *MSet[K]) decrementmax(nd *node[K], n int64) {
	for ; nd != nil; nd = nd.right {
		nd.size -= n
		if nd.right == nil {
			nd.count -= n
		}
	}
}

//---- rotation routines for 2-3 algorithm

func (mset *MSet[K]) walkdownrot23(nd *node[K]) *node[K] {
	return nd
}

func (mset *MSet[K]) walkuprot23(nd *node[K]) *node[K] {
	if isred(nd.right) && !isred(nd.left) {
		nd = mset.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = mset.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		mset.flip(nd)
	}
	return nd
}

func (mset *MSet[K]) rotateleft(nd *node[K]) *node[K] {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.black = nd.black
	nd.black = false
	y.size = nd.size
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)
	return y
}

func (mset *MSet[K]) rotateright(nd *node[K]) *node[K] {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.black = nd.black
	nd.black = false
	x.size = nd.size
	nd.size = nd.count + treesize(nd.left) + treesize(nd.right)
	return x
}

// REQUIRE: Left and Right children must be present
func (mset *MSet[K]) flip(nd *node[K]) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
}

// REQUIRE: Left and Right children must be present
func (mset *MSet[K]) moveredleft(nd *node[K]) *node[K] {
	mset.flip(nd)
	if isred(nd.right.left) {
		nd.right = mset.rotateright(nd.right)
		nd = mset.rotateleft(nd)
		mset.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (mset *MSet[K]) moveredright(nd *node[K]) *node[K] {
	mset.flip(nd)
	if isred(nd.left.left) {
		nd = mset.rotateright(nd)
		mset.flip(nd)
	}
	return nd
}

func (mset *MSet[K]) fixup(nd *node[K]) *node[K] {
	if isred(nd.right) {
		nd = mset.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = mset.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		mset.flip(nd)
	}
	return nd
}

//---- local functions

func (mset *MSet[K]) newnode(key K, count int64) (nd *node[K]) {
	if n := len(mset.freelist); n > 0 {
		nd, mset.freelist = mset.freelist[n-1], mset.freelist[:n-1]
	} else {
		nd = &node[K]{}
	}
	nd.left, nd.right = nil, nil
	nd.key, nd.count, nd.size, nd.black = key, count, count, false
	mset.n_nodes++
	return nd
}

func (mset *MSet[K]) freenode(nd *node[K]) {
	if nd == nil {
		return
	}
	mset.n_frees++
	if int64(len(mset.freelist)) < mset.flistsize {
		var zerok K
		nd.left, nd.right, nd.key = nil, nil, zerok
		mset.freelist = append(mset.freelist, nd)
	}
}

func (mset *MSet[K]) freetree(nd *node[K]) {
	if nd == nil {
		return
	}
	mset.freetree(nd.left)
	mset.freetree(nd.right)
	mset.freenode(nd)
}

func (mset *MSet[K]) clonetree(nd *node[K]) *node[K] {
	if nd == nil {
		return nil
	}

	newnd := &node[K]{
		key: nd.key, count: nd.count, size: nd.size, black: nd.black,
	}
	mset.n_clones++
	newnd.left = mset.clonetree(nd.left)
	newnd.right = mset.clonetree(nd.right)
	return newnd
}

func (mset *MSet[K]) upsertcounts(created bool, n int64) {
	mset.n_inserts += n
	mset.n_total += n
	if created {
		mset.n_count++
	} else {
		mset.n_updates++
	}
}

func (mset *MSet[K]) delcounts(structural bool, n int64) {
	mset.n_deletes += n
	mset.n_total -= n
	if structural {
		mset.n_count--
	}
}

func getkey[K any](cmpfn func(a, b K) int, nd *node[K], key K) *node[K] {
	for nd != nil {
		if c := cmpfn(key, nd.key); c < 0 {
			nd = nd.left
		} else if c > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

func getmin[K any](nd *node[K]) *node[K] {
	if nd == nil {
		return nil
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

func getmax[K any](nd *node[K]) *node[K] {
	if nd == nil {
		return nil
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}
