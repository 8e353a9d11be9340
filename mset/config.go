package mset

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// bounds for the "freelist.size" default, in number of nodes.
const minfreelist = int64(1024)
const maxfreelist = int64(1024 * 1024)

// nominal in-memory footprint of a node, used only to derive the
// freelist default from available RAM.
const nodefootprint = int64(64)

// Defaultsettings for mset instance.
//
// "allocator" (string, default: "flist")
//      Node allocator to use. "flist" recycles unlinked nodes
//      through a bounded free list, "gc" leaves unlinked nodes to
//      the garbage collector.
//
// "freelist.size" (int64)
//      Maximum number of unlinked nodes retained by the "flist"
//      allocator. Default is computed from free system memory,
//      clamped between 1024 and 1M nodes.
//
// "iterpool.size" (int64, default: 100)
//      Maximum number of cached cursors. Each Iterate call will
//      acquire an instance of cursor.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	flsize := (int64(free) / 100) / nodefootprint // 1% of free RAM
	if flsize < minfreelist {
		flsize = minfreelist
	} else if flsize > maxfreelist {
		flsize = maxfreelist
	}
	setts := s.Settings{
		"allocator":     "flist",
		"freelist.size": flsize,
		"iterpool.size": int64(100),
	}
	return setts
}

func (mset *MSet[K]) readsettings(setts s.Settings) *MSet[K] {
	mset.allocator = setts.String("allocator")
	mset.flistsize = setts.Int64("freelist.size")
	mset.iterpoolsize = setts.Int64("iterpool.size")

	switch mset.allocator {
	case "flist":
	case "gc":
		mset.flistsize = 0
	default:
		panic(fmt.Errorf("invalid allocator %q", mset.allocator))
	}
	if mset.flistsize < 0 || mset.iterpoolsize < 0 {
		fmsg := "invalid settings freelist.size:%v iterpool.size:%v"
		panic(fmt.Errorf(fmsg, mset.flistsize, mset.iterpoolsize))
	}
	return mset
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
