package mset

import "reflect"
import "testing"
import "math/rand"

import "github.com/bradfitz/iter"

import "github.com/bnclabs/gomset/dict"

func TestMSetBasicRange(t *testing.T) {
	mset := NewMSet[int64]("basicrange", Defaultsettings())
	defer mset.Destroy()

	keys := []int64{10, 20, 30, 40, 50}
	for i, key := range keys {
		mset.Insertn(key, int64(i+1))
	}
	mset.Validate()

	testcases := [][]interface{}{
		[]interface{}{nil, nil, "none", keys[:]},
		[]interface{}{nil, nil, "low", keys[:]},
		[]interface{}{nil, nil, "high", keys[:]},
		[]interface{}{nil, nil, "both", keys[:]},
		[]interface{}{int64(10), nil, "none", keys[1:]},
		[]interface{}{int64(10), nil, "low", keys[0:]},
		[]interface{}{int64(10), nil, "high", keys[1:]},
		[]interface{}{int64(10), nil, "both", keys[0:]},
		[]interface{}{nil, int64(50), "none", keys[:4]},
		[]interface{}{nil, int64(50), "low", keys[:4]},
		[]interface{}{nil, int64(50), "high", keys[:5]},
		[]interface{}{nil, int64(50), "both", keys[:5]},
		[]interface{}{int64(10), int64(50), "none", keys[1:4]},
		[]interface{}{int64(10), int64(50), "low", keys[0:4]},
		[]interface{}{int64(10), int64(50), "high", keys[1:5]},
		[]interface{}{int64(10), int64(50), "both", keys[0:5]},
		[]interface{}{int64(10), int64(10), "none", keys[:0]},
		[]interface{}{int64(10), int64(10), "low", keys[:0]},
		[]interface{}{int64(10), int64(10), "high", keys[:0]},
		[]interface{}{int64(10), int64(10), "both", keys[:1]},
	}

	var lowkey, highkey *int64
	for casenum, tcase := range testcases {
		lowkey, highkey = nil, nil
		incl := tcase[2].(string)
		if tcase[0] != nil {
			lk := tcase[0].(int64)
			lowkey = &lk
		}
		if tcase[1] != nil {
			hk := tcase[1].(int64)
			highkey = &hk
		}

		// forward range, return true
		outs := make([]int64, 0)
		mset.Range(lowkey, highkey, incl, false, func(key int64, _ int64) bool {
			outs = append(outs, key)
			return true
		})
		if reflect.DeepEqual(outs, tcase[3]) == false {
			fmsg := "failed for %v (%v,%v,%v)"
			t.Fatalf(fmsg, casenum, tcase[0], tcase[1], incl)
		}
		// forward range, return false
		outs = make([]int64, 0)
		mset.Range(lowkey, highkey, incl, false, func(key int64, _ int64) bool {
			outs = append(outs, key)
			return false
		})
		ref := tcase[3].([]int64)
		if len(ref) > 0 {
			ref = ref[:1]
		}
		if reflect.DeepEqual(outs, ref) == false {
			fmsg := "failed for %v (%v,%v,%v)"
			t.Errorf(fmsg, casenum, tcase[0], tcase[1], incl)
		}

		// backward range, return true
		outs = make([]int64, 0)
		mset.Range(lowkey, highkey, incl, true, func(key int64, _ int64) bool {
			outs = append(outs, key)
			return true
		})
		if reflect.DeepEqual(outs, reverseint64s(tcase[3].([]int64))) == false {
			fmsg := "failed for %v (%v,%v,%v)"
			t.Errorf(fmsg, casenum, tcase[0], tcase[1], incl)
		}
		// backward range, return false
		outs = make([]int64, 0)
		mset.Range(lowkey, highkey, incl, true, func(key int64, _ int64) bool {
			outs = append(outs, key)
			return false
		})
		ref = tcase[3].([]int64)
		if len(ref) > 0 {
			ref = ref[len(ref)-1:]
		}
		if reflect.DeepEqual(outs, ref) == false {
			fmsg := "failed for %v (%v,%v,%v)"
			t.Errorf(fmsg, casenum, tcase[0], tcase[1], incl)
		}
	}
}

func TestMSetRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(101))

	mset := NewMSet[int64]("range", Defaultsettings())
	defer mset.Destroy()
	d := dict.NewDict[int64]()
	defer d.Destroy()

	for range iter.N(1000) {
		key := int64(rnd.Intn(500))
		n := int64(rnd.Intn(3) + 1)
		mset.Insertn(key, n)
		d.Insertn(key, n)
	}
	mset.Validate()

	incls := []string{"both", "low", "high", "none"}
	for casenum := range iter.N(1000) {
		var lowkey, highkey *int64
		if rnd.Intn(10) > 0 {
			lk := int64(rnd.Intn(600) - 50)
			lowkey = &lk
		}
		if rnd.Intn(10) > 0 {
			hk := int64(rnd.Intn(600) - 50)
			highkey = &hk
		}
		incl := incls[rnd.Intn(len(incls))]
		reverse := rnd.Intn(2) == 1

		outs := make([][2]int64, 0)
		mset.Range(lowkey, highkey, incl, reverse, func(key, count int64) bool {
			outs = append(outs, [2]int64{key, count})
			return true
		})
		refs := make([][2]int64, 0)
		d.Range(lowkey, highkey, incl, reverse, func(key, count int64) bool {
			refs = append(refs, [2]int64{key, count})
			return true
		})
		if reflect.DeepEqual(outs, refs) == false {
			fmsg := "failed for %v (%v,%v) expected %v, got %v"
			t.Fatalf(fmsg, casenum, incl, reverse, refs, outs)
		}

		x := mset.Rangecount(lowkey, highkey, incl)
		y := d.Rangecount(lowkey, highkey, incl)
		if x != y {
			fmsg := "failed for %v (%v) expected %v, got %v"
			t.Fatalf(fmsg, casenum, incl, y, x)
		}

		// cursors over the same bounds supply each occurrence
		keys := []int64{}
		cur := mset.Iterate(lowkey, highkey, incl, reverse)
		key, err := cur.Next()
		for err == nil {
			keys = append(keys, key)
			key, err = cur.Next()
		}
		cur.Close()
		refkeys := []int64{}
		for _, entry := range refs {
			for i := int64(0); i < entry[1]; i++ {
				refkeys = append(refkeys, entry[0])
			}
		}
		if reflect.DeepEqual(keys, refkeys) == false {
			fmsg := "failed for %v (%v,%v) expected %v, got %v"
			t.Fatalf(fmsg, casenum, incl, reverse, refkeys, keys)
		} else if int64(len(keys)) != x {
			fmsg := "failed for %v, expected %v, got %v"
			t.Fatalf(fmsg, casenum, x, len(keys))
		}
	}

	// the walk stops when the callback returns false
	count := 0
	mset.Range(nil, nil, "both", false, func(key, n int64) bool {
		count++
		return count < 10
	})
	if count != 10 {
		t.Errorf("expected %v, got %v", 10, count)
	}
}

func TestMSetRangecount(t *testing.T) {
	mset := NewMSet[int64]("rangecount", Defaultsettings())
	defer mset.Destroy()

	keys := []int64{10, 20, 30, 40, 50}
	for i, key := range keys {
		mset.Insertn(key, int64(i+1))
	}

	lk, hk := int64(20), int64(40)
	testcases := [][]interface{}{
		[]interface{}{nil, nil, "both", int64(15)},
		[]interface{}{&lk, nil, "low", int64(14)},
		[]interface{}{&lk, nil, "none", int64(12)},
		[]interface{}{nil, &hk, "high", int64(10)},
		[]interface{}{nil, &hk, "none", int64(6)},
		[]interface{}{&lk, &hk, "both", int64(9)},
		[]interface{}{&lk, &hk, "low", int64(5)},
		[]interface{}{&lk, &hk, "high", int64(7)},
		[]interface{}{&lk, &hk, "none", int64(3)},
		[]interface{}{&lk, &lk, "both", int64(2)},
		[]interface{}{&lk, &lk, "low", int64(0)},
	}
	for casenum, tcase := range testcases {
		var lowkey, highkey *int64
		if tcase[0] != nil {
			lowkey = tcase[0].(*int64)
		}
		if tcase[1] != nil {
			highkey = tcase[1].(*int64)
		}
		incl := tcase[2].(string)
		if x := mset.Rangecount(lowkey, highkey, incl); x != tcase[3].(int64) {
			fmsg := "failed for %v, expected %v, got %v"
			t.Errorf(fmsg, casenum, tcase[3], x)
		}
	}

	// an inverted range counts zero
	lk, hk = 40, 20
	if x := mset.Rangecount(&lk, &hk, "both"); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMSetRankSelect(t *testing.T) {
	mset := NewMSet[int64]("rankselect", Defaultsettings())
	defer mset.Destroy()

	keys := []int64{10, 20, 30, 40, 50}
	for i, key := range keys {
		mset.Insertn(key, int64(i+1))
	}
	// rank of present keys
	ranks := []int64{0, 1, 3, 6, 10}
	for i, key := range keys {
		if x := mset.Rank(key); x != ranks[i] {
			t.Errorf("Rank(%v) expected %v, got %v", key, ranks[i], x)
		}
	}
	// rank of missing keys
	if x := mset.Rank(5); x != 0 {
		t.Errorf("Rank() expected %v, got %v", 0, x)
	} else if x := mset.Rank(15); x != 1 {
		t.Errorf("Rank() expected %v, got %v", 1, x)
	} else if x := mset.Rank(35); x != 6 {
		t.Errorf("Rank() expected %v, got %v", 6, x)
	} else if x := mset.Rank(60); x != 15 {
		t.Errorf("Rank() expected %v, got %v", 15, x)
	}
	// select is the inverse of rank over every occurrence
	for rank := int64(0); rank < mset.Len(); rank++ {
		key, ok := mset.Select(rank)
		if ok == false {
			t.Fatalf("Select(%v) expected a key", rank)
		}
		if lo := mset.Rank(key); rank < lo || rank >= (lo+mset.Count(key)) {
			t.Errorf("Select(%v) got %v, rank %v", rank, key, lo)
		}
	}
	if _, ok := mset.Select(-1); ok == true {
		t.Errorf("expected false")
	} else if _, ok := mset.Select(mset.Len()); ok == true {
		t.Errorf("expected false")
	}

	// rank and select against the reference on random loads
	rnd := rand.New(rand.NewSource(7))
	newm := NewMSet[int64]("rankref", Defaultsettings())
	defer newm.Destroy()
	d := dict.NewDict[int64]()
	defer d.Destroy()

	for range iter.N(500) {
		key := int64(rnd.Intn(100))
		newm.Insert(key)
		d.Insert(key)
	}
	for key := int64(-5); key <= 105; key++ {
		if x, y := newm.Rank(key), d.Rank(key); x != y {
			t.Fatalf("Rank(%v) expected %v, got %v", key, y, x)
		}
	}
	for rank := int64(-2); rank < newm.Len()+2; rank++ {
		key1, ok1 := newm.Select(rank)
		key2, ok2 := d.Select(rank)
		if ok1 != ok2 || key1 != key2 {
			t.Fatalf("Select(%v) expected {%v,%v}, got {%v,%v}",
				rank, key2, ok2, key1, ok1)
		}
	}
}
