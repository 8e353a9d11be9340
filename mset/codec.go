package mset

import "github.com/bnclabs/gomset/api"
import "github.com/ugorji/go/codec"

// snapshot streams open with a version field, bump this on layout
// changes.
const snapshotversion int64 = 1

// MarshalBinary encode the multiset into a binary form suitable for
// UnmarshalBinary. After a version field and the number of distinct
// keys and occurrences, entries stream out as {key, count} pairs in
// ascending key order. The key type shall be representable in
// msgpack.
func (mset *MSet[K]) MarshalBinary() (data []byte, err error) {
	var bh codec.MsgpackHandle

	enc := codec.NewEncoderBytes(&data, &bh)
	if err = enc.Encode(snapshotversion); err != nil {
		return nil, err
	}
	if err = enc.Encode(mset.n_count); err != nil {
		return nil, err
	}
	if err = enc.Encode(mset.n_total); err != nil {
		return nil, err
	}
	if err = marshalnodes(enc, mset.getroot()); err != nil {
		return nil, err
	}
	return data, nil
}

func marshalnodes[K any](enc *codec.Encoder, nd *node[K]) (err error) {
	if nd == nil {
		return nil
	}
	if err = marshalnodes(enc, nd.left); err != nil {
		return err
	}
	if err = enc.Encode(nd.key); err != nil {
		return err
	}
	if err = enc.Encode(nd.count); err != nil {
		return err
	}
	return marshalnodes(enc, nd.right)
}

// UnmarshalBinary decode a binary form generated by MarshalBinary and
// replace the multiset's entries with the decoded ones in a single
// stroke. Failures leave the multiset untouched, streams violating
// the snapshot layout fail with api.ErrorInvalidEntry.
func (mset *MSet[K]) UnmarshalBinary(data []byte) error {
	if mset.dead {
		panic("UnmarshalBinary(): already destroyed tree")
	}

	var bh codec.MsgpackHandle
	var version, distinct, total int64

	dec := codec.NewDecoderBytes(data, &bh)
	if err := dec.Decode(&version); err != nil {
		return err
	} else if version != snapshotversion {
		return api.ErrorInvalidEntry
	}
	if err := dec.Decode(&distinct); err != nil {
		return err
	}
	if err := dec.Decode(&total); err != nil {
		return err
	}
	if distinct < 0 || total < distinct {
		return api.ErrorInvalidEntry
	}

	// entries build into a detached tree, the live tree swaps over
	// only once the full stream has checked out.
	var root *node[K]
	var prevkey K

	seen, runningtotal := false, int64(0)
	for i := int64(0); i < distinct; i++ {
		var key K
		var count int64
		if err := dec.Decode(&key); err != nil {
			mset.freetree(root)
			return err
		}
		if err := dec.Decode(&count); err != nil {
			mset.freetree(root)
			return err
		}
		if count <= 0 || (seen && mset.cmp(prevkey, key) >= 0) {
			mset.freetree(root)
			return api.ErrorInvalidEntry
		}
		root, _ = mset.insert(root, 1 /*depth*/, key, count)
		root.setblack()
		runningtotal += count
		prevkey, seen = key, true
	}
	if runningtotal != total {
		mset.freetree(root)
		return api.ErrorInvalidEntry
	}

	mset.Clear()
	mset.setroot(root)
	mset.n_inserts += total
	mset.n_total, mset.n_count = total, distinct
	return nil
}
