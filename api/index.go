package api

// Iterator function to iterate on each multiset entry in sort order,
// count is the number of occurrences of key. Entries are supplied until
// the iterator returns io.EOF, after which the closure is dead. Calling
// the iterator with fin set to true shall release its resources.
type Iterator[K any] func(fin bool) (key K, count int64, err error)
