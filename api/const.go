package api

import "errors"

// ErrorActiveIterators operation cannot succeed because there are active
// iterators on the multiset instance.
var ErrorActiveIterators = errors.New("activeIterators")

// ErrorInvalidEntry operation cannot succeed because iterated or decoded
// entry carries a non-positive count or breaks the sort order.
var ErrorInvalidEntry = errors.New("invalidEntry")
