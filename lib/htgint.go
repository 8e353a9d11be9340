package lib

import "fmt"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram with fixed width buckets
// between a low and high watermark. Samples below the low watermark
// land in the "-" bucket, samples at or above the high watermark land
// in the "+" bucket.
type HistogramInt64 struct {
	AverageInt64
	buckets []int64
	from    int64
	till    int64
	width   int64
}

// NewhistogramInt64 return a new histogram between from and till,
// with buckets of size width. Watermarks are rounded down to the
// nearest multiple of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	switch {
	case sample < h.from:
		h.buckets[0]++
	case sample >= h.till:
		h.buckets[len(h.buckets)-1]++
	default:
		h.buckets[((sample-h.from)/h.width)+1]++
	}
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	newh.buckets = make([]int64, len(h.buckets))
	copy(newh.buckets, h.buckets)
	return &newh
}

// Stats return non-empty buckets as a map, keyed by the bucket's
// lower bound, with "-" and "+" for outliers.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	for i, v := range h.buckets {
		if v == 0 {
			continue
		}
		switch i {
		case 0:
			m["-"] = v
		case len(h.buckets) - 1:
			m["+"] = v
		default:
			key := strconv.Itoa(int(h.from + (int64(i-1) * h.width)))
			m[key] = v
		}
	}
	return m
}

// Fullstats includes mean, variance and stddeviance along with
// Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   hmap,
	}
}

// Logstring return Fullstats as a single line loggable string.
func (h *HistogramInt64) Logstring() string {
	stats, keys := h.Fullstats(), []string{}
	for k := range stats {
		if k == "histogram" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ss := []string{}
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	histogram := stats["histogram"].(map[string]interface{})
	hkeys := []int{}
	for k := range histogram {
		if k == "-" || k == "+" {
			continue
		}
		n, _ := strconv.Atoi(k)
		hkeys = append(hkeys, n)
	}
	sort.Ints(hkeys)
	hs := []string{}
	if v, ok := histogram["-"]; ok {
		hs = append(hs, fmt.Sprintf(`"-": %v`, v))
	}
	for _, k := range hkeys {
		ks := strconv.Itoa(k)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, ks, histogram[ks]))
	}
	if v, ok := histogram["+"]; ok {
		hs = append(hs, fmt.Sprintf(`"+": %v`, v))
	}
	s := "{" + strings.Join(hs, ",") + "}"
	ss = append(ss, fmt.Sprintf(`"histogram": %v`, s))
	return "{" + strings.Join(ss, ",") + "}"
}
