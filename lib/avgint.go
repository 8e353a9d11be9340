package lib

import "math"

// AverageInt64 compute statistical mean, variance and standard
// deviation over int64 samples.
type AverageInt64 struct {
	count  int64
	vmin   int64
	vmax   int64
	sum    int64
	sumsq  float64
	seeded bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.count++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.seeded == false {
		av.vmin, av.vmax, av.seeded = sample, sample, true
		return
	}
	if sample < av.vmin {
		av.vmin = sample
	}
	if sample > av.vmax {
		av.vmax = sample
	}
}

// Min return the smallest sample seen so far.
func (av *AverageInt64) Min() int64 {
	return av.vmin
}

// Max return the largest sample seen so far.
func (av *AverageInt64) Max() int64 {
	return av.vmax
}

// Samples return number of samples added.
func (av *AverageInt64) Samples() int64 {
	return av.count
}

// Sum return sum of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return the average of all samples.
func (av *AverageInt64) Mean() int64 {
	if av.count == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.count))
}

// Variance return squared deviation of samples from mean.
func (av *AverageInt64) Variance() int64 {
	if av.count == 0 {
		return 0
	}
	nf, meanf := float64(av.count), float64(av.Mean())
	return int64((av.sumsq / nf) - (meanf * meanf))
}

// SD return by how much samples differ from the mean.
func (av *AverageInt64) SD() int64 {
	if av.count == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(av.Variance())))
}

// Clone copies the entire instance.
func (av *AverageInt64) Clone() *AverageInt64 {
	newav := *av
	return &newav
}

// Stats return min, max, samples, mean, variance and stddeviance
// as a map.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.SD(),
	}
}
