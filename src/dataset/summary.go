package dataset

import "math"

// StatExtent aggregates one stat dimension over the finite values in the set.
type StatExtent struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Summary captures the aggregate shape of a loaded dataset: per-stat extents
// plus the legendary split. Pure derivation; recomputing from the same
// records yields the same summary.
type Summary struct {
	Rows      int
	Legendary int
	Stats     [NumStats]StatExtent
}

// Summarize folds the record set into a Summary. NaN values are skipped; a
// dimension with no finite values keeps NaN min/max and zero count.
func Summarize(records []Record) Summary {
	var s Summary
	s.Rows = len(records)
	for i := range s.Stats {
		s.Stats[i].Min = math.NaN()
		s.Stats[i].Max = math.NaN()
	}
	sums := [NumStats]float64{}
	for ri := range records {
		r := &records[ri]
		if r.Legendary {
			s.Legendary++
		}
		for d := 0; d < NumStats; d++ {
			v := r.Stats[d]
			if math.IsNaN(v) {
				continue
			}
			e := &s.Stats[d]
			if e.Count == 0 || v < e.Min {
				e.Min = v
			}
			if e.Count == 0 || v > e.Max {
				e.Max = v
			}
			sums[d] += v
			e.Count++
		}
	}
	for d := 0; d < NumStats; d++ {
		if s.Stats[d].Count > 0 {
			s.Stats[d].Mean = sums[d] / float64(s.Stats[d].Count)
		} else {
			s.Stats[d].Mean = math.NaN()
		}
	}
	return s
}

// Values collects the finite values of one dimension, in record order.
func Values(records []Record, dim int) []float64 {
	out := make([]float64, 0, len(records))
	for i := range records {
		v := records[i].Stat(dim)
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
