package npr

import "errors"

// ErrNoSamples is returned by Integrate when no vertex along the iterator
// produced a valid sample.
var ErrNoSamples = errors.New("npr: no valid samples along iterator")

// IntegrationType selects how per-vertex samples are folded into a single
// value along an iterator.
type IntegrationType int

const (
	// Mean averages the valid samples.
	Mean IntegrationType = iota

	// Min keeps the smallest valid sample.
	Min

	// Max keeps the largest valid sample.
	Max

	// First evaluates only the first vertex.
	First

	// Last evaluates only the last vertex.
	Last
)

// String returns a string representation of the integration type.
func (t IntegrationType) String() string {
	switch t {
	case Mean:
		return "Mean"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Unknown"
	}
}

// Integrate folds a 0D functor along an iterator, starting at its current
// vertex and consuming it to the end.
//
// For Mean, Min and Max, vertices that fail to sample (out of bounds near
// silhouette edges, typically) are skipped; ErrNoSamples is returned only
// when every vertex failed. First and Last evaluate a single vertex and
// propagate its error.
func Integrate[T float32 | float64](f Function0D[T], it Iterator0D, ty IntegrationType) (T, error) {
	switch ty {
	case First:
		return f.Eval(it)
	case Last:
		for it.Next() {
		}
		return f.Eval(it)
	}

	var acc T
	count := 0
	for ok := true; ok; ok = it.Next() {
		v, err := f.Eval(it)
		if err != nil {
			Logger().Debug("npr: integrate sample skipped", "functor", f.Name(), "err", err)
			continue
		}
		switch {
		case count == 0:
			acc = v
		case ty == Mean:
			acc += v
		case ty == Min && v < acc:
			acc = v
		case ty == Max && v > acc:
			acc = v
		}
		count++
	}
	if count == 0 {
		return 0, ErrNoSamples
	}
	if ty == Mean {
		acc /= T(count)
	}
	return acc, nil
}
