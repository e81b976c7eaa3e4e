package outcome

// Distribution is the one-call pipeline over a series space: count
// outcomes, then estimate a PMF (nil estimator ⇒ relative frequency).
// Under PositiveOnly every returned probability is strictly positive.
func Distribution(space SeriesSpace, x []float64, est Estimator, mode CountMode) (Probabilities, error) {
	counts, err := space.CountSeries(x, mode)
	if err != nil {
		return Probabilities{}, err
	}
	return Estimate(est, counts)
}
