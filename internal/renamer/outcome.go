package renamer

// Outcome records one planned or attempted move. The rename primitive
// never propagates failure; a bad file must not abort the batch, so
// failures travel back to the caller in the outcome instead.
type Outcome struct {
	From    string
	To      string
	Applied bool  // false in validate mode or on failure
	Err     error // nil unless the move was attempted and failed
}

// Failed reports whether the move was attempted and did not complete.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report aggregates the outcomes of a batch run.
type Report struct {
	Outcomes []Outcome
}

// Applied returns how many moves were performed.
func (r *Report) Applied() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Applied {
			n++
		}
	}
	return n
}

// Failures returns the outcomes that were attempted and failed.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}
