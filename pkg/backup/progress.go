package backup

// Progress scale allocation. The listing phase owns [0,10]; the transfer
// phase owns (10,100] and is divided linearly across the repositories.
const (
	progressListingStart = 0
	progressListingDone  = 10
	progressComplete     = 100
)

// TransferPercent maps the number of completed transfers onto the 0-100
// scale. The first completed repository already shows partial progress and
// completed == total always yields exactly 100. A non-positive total means
// there is nothing to transfer and reports immediate completion.
func TransferPercent(completed, total int) int {
	if total <= 0 {
		return progressComplete
	}
	return progressListingDone + completed*(progressComplete-progressListingDone)/total
}

// progressTracker enforces the monotonicity invariant: percentages emitted
// over the lifetime of one run never decrease.
type progressTracker struct {
	sink ProgressFunc
	last int
}

func (t *progressTracker) report(percent int) {
	if percent < t.last {
		percent = t.last
	}
	t.last = percent
	if t.sink != nil {
		t.sink(percent)
	}
}
