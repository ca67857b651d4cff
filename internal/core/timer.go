package core

import "time"

const stepHistory = 5

// StepTimes keeps a fixed-length, most-recent-first history of step durations
// for a displayed moving average.
type StepTimes struct {
	samples [stepHistory]time.Duration
}

// Record pushes d to the front of the history, dropping the oldest sample.
func (s *StepTimes) Record(d time.Duration) {
	copy(s.samples[1:], s.samples[:len(s.samples)-1])
	s.samples[0] = d
}

// Average returns the mean over the whole window. Slots not yet filled count
// as zero, matching a freshly started history.
func (s *StepTimes) Average() time.Duration {
	var sum time.Duration
	for _, d := range s.samples {
		sum += d
	}
	return sum / stepHistory
}
