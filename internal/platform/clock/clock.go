package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests. Local time is
// deliberate: study days are user-local calendar days.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock pinned to a single instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
