package stamp

import (
	"sync"
	"time"

	"github.com/mlorenz/buildstamp/pkg/errors"
)

// Clock supplies the current moment. Implementations return an error when
// the underlying time source cannot be read.
type Clock func() (time.Time, error)

// SystemClock reads the build machine's wall clock, normalized to UTC.
func SystemClock() (time.Time, error) {
	now := time.Now().UTC()
	if now.IsZero() {
		return time.Time{}, errors.New(errors.ErrCodeClockUnavailable, "system clock returned the zero time")
	}
	return now, nil
}

// Instant is the captured point in time at which generation occurred.
// It is immutable once captured and UTC-normalized at whole-second
// granularity, so every shape rendered from it is mutually consistent.
type Instant struct {
	t time.Time
}

var (
	captureOnce sync.Once
	captured    Instant
	captureErr  error
)

// Capture returns the process-wide build instant, reading the system clock
// on first use and reusing the same moment for every subsequent call. All
// literals generated by one buildstamp run share this single instant.
func Capture() (Instant, error) {
	captureOnce.Do(func() {
		captured, captureErr = CaptureWith(SystemClock)
	})
	return captured, captureErr
}

// CaptureWith captures an instant from the given clock. Unlike Capture it is
// not memoized; the capture pipeline runs on every call.
func CaptureWith(clock Clock) (Instant, error) {
	now, err := clock()
	if err != nil {
		if errors.Is(err, errors.ErrCodeClockUnavailable) {
			return Instant{}, err
		}
		return Instant{}, errors.Wrap(errors.ErrCodeClockUnavailable, err, "read build clock")
	}
	if now.IsZero() {
		return Instant{}, errors.New(errors.ErrCodeClockUnavailable, "clock returned the zero time")
	}
	return Instant{t: now.UTC().Truncate(time.Second)}, nil
}

// Time returns the captured moment as a time.Time in UTC.
func (in Instant) Time() time.Time { return in.t }

// Unix returns the signed count of whole seconds between the Unix epoch
// (1970-01-01T00:00:00Z) and the captured moment.
func (in Instant) Unix() int64 { return in.t.Unix() }

// Date returns the calendar-date portion of the instant.
func (in Instant) Date() Date {
	y, m, d := in.t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// TimeOfDay returns the clock-time portion of the instant.
func (in Instant) TimeOfDay() TimeOfDay {
	h, m, s := in.t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// DateString renders the instant's date in yyyy-MM-dd form.
func (in Instant) DateString() string { return in.Date().String() }

// TimeString renders the instant's clock time in hh:mm:ss form.
func (in Instant) TimeString() string { return in.TimeOfDay().String() }

// DateTimeString renders the instant in yyyy-MM-ddThh:mm:ssZ form.
func (in Instant) DateTimeString() string { return in.t.Format(layoutDateTime) }
