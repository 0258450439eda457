package stamp

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/mlorenz/buildstamp/pkg/errors"
)

// fixedClock returns a Clock that always reports the given moment.
func fixedClock(t time.Time) Clock {
	return func() (time.Time, error) { return t, nil }
}

func TestCaptureWith(t *testing.T) {
	moment := time.Date(2026, time.August, 30, 14, 2, 11, 987654321, time.UTC)

	in, err := CaptureWith(fixedClock(moment))
	if err != nil {
		t.Fatalf("CaptureWith failed: %v", err)
	}

	// Sub-second precision is dropped so string, structured, and epoch
	// renderings of the same instant agree exactly.
	want := moment.Truncate(time.Second)
	if !in.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", in.Time(), want)
	}
}

func TestCaptureWithNormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2026, time.August, 30, 16, 2, 11, 0, zone)

	in, err := CaptureWith(fixedClock(local))
	if err != nil {
		t.Fatalf("CaptureWith failed: %v", err)
	}

	if in.Time().Location() != time.UTC {
		t.Errorf("Location = %v, want UTC", in.Time().Location())
	}
	if got := in.TimeOfDay(); got.Hour != 14 {
		t.Errorf("Hour = %d, want 14 (UTC-normalized)", got.Hour)
	}
}

func TestCaptureWithFailingClock(t *testing.T) {
	failing := func() (time.Time, error) {
		return time.Time{}, errors.New("clock hardware fault")
	}

	_, err := CaptureWith(failing)
	if err == nil {
		t.Fatal("CaptureWith with failing clock should error")
	}
	if !apperrors.Is(err, apperrors.ErrCodeClockUnavailable) {
		t.Errorf("error code = %v, want CLOCK_UNAVAILABLE", apperrors.GetCode(err))
	}
}

func TestCaptureWithZeroClock(t *testing.T) {
	zero := func() (time.Time, error) { return time.Time{}, nil }

	_, err := CaptureWith(zero)
	if err == nil {
		t.Fatal("CaptureWith with zero clock should error rather than default")
	}
	if !apperrors.Is(err, apperrors.ErrCodeClockUnavailable) {
		t.Errorf("error code = %v, want CLOCK_UNAVAILABLE", apperrors.GetCode(err))
	}
}

func TestCaptureIsMemoized(t *testing.T) {
	first, err := Capture()
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	// A later call must observe the identical instant, not merely one
	// close in time.
	time.Sleep(10 * time.Millisecond)
	second, err := Capture()
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	if !first.Time().Equal(second.Time()) {
		t.Errorf("Capture not memoized: first %v, second %v", first.Time(), second.Time())
	}
}

func TestInstantConsistency(t *testing.T) {
	moment := time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC)
	in, err := CaptureWith(fixedClock(moment))
	if err != nil {
		t.Fatalf("CaptureWith failed: %v", err)
	}

	d := in.Date()
	if d.Year != 2026 || d.Month != time.February || d.Day != 3 {
		t.Errorf("Date() = %+v, want 2026-02-03", d)
	}

	tod := in.TimeOfDay()
	if tod.Hour != 4 || tod.Minute != 5 || tod.Second != 6 {
		t.Errorf("TimeOfDay() = %+v, want 04:05:06", tod)
	}

	if got, want := in.DateString(), "2026-02-03"; got != want {
		t.Errorf("DateString() = %q, want %q", got, want)
	}
	if got, want := in.TimeString(), "04:05:06"; got != want {
		t.Errorf("TimeString() = %q, want %q", got, want)
	}
	if got, want := in.DateTimeString(), "2026-02-03T04:05:06Z"; got != want {
		t.Errorf("DateTimeString() = %q, want %q", got, want)
	}

	// The datetime string is the date string plus the time string.
	if got := in.DateString() + "T" + in.TimeString() + "Z"; got != in.DateTimeString() {
		t.Errorf("composed datetime %q != DateTimeString %q", got, in.DateTimeString())
	}
}

func TestUnixRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		moment time.Time
	}{
		{"recent", time.Date(2026, time.August, 30, 14, 2, 11, 0, time.UTC)},
		{"epoch", time.Unix(0, 0).UTC()},
		{"pre-epoch", time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := CaptureWith(fixedClock(tt.moment))
			if err != nil {
				t.Fatalf("CaptureWith failed: %v", err)
			}

			back := FromUnix(in.Unix())
			if !back.Time().Equal(in.Time()) {
				t.Errorf("FromUnix(Unix()) = %v, want %v", back.Time(), in.Time())
			}
		})
	}
}

func TestParseRoundTrips(t *testing.T) {
	moment := time.Date(2026, time.August, 30, 14, 2, 11, 0, time.UTC)
	in := FromTime(moment)

	d, err := ParseDate(in.DateString())
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != in.Date() {
		t.Errorf("ParseDate(DateString()) = %+v, want %+v", d, in.Date())
	}

	tod, err := ParseTimeOfDay(in.TimeString())
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if tod != in.TimeOfDay() {
		t.Errorf("ParseTimeOfDay(TimeString()) = %+v, want %+v", tod, in.TimeOfDay())
	}

	back, err := ParseDateTime(in.DateTimeString())
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if !back.Time().Equal(in.Time()) {
		t.Errorf("ParseDateTime(DateTimeString()) = %v, want %v", back.Time(), in.Time())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := ParseDate("2026-8-30"); err == nil {
		t.Error("ParseDate should reject non-padded input")
	}
	if _, err := ParseTimeOfDay("14:02"); err == nil {
		t.Error("ParseTimeOfDay should reject missing seconds")
	}
	if _, err := ParseDateTime("2026-08-30 14:02:11"); err == nil {
		t.Error("ParseDateTime should reject missing T separator")
	}
}
