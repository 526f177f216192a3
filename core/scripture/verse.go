package scripture

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrInvalidVerseRange indicates a verse range whose start exceeds its end.
var ErrInvalidVerseRange = errors.New("invalid verse range")

// InvalidVerseRangeError reports a range constructed with start > end.
type InvalidVerseRangeError struct {
	Start int
	End   int
}

func (e *InvalidVerseRangeError) Error() string {
	return fmt.Sprintf("invalid verse range: %d-%d", e.Start, e.End)
}

func (e *InvalidVerseRangeError) Unwrap() error {
	return ErrInvalidVerseRange
}

// VerseNumber is the identity of a verse: either a single number or an
// inclusive range (start <= end, enforced at construction). The zero value
// is not a valid verse number.
//
// Ordering is total across both kinds: compare by first number; at equal
// start a single verse precedes a range beginning there; two ranges with
// equal start break the tie by end. The tie-break is deliberate policy, not
// an accident of representation, and is relied on by consumers.
type VerseNumber struct {
	start  int
	end    int
	ranged bool
}

// Single returns the verse number for a single verse n.
func Single(n int) VerseNumber {
	return VerseNumber{start: n, end: n}
}

// NewRange returns the verse number covering the inclusive range start-end.
// A range with start > end returns an *InvalidVerseRangeError.
func NewRange(start, end int) (VerseNumber, error) {
	if start > end {
		return VerseNumber{}, &InvalidVerseRangeError{Start: start, End: end}
	}
	return VerseNumber{start: start, end: end, ranged: true}, nil
}

// IsRange reports whether the value denotes an inclusive range.
// Range(n, n) is still a range: it sorts after Single(n).
func (v VerseNumber) IsRange() bool {
	return v.ranged
}

// Start returns the first verse number the value denotes.
func (v VerseNumber) Start() int {
	return v.start
}

// End returns the last verse number the value denotes.
// For a single verse this equals Start.
func (v VerseNumber) End() int {
	return v.end
}

// Count returns how many verse numbers the value denotes.
func (v VerseNumber) Count() int {
	return v.end - v.start + 1
}

// Compare implements the total order described on VerseNumber.
func (v VerseNumber) Compare(o VerseNumber) int {
	switch {
	case v.start != o.start:
		if v.start < o.start {
			return -1
		}
		return 1
	case v.ranged != o.ranged:
		// Single precedes Range at equal start.
		if !v.ranged {
			return -1
		}
		return 1
	case v.end != o.end:
		if v.end < o.end {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Expand yields the constituent verse numbers in ascending order: exactly
// one element for a single verse, end-start+1 for a range. Callers never
// need to branch on the kind.
func (v VerseNumber) Expand() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := v.start; n <= v.end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Overlaps reports whether two values intersect as closed intervals.
func (v VerseNumber) Overlaps(o VerseNumber) bool {
	return !(v.end < o.start || o.end < v.start)
}

// String renders "5" for Single(5) and "5-7" for Range(5, 7).
func (v VerseNumber) String() string {
	if v.ranged {
		return fmt.Sprintf("%d-%d", v.start, v.end)
	}
	return strconv.Itoa(v.start)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (v VerseNumber) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "5" or "5-7".
func (v *VerseNumber) UnmarshalText(text []byte) error {
	s := string(text)
	if start, end, ok := strings.Cut(s, "-"); ok {
		a, err := strconv.Atoi(start)
		if err != nil {
			return fmt.Errorf("verse number %q: %w", s, err)
		}
		b, err := strconv.Atoi(end)
		if err != nil {
			return fmt.Errorf("verse number %q: %w", s, err)
		}
		vn, err := NewRange(a, b)
		if err != nil {
			return err
		}
		*v = vn
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("verse number %q: %w", s, err)
	}
	*v = Single(n)
	return nil
}
