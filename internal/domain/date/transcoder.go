package date

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/clipdate/internal/domain"
)

// Default layouts in Go reference-time notation.
const (
	// InputLayout is MM/DD/YY.
	InputLayout = "01/02/06"
	// OutputLayout is MM/DD/YYYY.
	OutputLayout = "01/02/2006"
)

// sampleDate is the date used to check that a layout pair is usable. Month and
// day differ so a layout that drops or swaps a field fails the round trip,
// and the year sits inside the two-digit-year window.
var sampleDate = time.Date(2021, time.November, 23, 0, 0, 0, 0, time.UTC)

// rematchSamples are rendered with the output layout and fed back to Parse.
// They cover two-digit and single-digit fields in both centuries.
var rematchSamples = []time.Time{
	sampleDate,
	time.Date(2001, time.January, 2, 0, 0, 0, 0, time.UTC),
	time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
}

// Transcoder parses clipboard text with one fixed layout and renders dates
// with another. It holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	input  string
	output string
}

// Default returns the MM/DD/YY -> MM/DD/YYYY transcoder.
func Default() *Transcoder {
	return &Transcoder{input: InputLayout, output: OutputLayout}
}

// NewTranscoder returns a transcoder for the given layouts after checking
// them with ValidateLayouts.
func NewTranscoder(input, output string) (*Transcoder, error) {
	if err := ValidateLayouts(input, output); err != nil {
		return nil, err
	}
	return &Transcoder{input: input, output: output}, nil
}

// InputLayout returns the layout Parse accepts.
func (t *Transcoder) InputLayout() string { return t.input }

// OutputLayout returns the layout Format renders.
func (t *Transcoder) OutputLayout() string { return t.output }

// Parse trims s and reads it as a date in the input layout. ok is false for
// anything that is not exactly one date in that layout, including calendar
// invalid values such as 13/32/22. Parse never fails in any other way.
func (t *Transcoder) Parse(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	parsed, err := time.Parse(t.input, s)
	if err != nil {
		return Date{}, false
	}

	// time.Parse accepts a sign inside numeric fields ("01/02/+1"). Only the
	// canonical rendering of the parsed date counts as a match.
	if parsed.Format(t.input) != s {
		return Date{}, false
	}

	return fromTime(parsed), true
}

// Format renders d in the output layout.
func (t *Transcoder) Format(d Date) string {
	return d.Time().Format(t.output)
}

// ValidateLayouts reports whether input and output form a usable pair:
// input must round-trip a full date, output must not be empty, and text
// rendered with output must never parse under input. The last rule keeps a
// written-back value from being picked up again as a new date.
func ValidateLayouts(input, output string) error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(input) == "":
		fields["input_layout"] = "must not be empty"
	default:
		got, err := time.Parse(input, sampleDate.Format(input))
		if err != nil || !got.Equal(sampleDate) {
			fields["input_layout"] = "must contain year, month and day elements"
		}
	}

	if strings.TrimSpace(output) == "" {
		fields["output_layout"] = "must not be empty"
	}

	if len(fields) == 0 {
		// Check the rendering through Parse itself so trimming and the
		// canonical-form rule apply exactly as they do to clipboard text.
		t := &Transcoder{input: input, output: output}
		for _, p := range rematchSamples {
			if _, ok := t.Parse(t.Format(fromTime(p))); ok {
				fields["output_layout"] = "output re-matches input layout " + input
				break
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
