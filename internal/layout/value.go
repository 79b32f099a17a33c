package layout

import (
	"strconv"
	"strings"
)

// SizeKind specifies how a TrackSize is interpreted.
type SizeKind uint8

const (
	SizeDefault  SizeKind = iota // Use the host's default track size
	SizeFixed                    // Absolute pixels
	SizeFraction                 // Share of leftover space in fr units
	SizeOther                    // Raw token: "auto", percentages, anything else
)

func (k SizeKind) String() string {
	switch k {
	case SizeFixed:
		return "fixed"
	case SizeFraction:
		return "fraction"
	case SizeOther:
		return "other"
	default:
		return "default"
	}
}

// TrackSize is one entry of a row or column template.
type TrackSize struct {
	Index int
	Kind  SizeKind
	Value float64 // Pixels for SizeFixed, fr units for SizeFraction
	Raw   string  // Token as written
}

// Fixed returns a TrackSize of n pixels.
func Fixed(n int) TrackSize {
	return TrackSize{Kind: SizeFixed, Value: float64(n), Raw: strconv.Itoa(n) + "px"}
}

// Fraction returns a TrackSize of fr units.
func Fraction(fr float64) TrackSize {
	return TrackSize{Kind: SizeFraction, Value: fr, Raw: strconv.FormatFloat(fr, 'f', -1, 64) + "fr"}
}

// Auto returns a TrackSize sized by its content.
func Auto() TrackSize {
	return TrackSize{Kind: SizeOther, Raw: "auto"}
}

// percent reports the percentage of a SizeOther token such as "25%".
func (t TrackSize) percent() (float64, bool) {
	if t.Kind != SizeOther || !strings.HasSuffix(t.Raw, "%") {
		return 0, false
	}
	p, err := strconv.ParseFloat(strings.TrimSuffix(t.Raw, "%"), 64)
	if err != nil || p < 0 {
		return 0, false
	}
	return p, true
}

// contentSized reports whether the track takes its size from content:
// auto and any raw token that is not a percentage.
func (t TrackSize) contentSized() bool {
	if t.Kind != SizeOther {
		return false
	}
	_, ok := t.percent()
	return !ok
}

// Resolve computes the pixel size of a non-fraction track given the
// available space along its axis. Auto and unparsed tokens take the content
// size. Fraction tracks are distributed by the caller and return content.
func (t TrackSize) Resolve(available, content int) int {
	switch t.Kind {
	case SizeFixed:
		return int(t.Value)
	case SizeOther:
		if p, ok := t.percent(); ok {
			return int(float64(available) * p / 100.0)
		}
		return content
	default:
		return content
	}
}

// ParseTrackSize parses the size half of an "index/size" token.
//
// Tokens ending in "px" or bare numbers are fixed pixels. Any token
// containing "fr" is a fraction. Everything else is kept raw.
func ParseTrackSize(token string) (TrackSize, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TrackSize{}, &TemplateError{Token: token, Reason: "empty size"}
	}

	if strings.Contains(token, "fr") {
		size := TrackSize{Kind: SizeFraction, Value: 1, Raw: token}
		if prefix, ok := strings.CutSuffix(token, "fr"); ok && prefix != "" {
			v, err := strconv.ParseFloat(prefix, 64)
			if err != nil || v < 0 {
				return TrackSize{}, &TemplateError{Token: token, Reason: "invalid fraction"}
			}
			size.Value = v
		}
		return size, nil
	}

	if prefix, ok := strings.CutSuffix(token, "px"); ok {
		v, err := strconv.ParseFloat(prefix, 64)
		if err != nil || v < 0 {
			return TrackSize{}, &TemplateError{Token: token, Reason: "invalid pixel size"}
		}
		return TrackSize{Kind: SizeFixed, Value: v, Raw: token}, nil
	}

	if v, err := strconv.ParseFloat(token, 64); err == nil {
		if v < 0 {
			return TrackSize{}, &TemplateError{Token: token, Reason: "negative size"}
		}
		return TrackSize{Kind: SizeFixed, Value: v, Raw: token}, nil
	}

	return TrackSize{Kind: SizeOther, Raw: token}, nil
}
