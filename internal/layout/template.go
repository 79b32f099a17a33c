package layout

import (
	"errors"
	"strconv"
	"strings"
)

// Template is a row or column template indexed by track.
// Every index up to len-1 is present; unlisted tracks are SizeDefault.
type Template []TrackSize

// ParseTemplate parses a whitespace-separated list of "index/size" tokens
// such as "0/120px 2/1fr". The result is padded so its length is at least
// the highest listed index + 1 and at least minCount.
func ParseTemplate(spec string, minCount int) (Template, error) {
	listed := make(map[int]TrackSize)
	highest := -1

	for _, tok := range strings.Fields(spec) {
		idxPart, sizePart, ok := strings.Cut(tok, "/")
		if !ok {
			return nil, &TemplateError{Template: spec, Token: tok, Reason: "expected index/size"}
		}
		idx, err := strconv.Atoi(idxPart)
		if err != nil || idx < 0 {
			return nil, &TemplateError{Template: spec, Token: tok, Reason: "index must be a non-negative integer"}
		}
		size, err := ParseTrackSize(sizePart)
		if err != nil {
			var te *TemplateError
			if errors.As(err, &te) {
				te.Template = spec
				te.Token = tok
			}
			return nil, err
		}
		size.Index = idx
		listed[idx] = size
		highest = max(highest, idx)
	}

	tpl := Template(nil).Pad(max(highest+1, minCount))
	for idx, size := range listed {
		tpl[idx] = size
	}
	return tpl, nil
}

// Pad returns t extended with SizeDefault tracks up to length n.
func (t Template) Pad(n int) Template {
	for i := len(t); i < n; i++ {
		t = append(t, TrackSize{Index: i, Kind: SizeDefault})
	}
	return t
}

// At returns track i with SizeDefault resolved against def.
// Indices past the end resolve to def as well.
func (t Template) At(i int, def TrackSize) TrackSize {
	if i < 0 || i >= len(t) || t[i].Kind == SizeDefault {
		def.Index = i
		return def
	}
	return t[i]
}

// HasFraction reports whether any resolved track is a fraction. A fractional
// row means its host can consume leftover space.
func (t Template) HasFraction(def TrackSize) bool {
	for i := range t {
		if t.At(i, def).Kind == SizeFraction {
			return true
		}
	}
	return false
}

// parseDefault parses a host's default track token. An empty token yields
// implicit.
func parseDefault(token string, implicit TrackSize) (TrackSize, error) {
	if strings.TrimSpace(token) == "" {
		return implicit, nil
	}
	size, err := ParseTrackSize(token)
	if err != nil {
		return TrackSize{}, err
	}
	return size, nil
}

// columnTracks substitutes the default column track for content-sized
// columns. Columns have no intrinsic width, so an "auto" or unrecognised
// column takes the default size instead of collapsing to zero. A
// content-sized default becomes 1fr.
func columnTracks(tpl Template, def TrackSize) (Template, TrackSize) {
	if def.contentSized() {
		def = Fraction(1)
	}
	out := make(Template, len(tpl))
	for i, track := range tpl {
		if track.contentSized() {
			track = TrackSize{Index: track.Index, Kind: SizeDefault}
		}
		out[i] = track
	}
	return out, def
}

// resolveTracks sizes the tracks of one axis.
//
// Non-fraction tracks take their fixed, percentage or content size. When
// definite is set, fraction tracks share the leftover space in proportion to
// their fr values, floored at their content; otherwise they take content.
func resolveTracks(tpl Template, def TrackSize, available int, content []int, definite bool) []int {
	sizes := make([]int, len(tpl))
	contentAt := func(i int) int {
		if i < len(content) {
			return content[i]
		}
		return 0
	}

	used := 0
	totalFr := 0.0
	for i := range tpl {
		track := tpl.At(i, def)
		if track.Kind == SizeFraction && definite {
			totalFr += track.Value
			continue
		}
		sizes[i] = nonNegative(track.Resolve(available, contentAt(i)))
		used += sizes[i]
	}
	if totalFr <= 0 {
		return sizes
	}

	// Cumulative rounding keeps the fraction tracks summing to the leftover.
	leftover := nonNegative(available - used)
	acc := 0.0
	prev := 0
	for i := range tpl {
		track := tpl.At(i, def)
		if track.Kind != SizeFraction {
			continue
		}
		acc += track.Value
		end := int(float64(leftover) * acc / totalFr)
		sizes[i] = max(end-prev, contentAt(i))
		prev = end
	}
	return sizes
}

// offsets returns the running start position of each track.
func offsets(sizes []int) []int {
	out := make([]int, len(sizes)+1)
	for i, s := range sizes {
		out[i+1] = out[i] + s
	}
	return out
}

// span sums sizes[start:start+n], clipped to the template.
func span(sizes []int, start, n int) int {
	total := 0
	for i := start; i < start+n && i < len(sizes); i++ {
		if i >= 0 {
			total += sizes[i]
		}
	}
	return total
}
