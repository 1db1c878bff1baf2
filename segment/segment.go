// Package segment cuts a reading into units and joins them back together.
package segment

import (
	"strings"
	"unicode"

	"lyrickana/kana"
	"lyrickana/model"
)

// Unit is one indivisible token of output: a single character, a character
// with folded sokuon/youon, or protected Latin text.
type Unit struct {
	Text  string `json:"text"`
	Latin bool   `json:"latin,omitempty"`
}

// Merger accumulates units for one line.
type Merger struct {
	opts  model.Options
	units []Unit
}

func NewMerger(opts model.Options) *Merger {
	return &Merger{opts: opts}
}

// Add appends the characters of text. A sokuon or youon is folded into the
// previous unit when its option is on and that unit is not Latin; at the
// start of a line it stands alone. Combining marks always stay with the
// character before them. Whitespace is dropped.
func (m *Merger) Add(text string) {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if m.folds(r) || m.combines(r) {
			m.units[len(m.units)-1].Text += string(r)
			continue
		}
		m.units = append(m.units, Unit{Text: string(r)})
	}
}

// AddLatin appends a protected Latin run, either whole or one unit per
// character when SpaceLatinInternally is set.
func (m *Merger) AddLatin(span string) {
	m.units = append(m.units, LatinUnits(span, m.opts)...)
}

// Units returns the accumulated units.
func (m *Merger) Units() []Unit {
	return m.units
}

func (m *Merger) folds(r rune) bool {
	if len(m.units) == 0 || m.units[len(m.units)-1].Latin {
		return false
	}
	switch kana.Classify(r) {
	case kana.Sokuon:
		return m.opts.MergeSokuon
	case kana.Youon:
		return m.opts.MergeYouon
	case kana.Katakana:
		// small katakana from kept spans
		return m.opts.MergeYouon && kana.IsYouon(r)
	}
	return false
}

// combines reports whether r is a nonspacing mark, such as a decomposed
// dakuten, with a unit before it to attach to.
func (m *Merger) combines(r rune) bool {
	return len(m.units) > 0 && unicode.Is(unicode.Mn, r)
}

// Merge cuts text into units on its own.
func Merge(text string, opts model.Options) []Unit {
	m := NewMerger(opts)
	m.Add(text)
	return m.Units()
}

// LatinUnits splits a Latin span. Without SpaceLatinInternally the span is
// one unit. With it, every character is a unit; words stay in order and any
// run of spaces between them ends up as a single separator once joined.
func LatinUnits(span string, opts model.Options) []Unit {
	if !opts.SpaceLatinInternally {
		if strings.TrimSpace(span) == "" {
			return nil
		}
		return []Unit{{Text: span, Latin: true}}
	}
	var units []Unit
	for _, word := range strings.Fields(span) {
		for _, r := range word {
			units = append(units, Unit{Text: string(r), Latin: true})
		}
	}
	return units
}

// Join concatenates units, separated by a single half-width space when
// withSpace is set. The spaced form is normalized with Collapse, so mixed
// Japanese/Latin boundaries never double or drop a space.
func Join(units []Unit, withSpace bool) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = u.Text
	}
	if !withSpace {
		return strings.Join(parts, "")
	}
	return Collapse(strings.Join(parts, " "))
}

// Collapse replaces every whitespace run with one space and trims the ends.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
