// Package protect withholds Latin and katakana runs from reading conversion.
//
// A protected line is carried as an ordered list of segments next to a
// parallel list of spans. Each span also has a placeholder key built from
// ASCII STX/ETX markers, so the line can be rendered as one keyed string and
// restored by plain string replacement.
package protect

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"lyrickana/kana"
	"lyrickana/model"
)

type Span = model.ProtectedSpan

// Segment is either plain text (Class == model.SpanNone) or the span with
// the given Key.
type Segment struct {
	Text  string
	Class model.SpanClass
	Key   string
}

// Protected is the result of scanning one line.
type Protected struct {
	Segments []Segment
	Spans    []Span
}

// Protect scans line left to right and replaces protected runs with spans.
// When KeepKatakana is off, katakana is turned into hiragana first so that
// it takes part in reading conversion.
func Protect(line string, opts model.Options) Protected {
	if !opts.KeepKatakana {
		line = kana.KatakanaToHiragana(line)
	}

	var p Protected
	plainStart := 0
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		var end int
		var class model.SpanClass
		switch {
		case opts.KeepLatin && kana.IsLatin(r):
			end, class = scanLatin(line, i), model.SpanLatin
		case opts.KeepKatakana && kana.IsKatakana(r):
			end, class = scanWhile(line, i, kana.IsKatakana), model.SpanKatakana
		default:
			i += size
			continue
		}
		if plainStart < i {
			p.Segments = append(p.Segments, Segment{Text: line[plainStart:i]})
		}
		p.addSpan(class, line[i:end], i)
		i, plainStart = end, end
	}
	if plainStart < len(line) {
		p.Segments = append(p.Segments, Segment{Text: line[plainStart:]})
	}
	return p
}

func (p *Protected) addSpan(class model.SpanClass, text string, offset int) {
	prefix := "ENG"
	if class == model.SpanKatakana {
		prefix = "KATA"
	}
	key := fmt.Sprintf("\x02%s%d\x03", prefix, len(p.Spans))
	p.Spans = append(p.Spans, Span{
		Key:    key,
		Text:   text,
		Class:  class,
		Offset: offset,
		Length: len(text),
	})
	p.Segments = append(p.Segments, Segment{Text: text, Class: class, Key: key})
}

// Keyed renders the line with every span replaced by its key.
func (p Protected) Keyed() string {
	var b strings.Builder
	for _, seg := range p.Segments {
		if seg.Class == model.SpanNone {
			b.WriteString(seg.Text)
		} else {
			b.WriteString(seg.Key)
		}
	}
	return b.String()
}

// Source reassembles the protected line exactly.
func (p Protected) Source() string {
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Restore replaces each span key in text with the span's original text.
// Keys are unique, so the order of replacement does not matter.
func Restore(text string, spans []Span) string {
	for _, s := range spans {
		text = strings.ReplaceAll(text, s.Key, s.Text)
	}
	return text
}

// scanLatin returns the end of the Latin run starting at start. The run
// continues across horizontal whitespace when another Latin word follows,
// so "Hello  World" is one span with its spacing intact.
func scanLatin(line string, start int) int {
	end := scanWhile(line, start, kana.IsLatin)
	for end < len(line) {
		gap := scanWhile(line, end, isHorizontalSpace)
		if gap == end || gap >= len(line) {
			break
		}
		r, _ := utf8.DecodeRuneInString(line[gap:])
		if !kana.IsLatin(r) {
			break
		}
		end = scanWhile(line, gap, kana.IsLatin)
	}
	return end
}

func scanWhile(line string, start int, fn func(rune) bool) int {
	i := start
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !fn(r) {
			break
		}
		i += size
	}
	return i
}

func isHorizontalSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}
