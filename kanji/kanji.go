// Package kanji loads per-character readings from a kanjidic2 file and uses
// them to read tokens the morphological analyzer does not know.
package kanji

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"

	"lyrickana/kana"
)

// Dictionary maps a kanji to its on/kun readings in hiragana, okurigana
// removed, in file order.
type Dictionary struct {
	readings map[rune][]string
}

// Load parses the kanjidic2 XML file at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kanjidic2: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads kanjidic2 XML, streaming one <character> element at a time.
func Parse(r io.Reader) (*Dictionary, error) {
	p, err := xmlquery.CreateStreamParser(r, "/kanjidic2/character")
	if err != nil {
		return nil, fmt.Errorf("parse kanjidic2: %w", err)
	}
	d := &Dictionary{readings: make(map[rune][]string)}
	for {
		n, err := p.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse kanjidic2: %w", err)
		}
		lit := xmlquery.FindOne(n, "literal")
		if lit == nil {
			continue
		}
		literal := strings.TrimSpace(lit.InnerText())
		if utf8.RuneCountInString(literal) != 1 {
			continue
		}
		var readings []string
		for _, rd := range xmlquery.Find(n, "reading_meaning/rmgroup/reading") {
			switch rd.SelectAttr("r_type") {
			case "ja_on", "ja_kun":
				if v := NormalizeReading(rd.InnerText()); v != "" {
					readings = append(readings, v)
				}
			}
		}
		if len(readings) == 0 {
			continue
		}
		k, _ := utf8.DecodeRuneInString(literal)
		d.readings[k] = readings
	}
	return d, nil
}

// NormalizeReading turns a kanjidic reading such as "い.る", "-ず" or "カン"
// into the hiragana the kanji itself stands for: "い", "ず", "かん".
func NormalizeReading(r string) string {
	r = strings.TrimSpace(r)
	if idx := strings.IndexRune(r, '.'); idx >= 0 {
		r = r[:idx]
	}
	r = strings.Trim(r, "-")
	return kana.KatakanaToHiragana(r)
}

// Readings returns the readings known for k, or nil.
func (d *Dictionary) Readings(k rune) []string {
	if d == nil {
		return nil
	}
	return d.readings[k]
}

// Count returns the number of kanji entries loaded
func (d *Dictionary) Count() int {
	if d == nil {
		return 0
	}
	return len(d.readings)
}

// Fallback builds a reading for surface from each kanji's first reading.
// Kana is carried over as hiragana and anything else is kept as is. It
// fails when any kanji has no reading.
func (d *Dictionary) Fallback(surface string) (string, bool) {
	if d == nil {
		return "", false
	}
	var b strings.Builder
	found := false
	for _, r := range surface {
		if !kana.IsKanji(r) {
			b.WriteRune(kana.ToHiragana(r))
			continue
		}
		readings := d.readings[r]
		if len(readings) == 0 {
			return "", false
		}
		b.WriteString(readings[0])
		found = true
	}
	return b.String(), found
}
