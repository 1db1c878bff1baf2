package segment

import (
	"strings"
	"testing"
	"unicode/utf8"

	"lyrickana/model"
)

func texts(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts model.Options
		want []string
	}{
		{"sokuon merged", "かっこ", model.Options{MergeSokuon: true}, []string{"かっ", "こ"}},
		{"sokuon split", "かっこ", model.Options{}, []string{"か", "っ", "こ"}},
		{"youon merged", "きょう", model.Options{MergeYouon: true}, []string{"きょ", "う"}},
		{"youon split", "きょう", model.Options{MergeSokuon: true}, []string{"き", "ょ", "う"}},
		{"both", "しゅっぱつ", model.Options{MergeYouon: true, MergeSokuon: true}, []string{"しゅっ", "ぱ", "つ"}},
		{"leading sokuon stands alone", "っと", model.Options{MergeSokuon: true}, []string{"っ", "と"}},
		{"leading youon stands alone", "ゃあ", model.Options{MergeYouon: true}, []string{"ゃ", "あ"}},
		{"katakana youon", "キャット", model.Options{MergeYouon: true, MergeSokuon: true}, []string{"キャッ", "ト"}},
		{"whitespace dropped", "か っ\tこ", model.Options{MergeSokuon: true}, []string{"かっ", "こ"}},
		{"empty", "", model.Options{MergeSokuon: true}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := texts(Merge(tc.in, tc.opts))
			if !equal(got, tc.want) {
				t.Fatalf("Merge(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMergerDoesNotFoldIntoLatin(t *testing.T) {
	m := NewMerger(model.Options{MergeSokuon: true, MergeYouon: true})
	m.AddLatin("DTM")
	m.Add("っゃか")
	got := texts(m.Units())
	want := []string{"DTM", "っゃ", "か"}
	if !equal(got, want) {
		t.Fatalf("units = %q, want %q", got, want)
	}
}

func TestLatinUnits(t *testing.T) {
	atomic := LatinUnits("Hello  World", model.Options{})
	if len(atomic) != 1 || atomic[0].Text != "Hello  World" || !atomic[0].Latin {
		t.Fatalf("expected one atomic latin unit, got %#v", atomic)
	}

	spaced := LatinUnits("Hi  you", model.Options{SpaceLatinInternally: true})
	want := []string{"H", "i", "y", "o", "u"}
	if !equal(texts(spaced), want) {
		t.Fatalf("spaced units = %q, want %q", texts(spaced), want)
	}
	if got := Join(spaced, true); got != "H i y o u" {
		t.Fatalf("unexpected join %q", got)
	}
}

func TestJoin(t *testing.T) {
	units := []Unit{{Text: "か"}, {Text: "ん"}, {Text: "Hello  World", Latin: true}, {Text: "と"}}
	if got := Join(units, false); got != "かんHello  Worldと" {
		t.Fatalf("full connection = %q", got)
	}
	if got := Join(units, true); got != "か ん Hello World と" {
		t.Fatalf("spaced = %q", got)
	}
	if got := Join(nil, true); got != "" {
		t.Fatalf("empty join = %q", got)
	}
}

func TestSpacedPureKanaHasCharCountMinusOneSeparators(t *testing.T) {
	in := "あいうえおかきくけこ"
	got := Join(Merge(in, model.Options{}), true)
	n := utf8.RuneCountInString(in)
	if c := strings.Count(got, " "); c != n-1 {
		t.Fatalf("expected %d separators, got %d in %q", n-1, c, got)
	}
	if strings.Contains(got, "  ") {
		t.Fatalf("found doubled space in %q", got)
	}
}

func TestCollapseAndStripSpace(t *testing.T) {
	if got := Collapse("  a \t b　c  "); got != "a b c" {
		t.Fatalf("Collapse = %q", got)
	}
	if got := StripSpace(" か\tん　じ "); got != "かんじ" {
		t.Fatalf("StripSpace = %q", got)
	}
}

func TestMergeAttachesCombiningMarks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts model.Options
		want []string
	}{
		{"decomposed dakuten", "か\u3099き", model.Options{}, []string{"か\u3099", "き"}},
		{"decomposed handakuten after sokuon", "っは\u309a", model.Options{MergeSokuon: true}, []string{"っ", "は\u309a"}},
		{"katakana with youon", "キ\u3099ャ", model.Options{MergeYouon: true}, []string{"キ\u3099ャ"}},
		{"leading mark stands alone", "\u3099か", model.Options{}, []string{"\u3099", "か"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := texts(Merge(tc.in, tc.opts))
			if !equal(got, tc.want) {
				t.Fatalf("Merge(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMergerFoldsSmallKatakanaOnlyWithYouon(t *testing.T) {
	if got := texts(Merge("シャッ", model.Options{MergeSokuon: true})); !equal(got, []string{"シ", "ャッ"}) {
		t.Fatalf("sokuon only: got %q", got)
	}
	if got := texts(Merge("シャッ", model.Options{MergeYouon: true})); !equal(got, []string{"シャ", "ッ"}) {
		t.Fatalf("youon only: got %q", got)
	}
	if got := texts(Merge("ラーメン", model.Options{MergeYouon: true, MergeSokuon: true})); !equal(got, []string{"ラ", "ー", "メ", "ン"}) {
		t.Fatalf("plain katakana: got %q", got)
	}
}
