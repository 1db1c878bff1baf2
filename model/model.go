package model

// Options selects how a conversion protects, merges and spaces its output.
// It is passed by value; a conversion never mutates it.
type Options struct {
	KeepLatin            bool `json:"keep_latin"`
	KeepKatakana         bool `json:"keep_katakana"`
	MergeYouon           bool `json:"merge_youon"`
	MergeSokuon          bool `json:"merge_sokuon"`
	SplitWithSpace       bool `json:"split_with_space"`
	SpaceLatinInternally bool `json:"space_latin_internally"`
	FoldWidth            bool `json:"fold_width"`
}

// DefaultOptions returns the options a fresh session starts with.
func DefaultOptions() Options {
	return Options{
		KeepLatin:      true,
		MergeYouon:     true,
		SplitWithSpace: true,
		FoldWidth:      true,
	}
}

// SpanClass tells which protection rule produced a span.
type SpanClass int

const (
	SpanNone SpanClass = iota
	SpanLatin
	SpanKatakana
)

func (c SpanClass) String() string {
	switch c {
	case SpanLatin:
		return "latin"
	case SpanKatakana:
		return "katakana"
	default:
		return "none"
	}
}

// ProtectedSpan is a run of a line withheld from reading conversion.
// Key is unique within one line; Offset and Length are byte positions in the
// protected line.
type ProtectedSpan struct {
	Key    string    `json:"key"`
	Text   string    `json:"text"`
	Class  SpanClass `json:"class"`
	Offset int       `json:"offset"`
	Length int       `json:"length"`
}

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text          string `json:"text"`
	Lemma         string `json:"lemma,omitempty"`
	POS           string `json:"pos,omitempty"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Reading       string `json:"reading,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	TokenID       int    `json:"token_id,omitempty"`
	Known         bool   `json:"known"`
}
