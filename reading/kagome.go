package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"

	"lyrickana/kana"
	"lyrickana/kanji"
	"lyrickana/tokenize"
)

const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// Kagome reads text with the kagome morphological analyzer. Tokens the
// dictionary cannot read keep their surface, or are read through kanjidic2
// when KanjidicPath is set.
type Kagome struct {
	KanjidicPath string
	Logger       *slog.Logger

	mu     sync.RWMutex
	tok    *tokenize.Tokenizer
	kanjis *kanji.Dictionary
}

// Init loads the dictionary named by location and, when configured, the
// kanjidic2 fallback.
func (k *Kagome) Init(ctx context.Context, location string) error {
	d, err := loadDict(location)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tok, err := tokenize.New(d)
	if err != nil {
		return err
	}

	var kd *kanji.Dictionary
	if path := strings.TrimSpace(k.KanjidicPath); path != "" {
		kd, err = kanji.Load(path)
		if err != nil {
			return err
		}
	}

	k.mu.Lock()
	k.tok, k.kanjis = tok, kd
	k.mu.Unlock()

	k.logger().Info("reading engine ready",
		slog.String("dictionary", dictLabel(location)),
		slog.Int("kanjidic_entries", kd.Count()),
	)
	return nil
}

// Convert returns the hiragana reading of text.
func (k *Kagome) Convert(ctx context.Context, text string) (string, error) {
	k.mu.RLock()
	tok, kd := k.tok, k.kanjis
	k.mu.RUnlock()
	if tok == nil {
		return "", errors.New("kagome provider not initialized")
	}

	toks, err := tok.Tokenize(ctx, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range toks {
		reading := t.Reading
		if reading == "" {
			reading = t.Text
			if fb, ok := kd.Fallback(t.Text); ok {
				k.logger().Debug("kanjidic fallback",
					slog.String("surface", t.Text),
					slog.String("reading", fb),
				)
				reading = fb
			}
		}
		b.WriteString(kana.KatakanaToHiragana(reading))
	}
	return b.String(), nil
}

func (k *Kagome) logger() *slog.Logger {
	if k.Logger != nil {
		return k.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func loadDict(location string) (*dict.Dict, error) {
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "", DictIPA:
		return ipa.Dict(), nil
	case DictUni:
		return uni.Dict(), nil
	}
	d, err := dict.LoadDictFile(location)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", location, err)
	}
	return d, nil
}

func dictLabel(location string) string {
	if strings.TrimSpace(location) == "" {
		return DictIPA
	}
	return location
}
