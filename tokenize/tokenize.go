package tokenize

import (
	"context"
	"errors"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"lyrickana/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Tokenizer wraps a kagome tokenizer built over one dictionary.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New builds a tokenizer for d, omitting the BOS/EOS dummy tokens.
func New(d *dict.Dict) (*Tokenizer, error) {
	if d == nil {
		return nil, errors.New("tokenize: nil dictionary")
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Tokenizer{kg: kg}, nil
}

// Tokenize uses kagome to produce tokens for the input text (normal mode).
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return convertKagomeTokens(t.kg.Tokenize(text)), nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		pron, ok := kt.Pronunciation()
		if !ok || pron == "*" {
			pron = ""
		}
		out = append(out, Token{
			Text:          kt.Surface,
			Lemma:         lemma,
			POS:           strings.Join(kt.POS(), ","),
			Start:         kt.Start,
			End:           kt.End,
			Reading:       reading,
			Pronunciation: pron,
			TokenID:       kt.ID,
			Known:         kt.Class == tokenizer.KNOWN || kt.Class == tokenizer.USER,
		})
	}
	return out
}
