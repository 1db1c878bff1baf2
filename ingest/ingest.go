// Package ingest splits lyric input into lines and stamps each conversion
// request with an ID used to correlate logs and debug dumps.
package ingest

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Line is one "\n" or "\r\n" delimited unit of the input. Break holds the
// terminator that followed it, empty for the last line.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Break  string `json:"-"`
}

// Blank reports whether the line has nothing but whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Request represents one ingested input and its metadata.
type Request struct {
	ID        string    `json:"id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRequest splits input into lines and assigns a fresh request ID.
func NewRequest(input string) Request {
	return Request{
		ID:        uuid.NewString(),
		Lines:     Split(input),
		CreatedAt: time.Now().UTC(),
	}
}

// Split breaks input on "\n" and "\r\n". The result always has exactly one
// more element than input has line breaks; an empty input is one empty line.
func Split(input string) []Line {
	lines := make([]Line, 0, strings.Count(input, "\n")+1)
	number := 1
	for {
		idx := strings.IndexByte(input, '\n')
		if idx < 0 {
			lines = append(lines, Line{Number: number, Text: input})
			return lines
		}
		text, brk := input[:idx], "\n"
		if strings.HasSuffix(text, "\r") {
			text, brk = text[:len(text)-1], "\r\n"
		}
		lines = append(lines, Line{Number: number, Text: text, Break: brk})
		input = input[idx+1:]
		number++
	}
}

// Join writes texts[i] followed by the original break of lines[i]. Missing
// texts are written as empty lines so the line count never changes.
func Join(lines []Line, texts []string) string {
	var b strings.Builder
	for i, l := range lines {
		if i < len(texts) {
			b.WriteString(texts[i])
		}
		b.WriteString(l.Break)
	}
	return b.String()
}
