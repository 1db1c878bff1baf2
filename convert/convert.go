// Package convert runs the per-line pipeline: protect Latin and katakana
// spans, read the rest through the reading provider, put the spans back,
// then merge and space the result.
//
// Lines are converted one after another and written back with their
// original line breaks, so the output always has as many lines as the
// input. A provider failure aborts the whole conversion; no partial output
// is returned.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"lyrickana/ingest"
	"lyrickana/kana"
	"lyrickana/logger"
	"lyrickana/model"
	"lyrickana/protect"
	"lyrickana/reading"
	"lyrickana/segment"
)

// ErrConversion marks a line the reading provider rejected.
var ErrConversion = errors.New("reading conversion failed")

// LineError reports the line on which conversion failed.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %v", e.Line, ErrConversion, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) Is(target error) bool { return target == ErrConversion }

// LineReport describes how one line was converted.
type LineReport struct {
	Number int                   `json:"number"`
	Input  string                `json:"input"`
	Spans  []model.ProtectedSpan `json:"spans,omitempty"`
	Units  []segment.Unit        `json:"units,omitempty"`
	Output string                `json:"output"`
}

// Result is a finished conversion.
type Result struct {
	RequestID string        `json:"request_id"`
	Options   model.Options `json:"options"`
	Lines     []LineReport  `json:"lines"`
	Output    string        `json:"output"`
}

// Converter orchestrates the pipeline around a reading provider handle.
type Converter struct {
	handle *reading.Handle
	log    *slog.Logger
}

// New returns a converter. A nil logger discards.
func New(handle *reading.Handle, log *slog.Logger) *Converter {
	if log == nil {
		log = logger.Discard()
	}
	return &Converter{handle: handle, log: log.With(slog.String("component", "convert"))}
}

// Convert returns the reading of input.
func (c *Converter) Convert(ctx context.Context, input string, opts model.Options) (string, error) {
	res, err := c.Run(ctx, ingest.NewRequest(input), opts)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Inspect returns the per-line breakdown of a conversion.
func (c *Converter) Inspect(ctx context.Context, input string, opts model.Options) ([]LineReport, error) {
	res, err := c.Run(ctx, ingest.NewRequest(input), opts)
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}

// Run converts every line of req.
func (c *Converter) Run(ctx context.Context, req ingest.Request, opts model.Options) (Result, error) {
	log := c.log.With(slog.String("request_id", req.ID))

	provider, err := c.handle.Get(ctx)
	if err != nil {
		log.Warn("reading provider unavailable", slog.Any("error", err))
		return Result{}, fmt.Errorf("convert: %w", err)
	}

	reports := make([]LineReport, 0, len(req.Lines))
	outputs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		report, err := convertLine(ctx, provider, line, opts)
		if err != nil {
			log.Warn("line conversion failed", slog.Int("line", line.Number), slog.Any("error", err))
			return Result{}, err
		}
		log.Debug("line converted",
			slog.Int("line", report.Number),
			slog.Int("spans", len(report.Spans)),
			slog.Int("units", len(report.Units)),
		)
		reports = append(reports, report)
		outputs = append(outputs, report.Output)
	}

	log.Info("conversion complete", slog.Int("lines", len(reports)))
	return Result{
		RequestID: req.ID,
		Options:   opts,
		Lines:     reports,
		Output:    ingest.Join(req.Lines, outputs),
	}, nil
}

func convertLine(ctx context.Context, provider reading.Provider, line ingest.Line, opts model.Options) (LineReport, error) {
	report := LineReport{Number: line.Number, Input: line.Text}
	if line.Blank() {
		return report, nil
	}

	text := line.Text
	if opts.FoldWidth {
		text = kana.FoldWidth(text)
	}
	p := protect.Protect(text, opts)
	report.Spans = p.Spans

	merger := segment.NewMerger(opts)
	var flat strings.Builder
	for _, seg := range p.Segments {
		switch seg.Class {
		case model.SpanLatin:
			merger.AddLatin(seg.Text)
			flat.WriteString(seg.Text)
		case model.SpanKatakana:
			merger.Add(seg.Text)
			flat.WriteString(seg.Text)
		default:
			hira, err := readSegment(ctx, provider, seg.Text)
			if err != nil {
				return LineReport{}, &LineError{Line: line.Number, Err: err}
			}
			merger.Add(hira)
			flat.WriteString(hira)
		}
	}

	report.Units = merger.Units()
	if opts.SplitWithSpace {
		report.Output = segment.Join(report.Units, true)
	} else {
		report.Output = flat.String()
	}
	return report, nil
}

// readSegment reads one plain segment. Whitespace in the provider's output
// is dropped; spacing the user cares about lives in protected spans.
func readSegment(ctx context.Context, provider reading.Provider, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	hira, err := provider.Convert(ctx, text)
	if err != nil {
		return "", err
	}
	return segment.StripSpace(hira), nil
}
