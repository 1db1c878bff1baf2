package main

import (
	"github.com/spf13/cobra"

	"lyrickana/model"
)

// optionFlags mirrors model.Options. A flag only overrides the configured
// value when it was set on the command line.
type optionFlags struct {
	keepLatin    bool
	keepKatakana bool
	mergeYouon   bool
	mergeSokuon  bool
	split        bool
	spaceLatin   bool
	foldWidth    bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.keepLatin, "keep-latin", false, "Keep Latin runs verbatim")
	flags.BoolVar(&f.keepKatakana, "keep-katakana", false, "Keep katakana runs instead of converting them to hiragana")
	flags.BoolVar(&f.mergeYouon, "merge-youon", false, "Attach small ya/yu/yo and small vowels to the previous character")
	flags.BoolVar(&f.mergeSokuon, "merge-sokuon", false, "Attach small tsu to the previous character")
	flags.BoolVar(&f.split, "split", false, "Separate units with a single space")
	flags.BoolVar(&f.spaceLatin, "space-latin", false, "Space every character of kept Latin runs (requires --split)")
	flags.BoolVar(&f.foldWidth, "fold-width", false, "Fold full-width ASCII and half-width katakana before conversion")
}

func (f *optionFlags) apply(cmd *cobra.Command, opts model.Options) model.Options {
	flags := cmd.Flags()
	set := func(name string, dst *bool, v bool) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("keep-latin", &opts.KeepLatin, f.keepLatin)
	set("keep-katakana", &opts.KeepKatakana, f.keepKatakana)
	set("merge-youon", &opts.MergeYouon, f.mergeYouon)
	set("merge-sokuon", &opts.MergeSokuon, f.mergeSokuon)
	set("split", &opts.SplitWithSpace, f.split)
	set("space-latin", &opts.SpaceLatinInternally, f.spaceLatin)
	set("fold-width", &opts.FoldWidth, f.foldWidth)
	if !opts.SplitWithSpace {
		opts.SpaceLatinInternally = false
	}
	return opts
}
