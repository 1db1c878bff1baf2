// Command lyrickana converts Japanese lyrics into a space-delimited hiragana
// reading for lyric-entry tools.
//
//	lyrickana convert lyrics.txt
//	pbpaste | lyrickana convert --merge-sokuon --keep-katakana
//	lyrickana inspect lyrics.txt
//	lyrickana toggle wa reading.txt
//	lyrickana config init
package main
