package textstats

import (
	"bufio"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Summary aggregates metrics for a range of lines.
type Summary struct {
	Lines     uint64
	Bytes     uint64 // without line terminators
	Runes     uint64
	Graphemes uint64
	Words     uint64
	MaxWidth  uint64 // display width of the widest line, in 'en'
}

// Monoid aggregates line summaries for segment tree internal nodes.
type Monoid struct{}

// Identity returns the empty summary.
func (Monoid) Identity() Summary { return Summary{} }

// Op combines two summaries.
func (Monoid) Op(left, right Summary) Summary {
	return Summary{
		Lines:     left.Lines + right.Lines,
		Bytes:     left.Bytes + right.Bytes,
		Runes:     left.Runes + right.Runes,
		Graphemes: left.Graphemes + right.Graphemes,
		Words:     left.Words + right.Words,
		MaxWidth:  max(left.MaxWidth, right.MaxWidth),
	}
}

var _ segtree.Monoid[Summary] = Monoid{}

// Summarizer computes line summaries. Context determines the display width
// of ambiguous East Asian characters; if it is nil, uax11.LatinContext is used.
type Summarizer struct {
	Context *uax11.Context
}

var setupGraphemes sync.Once

// Summarize computes the summary of a single line.
// A trailing line terminator is not counted.
func (s Summarizer) Summarize(line string) Summary {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Summary{Lines: 1}
	}
	ctx := s.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(line)
	return Summary{
		Lines:     1,
		Bytes:     uint64(len(line)),
		Runes:     uint64(utf8.RuneCountInString(line)),
		Graphemes: uint64(gstr.Len()),
		Words:     countWords(line),
		MaxWidth:  uint64(uax11.StringWidth(gstr, ctx)),
	}
}

// countWords counts the line-wrap segments of a line (UAX#14) which contain
// at least one letter, digit or symbol.
func countWords(line string) uint64 {
	if strings.TrimSpace(line) == "" {
		return 0
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(line)))
	var words uint64
	for segmenter.Next() {
		if strings.IndexFunc(string(segmenter.Bytes()), isWordRune) >= 0 {
			words++
		}
	}
	return words
}

func isWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsPunct(r)
}

// Summarize computes the summary of a single line in a Latin context.
func Summarize(line string) Summary {
	return Summarizer{}.Summarize(line)
}

// FromLines creates a segment tree with one leaf per line.
func (s Summarizer) FromLines(lines []string) (*segtree.Tree[Summary], error) {
	leaves := make([]Summary, len(lines))
	for i, line := range lines {
		leaves[i] = s.Summarize(line)
	}
	tracer().Debugf("textstats: summarized %d lines", len(lines))
	return segtree.New[Summary](Monoid{}, leaves)
}

// FromText splits text at newlines and creates a segment tree with one leaf
// per line. A trailing newline does not start an additional line.
func (s Summarizer) FromText(text string) (*segtree.Tree[Summary], error) {
	return s.FromLines(SplitLines(text))
}

// FromLines creates a segment tree with one leaf per line, in a Latin context.
func FromLines(lines []string) (*segtree.Tree[Summary], error) {
	return Summarizer{}.FromLines(lines)
}

// FromText creates a segment tree with one leaf per line of text, in a Latin
// context.
func FromText(text string) (*segtree.Tree[Summary], error) {
	return Summarizer{}.FromText(text)
}

// SplitLines splits text at '\n'. A trailing newline does not start an
// additional line, and an empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
