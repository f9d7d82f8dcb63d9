package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/textstats"
)

var (
	// ErrNotRegular signals that a path does not denote a regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrLoaderDone signals that a loader has already finished loading.
	ErrLoaderDone = errors.New("textfile: loader is done")
)

const (
	maxLineLength = 1024 * 1024 // longest line a loader accepts
	progressEvery = 256         // lines between progress messages
)

// Progress is broadcast to subscribers while a file is loading.
type Progress struct {
	Lines int   // number of lines read so far
	Bytes int64 // number of bytes read so far, including line terminators
	Size  int64 // size of the file at the time the loader was created
	Done  bool  // set for the final message of a successful load
}

// Loader reads a text file into a line statistics tree.
// A loader may be used for a single load only.
type Loader struct {
	Summarizer textstats.Summarizer // computes line summaries
	path       string
	info       os.FileInfo
	cast       *caster.Caster // broadcaster for progress messages
}

// NewLoader checks that name denotes a regular file and prepares loading it.
func NewLoader(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return &Loader{
		path: name,
		info: fi,
		cast: caster.New(nil), // we will broadcast messages while lines are loaded
	}, nil
}

// Subscribe returns a channel of progress messages for the next call to Load.
// The channel is closed after loading has finished or ctx is done.
//
// Intermediate messages are dropped for subscribers which do not keep up.
// The final message is delivered to every subscriber still listening, so
// subscribers have to either drain the channel or cancel ctx.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan Progress, error) {
	msgs, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrLoaderDone
	}
	out := make(chan Progress, capacity)
	go func() {
		defer close(out)
		for m := range msgs {
			p, ok := m.(Progress)
			if !ok {
				continue
			}
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Load reads the file line by line and creates a segment tree with one
// line summary per leaf. Loading stops early if ctx is done.
func (l *Loader) Load(ctx context.Context) (*segtree.Tree[textstats.Summary], error) {
	defer l.cast.Close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(l.path) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var consumed int64
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		consumed += int64(advance)
		return advance, token, err
	})
	leaves := make([]textstats.Summary, 0, 64)
	progress := Progress{Size: l.info.Size()}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			tracer().Infof("textfile: loading %s cancelled after %d lines", l.path, progress.Lines)
			return nil, err
		}
		line := scanner.Text()
		leaves = append(leaves, l.Summarizer.Summarize(line))
		progress.Lines++
		progress.Bytes = consumed
		if progress.Lines%progressEvery == 0 {
			l.cast.TryPub(progress)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("textfile: error loading %s: %s", l.path, err.Error())
		return nil, fmt.Errorf("error loading text file %s: %w", l.path, err)
	}
	progress.Bytes = consumed
	progress.Done = true
	l.cast.Pub(progress)
	tracer().Debugf("textfile: loaded %d lines from %s", progress.Lines, l.path)
	return segtree.New[textstats.Summary](textstats.Monoid{}, leaves)
}

// Load reads a text file and creates a line statistics tree for it,
// with one leaf per line.
func Load(name string) (*segtree.Tree[textstats.Summary], error) {
	loader, err := NewLoader(name)
	if err != nil {
		return nil, err
	}
	return loader.Load(context.Background())
}
