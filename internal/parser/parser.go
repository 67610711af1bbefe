package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	DefaultFriendshipPhrase = " is friends with "
	DefaultPlotPhrase       = " is plotting against "
)

// Kind selects which relation a line describes.
type Kind string

const (
	KindFriendship Kind = "friendship"
	KindPlot       Kind = "plot"
)

func (k Kind) Valid() bool {
	return k == KindFriendship || k == KindPlot
}

// Relation is one parsed record: From is friends with / plotting against To.
type Relation struct {
	From string
	To   string
}

type Document struct {
	Kind      Kind
	Relations []Relation
	Skipped   int
	Lines     int
	Source    string
}

var (
	ErrEmptyPhrase = errors.New("relation phrase must not be empty")
	ErrUnknownKind = errors.New("unknown relation kind")
)

// Phrases maps each relation kind to the separator that splits its lines.
type Phrases struct {
	Friendship string
	Plot       string
}

func DefaultPhrases() Phrases {
	return Phrases{Friendship: DefaultFriendshipPhrase, Plot: DefaultPlotPhrase}
}

func (p Phrases) For(kind Kind) (string, error) {
	var phrase string
	switch kind {
	case KindFriendship:
		phrase = p.Friendship
	case KindPlot:
		phrase = p.Plot
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if phrase == "" {
		return "", ErrEmptyPhrase
	}
	return phrase, nil
}

// ParseLine splits a trimmed line on phrase. It reports false when the line
// does not split into exactly two non-empty names.
func ParseLine(line, phrase string) (Relation, bool) {
	if phrase == "" {
		return Relation{}, false
	}
	parts := strings.Split(strings.TrimSpace(line), phrase)
	if len(parts) != 2 {
		return Relation{}, false
	}
	if parts[0] == "" || parts[1] == "" {
		return Relation{}, false
	}
	return Relation{From: parts[0], To: parts[1]}, true
}

func ParseFile(path string, kind Kind, phrases Phrases) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f, kind, phrases)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

func Parse(r io.Reader, kind Kind, phrases Phrases) (*Document, error) {
	phrase, err := phrases.For(kind)
	if err != nil {
		return nil, err
	}

	doc := &Document{Kind: kind}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			doc.add(line, phrase)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// add records one raw line. Lines have no length limit; anything that does
// not split into two names is counted as skipped.
func (d *Document) add(line []byte, phrase string) {
	if d.Lines == 0 {
		line = bytes.TrimPrefix(line, []byte("\ufeff"))
	}
	d.Lines++
	if len(bytes.TrimSpace(line)) == 0 {
		return
	}
	rel, ok := ParseLine(string(line), phrase)
	if !ok {
		d.Skipped++
		return
	}
	d.Relations = append(d.Relations, rel)
}
