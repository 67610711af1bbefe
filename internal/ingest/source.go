package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

// ErrSourceMissing marks a relation file that does not exist. Load treats it
// as an empty relation set rather than a failure.
var ErrSourceMissing = errors.New("relation source not found")

var _ store.Source = (*FileSource)(nil)

// FileSource reads one text file per relation kind.
type FileSource struct {
	paths   map[parser.Kind]string
	phrases parser.Phrases
	skipped map[parser.Kind]int
	digests map[parser.Kind]string
}

func NewFileSource(friendships, plots string, phrases parser.Phrases) *FileSource {
	return &FileSource{
		paths: map[parser.Kind]string{
			parser.KindFriendship: friendships,
			parser.KindPlot:       plots,
		},
		phrases: phrases,
		skipped: make(map[parser.Kind]int),
		digests: make(map[parser.Kind]string),
	}
}

func (s *FileSource) Path(kind parser.Kind) string {
	return s.paths[kind]
}

func (s *FileSource) Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, ok := s.paths[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", parser.ErrUnknownKind, kind)
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: no %s file given", ErrSourceMissing, kind)
	}

	doc, err := parser.ParseFile(path, kind, s.phrases)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, err
	}
	s.skipped[kind] = doc.Skipped

	if digest, err := computeHash(path); err == nil {
		s.digests[kind] = digest
	}

	return doc.Relations, nil
}

// Skipped is the number of malformed lines dropped from the last read of kind.
func (s *FileSource) Skipped(kind parser.Kind) int {
	return s.skipped[kind]
}

func (s *FileSource) Digest(kind parser.Kind) string {
	return s.digests[kind]
}

func (s *FileSource) Close(ctx context.Context) error {
	return nil
}

func computeHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
