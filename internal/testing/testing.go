// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/favsongs/internal/songs"
)

var _ songs.DataSource = (*StubSource)(nil)

// StubSource is a test double for [songs.DataSource] that records every query it answers.
//
// Title returns Err (when set) for the row at FailAt.
type StubSource struct {
	Rows   []string
	FailAt int
	Err    error

	SectionCalls int
	RowCalls     []int
	TitleCalls   []int
}

func NewStubSource(rows ...string) *StubSource {
	return &StubSource{Rows: rows, FailAt: -1}
}

func (s *StubSource) SectionCount() int {
	s.SectionCalls++
	return 1
}

func (s *StubSource) RowCount(section int) int {
	s.RowCalls = append(s.RowCalls, section)
	if section != 0 {
		return 0
	}
	return len(s.Rows)
}

func (s *StubSource) Title(index int) (string, error) {
	s.TitleCalls = append(s.TitleCalls, index)
	if s.Err != nil && index == s.FailAt {
		return "", s.Err
	}
	if index < 0 || index >= len(s.Rows) {
		return "", errors.New("stub: index out of range")
	}
	return s.Rows[index], nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
