// Package csvfile reads attendee rosters from CSV files with a header row.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/couchcryptid/event-manager/internal/domain"
)

// ErrMissingColumns is returned by Open when the header lacks a required column.
var ErrMissingColumns = errors.New("roster is missing required columns")

// Source is a rewindable roster reader. It implements pipeline.RecordSource.
type Source struct {
	file    *os.File
	reader  *csv.Reader
	headers []string
}

// Open opens the roster at path, symbolizes its header and checks that every
// domain.RequiredColumns key is present.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}

	s := &Source{file: f}
	if err := s.readHeader(); err != nil {
		f.Close()
		return nil, err
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if !slices.Contains(s.headers, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return s, nil
}

// Headers returns the symbolized column keys in file order.
func (s *Source) Headers() []string {
	return s.headers
}

// Next returns the next roster row, or io.EOF after the last one.
func (s *Source) Next() (domain.AttendeeRecord, error) {
	values, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.AttendeeRecord{}, io.EOF
		}
		return domain.AttendeeRecord{}, fmt.Errorf("read roster row: %w", err)
	}
	// Physical line where the record starts; quoted cells may span lines.
	line, _ := s.reader.FieldPos(0)

	return domain.AttendeeRecord{
		Line:    line,
		Headers: s.headers,
		Values:  values,
	}, nil
}

// Rewind repositions the reader at the first data row so the roster can be
// traversed again.
func (s *Source) Rewind() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind roster: %w", err)
	}
	return s.readHeader()
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

func (s *Source) readHeader() error {
	r := csv.NewReader(s.file)
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("read roster header: file is empty")
		}
		return fmt.Errorf("read roster header: %w", err)
	}

	s.headers = make([]string, len(header))
	for i, h := range header {
		s.headers[i] = domain.SymbolizeHeader(h)
	}
	s.reader = r
	return nil
}
