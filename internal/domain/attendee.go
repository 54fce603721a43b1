package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Column keys read from a symbolized roster header.
const (
	ColumnFirstName = "first_name"
	ColumnZipcode   = "zipcode"
	ColumnHomePhone = "homephone"
	ColumnRegDate   = "regdate"
)

// RequiredColumns lists the header keys every roster must carry.
var RequiredColumns = []string{ColumnFirstName, ColumnZipcode, ColumnHomePhone, ColumnRegDate}

// AttendeeRecord is one roster row: the symbolized header keys in column order
// alongside the raw cell values. Headers is shared between rows of one source.
type AttendeeRecord struct {
	Line    int
	Headers []string
	Values  []string
}

// ID returns the first positional cell, the attendee identifier.
func (r AttendeeRecord) ID() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// Field returns the raw value of the first column whose key matches, or "" when
// the column is absent or the row is short.
func (r AttendeeRecord) Field(key string) string {
	for i, h := range r.Headers {
		if h != key {
			continue
		}
		if i < len(r.Values) {
			return r.Values[i]
		}
		return ""
	}
	return ""
}

// Attendee is the normalized view of a roster row used by the attendee pass.
type Attendee struct {
	ID        string
	FirstName string
	Zipcode   string
	HomePhone string
}

// ParseAttendee normalizes a roster row into an Attendee.
func ParseAttendee(rec AttendeeRecord) Attendee {
	return Attendee{
		ID:        rec.ID(),
		FirstName: Capitalize(rec.Field(ColumnFirstName)),
		Zipcode:   CleanZipcode(rec.Field(ColumnZipcode)),
		HomePhone: CleanPhoneNumber(rec.Field(ColumnHomePhone)),
	}
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// SymbolizeHeader converts header text to a column key: trimmed, lower-cased,
// characters other than letters, digits, "_" and whitespace removed, and
// whitespace runs replaced with "_".
func SymbolizeHeader(h string) string {
	h = strings.ToLower(h)
	h = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, h)
	return strings.Join(strings.Fields(h), "_")
}
