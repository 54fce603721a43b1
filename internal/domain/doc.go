// Package domain models event attendee registrations and the rules used to
// turn a raw roster row into a thank-you letter and registration statistics.
//
// # Data Source
//
// Attendee rosters are CSV files exported from the event registration system.
// The header row is symbolized (trimmed, lower-cased, punctuation dropped,
// whitespace runs joined with "_") so "first_Name" and "First Name" both map
// to first_name. The first column carries the attendee identifier regardless
// of its header text, which is usually blank.
//
// # Field Conventions
//
// Zipcode:
//
//	Left-padded with "0" to five characters, then truncated to five.
//	"2021" → "02021", "" → "00000", "802191234" → "80219".
//	Non-numeric input is padded and truncated the same way; no validation.
//
// Home phone:
//
//	Every non-digit is removed, then:
//	  fewer than 10 digits            → sentinel "000-000-0000"
//	  11 digits with a leading "1"    → leading "1" dropped, formatted
//	  more than 10 digits otherwise   → sentinel
//	  exactly 10 digits               → "DDD-DDD-DDDD"
//	An 11-digit number not starting with "1" is always the sentinel.
//
// Registration date:
//
//	"YY/D/M H:MM": year, day of month, month, 24-hour hour and minute, each
//	one or two digits; day and hour may be space-padded. "08/11/2 9:07" is
//	2008-02-11 09:07 and "2/2/09 11:29" is 2002-09-02 11:29. Years 69–99 are
//	19xx, 00–68 are 20xx.
//
// # Representatives
//
// The civic directory is queried by normalized zipcode for national-level
// upper and lower legislative body officials. The result is a tagged value:
// either the officials list (possibly empty) or an unavailable marker carrying
// [FallbackMessage]. Lookup failures never abort a run; see [LookupRepresentatives].
//
// # Peak Reports
//
// Registration times are bucketed by hour of day and by weekday. The report
// lists the top buckets by count; equal counts are ordered by ascending bucket
// key (hour 0–23, Sunday through Saturday).
package domain
