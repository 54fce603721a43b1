package domain

import (
	"context"
	"log/slog"
)

// FallbackMessage replaces the officials list whenever the lookup cannot answer.
const FallbackMessage = "You can find your representatives by visiting www.commoncause.org/take-action/find-elected-officials"

// Official is an elected representative returned by the civic directory.
type Official struct {
	Name     string
	Party    string
	Phones   []string
	URLs     []string
	Emails   []string
	PhotoURL string
}

// RepresentativeLookup finds national legislators for a normalized zipcode.
type RepresentativeLookup interface {
	LegislatorsByZipcode(ctx context.Context, zipcode string) ([]Official, error)
}

// Representatives is either a list of officials or an unavailable marker with
// an informational message. The zero value is an empty, available list.
type Representatives struct {
	officials   []Official
	message     string
	unavailable bool
}

// Officials wraps a lookup result.
func Officials(list []Official) Representatives {
	return Representatives{officials: list}
}

// Unavailable marks the officials as unknown, carrying msg for display.
func Unavailable(msg string) Representatives {
	return Representatives{message: msg, unavailable: true}
}

// Available reports whether the value holds an officials list.
func (r Representatives) Available() bool {
	return !r.unavailable
}

// List returns the officials; nil when unavailable.
func (r Representatives) List() []Official {
	return r.officials
}

// Message returns the unavailable message; empty when available.
func (r Representatives) Message() string {
	return r.message
}

// Names returns the display names of the officials.
func (r Representatives) Names() []string {
	names := make([]string, 0, len(r.officials))
	for _, o := range r.officials {
		names = append(names, o.Name)
	}
	return names
}

// LookupRepresentatives queries lookup for zipcode. A nil lookup or any lookup
// error yields Unavailable(FallbackMessage) so one failing attendee never stops
// the pass.
func LookupRepresentatives(ctx context.Context, lookup RepresentativeLookup, zipcode string, logger *slog.Logger) Representatives {
	if lookup == nil {
		return Unavailable(FallbackMessage)
	}

	officials, err := lookup.LegislatorsByZipcode(ctx, zipcode)
	if err != nil {
		logger.Warn("representative lookup failed",
			"zipcode", zipcode,
			"error", err,
		)
		return Unavailable(FallbackMessage)
	}
	return Officials(officials)
}
