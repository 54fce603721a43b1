package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/event-manager/internal/domain"
	"github.com/couchcryptid/event-manager/internal/observability"
)

// RecordSource yields roster rows and can be rewound for a second traversal.
type RecordSource interface {
	// Next returns io.EOF after the last row.
	Next() (domain.AttendeeRecord, error)
	Rewind() error
}

// Renderer turns letter data into a document body.
type Renderer interface {
	Render(l domain.Letter) (string, error)
}

// Sink persists letters, the phone log and the registration-time report.
type Sink interface {
	SaveLetter(id, body string) error
	ResetPhoneLog() error
	SavePhoneNumber(name, phone string) error
	ResetRegtimeReport() error
	SaveRegHour(hour, count int) error
	SaveRegDay(day time.Weekday, count int) error
}

// Summary reports what a run did.
type Summary struct {
	Attendees        int
	LettersWritten   int
	InvalidPhones    int
	LookupFallbacks  int
	Registrations    int
	SkippedRegDates  int
	AttendeeDuration time.Duration
	RegtimeDuration  time.Duration
}

// Pipeline runs the attendee pass and the time pass over one roster.
type Pipeline struct {
	source   RecordSource
	lookup   domain.RepresentativeLookup
	renderer Renderer
	sink     Sink
	logger   *slog.Logger
	metrics  *observability.Metrics
	topN     int
	done     atomic.Bool
}

// New creates a Pipeline. A nil lookup renders every letter with the fallback
// officials message. topN is the number of peak buckets reported per histogram.
func New(source RecordSource, lookup domain.RepresentativeLookup, renderer Renderer, sink Sink, logger *slog.Logger, metrics *observability.Metrics, topN int) *Pipeline {
	return &Pipeline{
		source:   source,
		lookup:   lookup,
		renderer: renderer,
		sink:     sink,
		logger:   logger,
		metrics:  metrics,
		topN:     topN,
	}
}

// CheckReadiness returns nil once a full run has completed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.done.Load() {
		return errors.New("run has not completed yet")
	}
	return nil
}

// Run executes the attendee pass, rewinds the source, then executes the time pass.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	var summary Summary
	if err := p.ProcessAttendees(ctx, &summary); err != nil {
		return summary, err
	}

	if err := p.source.Rewind(); err != nil {
		return summary, err
	}

	if err := p.ProcessRegistrationTimes(ctx, &summary); err != nil {
		return summary, err
	}

	p.done.Store(true)
	p.logger.Info("run complete",
		"attendees", summary.Attendees,
		"letters", summary.LettersWritten,
		"invalid_phones", summary.InvalidPhones,
		"lookup_fallbacks", summary.LookupFallbacks,
		"registrations", summary.Registrations,
		"skipped_regdates", summary.SkippedRegDates,
	)
	return summary, nil
}

// ProcessAttendees resets the phone log, then for every row normalizes the
// attendee, looks up representatives, writes the letter and appends the phone
// number. Any error other than a lookup failure stops the pass; rows already
// written stay on disk.
func (p *Pipeline) ProcessAttendees(ctx context.Context, summary *Summary) error {
	start := domain.Now()
	p.logger.Info("attendee pass started")

	if err := p.sink.ResetPhoneLog(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("attendee pass: %w", err)
		}

		rec, err := p.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("attendee pass: %w", err)
		}

		if err := p.processAttendee(ctx, rec, summary); err != nil {
			return fmt.Errorf("attendee pass row %d: %w", rec.Line, err)
		}
	}

	summary.AttendeeDuration = domain.Since(start)
	p.metrics.PassDuration.WithLabelValues("attendees").Observe(summary.AttendeeDuration.Seconds())
	p.logger.Info("attendee pass finished",
		"attendees", summary.Attendees,
		"duration", summary.AttendeeDuration,
	)
	return nil
}

func (p *Pipeline) processAttendee(ctx context.Context, rec domain.AttendeeRecord, summary *Summary) error {
	attendee := domain.ParseAttendee(rec)
	summary.Attendees++
	p.metrics.AttendeesProcessed.Inc()

	reps := domain.LookupRepresentatives(ctx, p.lookup, attendee.Zipcode, p.logger)
	if !reps.Available() {
		summary.LookupFallbacks++
		p.metrics.LookupFallbacks.Inc()
	}

	body, err := p.renderer.Render(domain.NewLetter(attendee, reps))
	if err != nil {
		return err
	}
	if err := p.sink.SaveLetter(attendee.ID, body); err != nil {
		return err
	}
	summary.LettersWritten++
	p.metrics.LettersWritten.Inc()

	if attendee.HomePhone == domain.InvalidPhoneNumber {
		summary.InvalidPhones++
		p.metrics.InvalidPhones.Inc()
	}
	return p.sink.SavePhoneNumber(attendee.FirstName, attendee.HomePhone)
}

// ProcessRegistrationTimes resets the registration-time report, tallies every
// row's regdate by hour and weekday, then writes the top hours followed by the
// top weekdays. Rows whose regdate does not parse are logged and skipped.
func (p *Pipeline) ProcessRegistrationTimes(ctx context.Context, summary *Summary) error {
	start := domain.Now()
	p.logger.Info("time pass started")

	if err := p.sink.ResetRegtimeReport(); err != nil {
		return err
	}

	peaks := domain.NewRegistrationPeaks()
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("time pass: %w", err)
		}

		rec, err := p.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("time pass: %w", err)
		}

		regTime, err := domain.ParseRegistrationTime(rec.Field(domain.ColumnRegDate))
		if err != nil {
			p.logger.Warn("skipping unparsable regdate",
				"line", rec.Line,
				"id", rec.ID(),
				"error", err,
			)
			summary.SkippedRegDates++
			p.metrics.RegDateErrors.Inc()
			continue
		}
		peaks.Add(regTime)
		summary.Registrations++
		p.metrics.RegistrationsTally.Inc()
	}

	for _, b := range peaks.Hours.Top(p.topN) {
		if err := p.sink.SaveRegHour(b.Key, b.Count); err != nil {
			return err
		}
	}
	for _, b := range peaks.Weekdays.Top(p.topN) {
		if err := p.sink.SaveRegDay(b.Key, b.Count); err != nil {
			return err
		}
	}

	summary.RegtimeDuration = domain.Since(start)
	p.metrics.PassDuration.WithLabelValues("regtimes").Observe(summary.RegtimeDuration.Seconds())
	p.logger.Info("time pass finished",
		"registrations", summary.Registrations,
		"skipped", summary.SkippedRegDates,
		"duration", summary.RegtimeDuration,
	)
	return nil
}
