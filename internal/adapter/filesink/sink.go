// Package filesink writes letters, the phone log and the registration-time
// report as flat files under one output directory.
package filesink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sink writes run artifacts under Dir. It implements pipeline.Sink.
type Sink struct {
	dir           string
	phoneLog      string
	regtimeReport string
}

// New creates a Sink writing into dir. phoneLog and regtimeReport are file
// names relative to dir.
func New(dir, phoneLog, regtimeReport string) *Sink {
	return &Sink{dir: dir, phoneLog: phoneLog, regtimeReport: regtimeReport}
}

// LetterPath returns the file a letter for id is written to.
func (s *Sink) LetterPath(id string) string {
	return filepath.Join(s.dir, "thanks_"+sanitizeID(id)+".html")
}

// PhoneLogPath returns the phone log location.
func (s *Sink) PhoneLogPath() string {
	return filepath.Join(s.dir, s.phoneLog)
}

// RegtimeReportPath returns the registration-time report location.
func (s *Sink) RegtimeReportPath() string {
	return filepath.Join(s.dir, s.regtimeReport)
}

// SaveLetter writes a rendered letter, replacing any previous one for id.
func (s *Sink) SaveLetter(id, body string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if err := os.WriteFile(s.LetterPath(id), []byte(body), filePerm); err != nil {
		return fmt.Errorf("save letter %s: %w", id, err)
	}
	return nil
}

// ResetPhoneLog truncates the phone log.
func (s *Sink) ResetPhoneLog() error {
	return s.truncate(s.PhoneLogPath())
}

// SavePhoneNumber appends "<name>: <phone>" to the phone log.
func (s *Sink) SavePhoneNumber(name, phone string) error {
	return s.appendLine(s.PhoneLogPath(), fmt.Sprintf("%s: %s", name, phone))
}

// ResetRegtimeReport truncates the registration-time report.
func (s *Sink) ResetRegtimeReport() error {
	return s.truncate(s.RegtimeReportPath())
}

// SaveRegHour appends "Hour <h>: <count> Registrations" to the report.
func (s *Sink) SaveRegHour(hour, count int) error {
	return s.appendLine(s.RegtimeReportPath(), fmt.Sprintf("Hour %d: %d Registrations", hour, count))
}

// SaveRegDay appends "<Weekday>: <count> Registrations" to the report.
func (s *Sink) SaveRegDay(day time.Weekday, count int) error {
	return s.appendLine(s.RegtimeReportPath(), fmt.Sprintf("%s: %d Registrations", day, count))
}

func (s *Sink) ensureDir() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

func (s *Sink) truncate(path string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("reset %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func (s *Sink) appendLine(path, line string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// sanitizeID keeps letter files inside the output directory.
func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, id)
}
