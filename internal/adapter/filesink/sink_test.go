package filesink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "output"), "phone_numbers.html", "regtimes.html")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSink_SaveLetterCreatesDir(t *testing.T) {
	s := newTestSink(t)

	require.NoError(t, s.SaveLetter("1", "<p>Thanks Allison!</p>"))

	assert.Equal(t, filepath.Join(s.dir, "thanks_1.html"), s.LetterPath("1"))
	assert.Equal(t, "<p>Thanks Allison!</p>\n", readFile(t, s.LetterPath("1")))
}

func TestSink_SaveLetterOverwrites(t *testing.T) {
	s := newTestSink(t)

	require.NoError(t, s.SaveLetter("1", "first\n"))
	require.NoError(t, s.SaveLetter("1", "second\n"))

	assert.Equal(t, "second\n", readFile(t, s.LetterPath("1")))
}

func TestSink_LetterPathSanitizesID(t *testing.T) {
	s := newTestSink(t)

	assert.Equal(t, filepath.Join(s.dir, "thanks_.._etc.html"), s.LetterPath("../etc"))
}

func TestSink_PhoneLogResetThenAppend(t *testing.T) {
	s := newTestSink(t)

	for range 2 {
		require.NoError(t, s.ResetPhoneLog())
		require.NoError(t, s.SavePhoneNumber("Allison", "615-438-5000"))
		require.NoError(t, s.SavePhoneNumber("Sarah", "000-000-0000"))
	}

	assert.Equal(t, "Allison: 615-438-5000\nSarah: 000-000-0000\n", readFile(t, s.PhoneLogPath()))
}

func TestSink_ResetCreatesEmptyFile(t *testing.T) {
	s := newTestSink(t)

	require.NoError(t, s.ResetRegtimeReport())

	assert.Empty(t, readFile(t, s.RegtimeReportPath()))
}

func TestSink_RegtimeReportLines(t *testing.T) {
	s := newTestSink(t)

	require.NoError(t, s.ResetRegtimeReport())
	require.NoError(t, s.SaveRegHour(13, 3))
	require.NoError(t, s.SaveRegHour(9, 2))
	require.NoError(t, s.SaveRegDay(time.Wednesday, 4))
	require.NoError(t, s.SaveRegDay(time.Sunday, 1))

	assert.Equal(t,
		"Hour 13: 3 Registrations\nHour 9: 2 Registrations\nWednesday: 4 Registrations\nSunday: 1 Registrations\n",
		readFile(t, s.RegtimeReportPath()))
}

func TestSink_ExistingDirIsFine(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "phones.txt", "peaks.txt")

	require.NoError(t, s.ResetPhoneLog())
	require.NoError(t, s.SavePhoneNumber("Jo", "123-456-7890"))

	assert.Equal(t, "Jo: 123-456-7890\n", readFile(t, filepath.Join(dir, "phones.txt")))
}

func TestSink_DirBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	s := New(blocker, "phone_numbers.html", "regtimes.html")

	err := s.SaveLetter("1", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output dir")
}
