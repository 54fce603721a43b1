package csvfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/event-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoster = ` ,RegDate,first_Name,last_Name,Email_Address,HomePhone,Street,City,State,Zipcode
1,11/12/08 10:47,Allison,Nguyen,arannon@jumpstartlab.com,6154385000,3155 19th St NW,Washington,DC,20010
2,11/12/08 13:23,SArah,Hankins,pinalevitsky@jumpstartlab.com,414-520-5000,2022 15th Street NW,Washington,DC,20009
3,11/12/08 13:30,Sarah,Xx,lqrm4462@jumpstartlab.com,(941)979-2000,4175 3rd Street North,Saint Petersburg,FL,33703
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event_attendees.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readAll(t *testing.T, s *Source) []domain.AttendeeRecord {
	t.Helper()
	var recs []domain.AttendeeRecord
	for {
		rec, err := s.Next()
		if errors.Is(err, io.EOF) {
			return recs
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
}

func TestOpen_SymbolizesHeader(t *testing.T) {
	s, err := Open(writeRoster(t, sampleRoster))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, []string{
		"", "regdate", "first_name", "last_name", "email_address",
		"homephone", "street", "city", "state", "zipcode",
	}, s.Headers())
}

func TestSource_Next(t *testing.T) {
	s, err := Open(writeRoster(t, sampleRoster))
	require.NoError(t, err)
	defer s.Close()

	recs := readAll(t, s)
	require.Len(t, recs, 3)

	assert.Equal(t, "1", recs[0].ID())
	assert.Equal(t, "Allison", recs[0].Field(domain.ColumnFirstName))
	assert.Equal(t, "11/12/08 10:47", recs[0].Field(domain.ColumnRegDate))
	assert.Equal(t, 2, recs[0].Line)
	assert.Equal(t, "(941)979-2000", recs[2].Field(domain.ColumnHomePhone))
	assert.Equal(t, 4, recs[2].Line)
}

func TestSource_LineTracksMultilineCells(t *testing.T) {
	roster := ` ,RegDate,first_Name,HomePhone,Street,Zipcode
1,11/12/08 10:47,Allison,6154385000,"3155 19th St NW
Apt 2",20010
2,11/12/08 13:23,Sarah,414-520-5000,2022 15th Street NW,20009
`
	s, err := Open(writeRoster(t, roster))
	require.NoError(t, err)
	defer s.Close()

	recs := readAll(t, s)
	require.Len(t, recs, 2)
	assert.Equal(t, "3155 19th St NW\nApt 2", recs[0].Field("street"))
	assert.Equal(t, 2, recs[0].Line)
	assert.Equal(t, 4, recs[1].Line)

	require.NoError(t, s.Rewind())
	again := readAll(t, s)
	assert.Equal(t, 4, again[1].Line)
}

func TestSource_RewindReplaysRows(t *testing.T) {
	s, err := Open(writeRoster(t, sampleRoster))
	require.NoError(t, err)
	defer s.Close()

	first := readAll(t, s)
	require.NoError(t, s.Rewind())
	second := readAll(t, s)

	assert.Equal(t, first, second)
}

func TestSource_ShortRowsTolerated(t *testing.T) {
	content := "id,regdate,first_name,homephone,zipcode\n9,11/12/08 10:47,Jo\n"
	s, err := Open(writeRoster(t, content))
	require.NoError(t, err)
	defer s.Close()

	recs := readAll(t, s)
	require.Len(t, recs, 1)
	assert.Equal(t, "Jo", recs[0].Field(domain.ColumnFirstName))
	assert.Empty(t, recs[0].Field(domain.ColumnZipcode))
}

func TestOpen_MissingColumns(t *testing.T) {
	_, err := Open(writeRoster(t, "id,first_name,zipcode\n1,Allison,20010\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "homephone")
	assert.Contains(t, err.Error(), "regdate")
}

func TestOpen_EmptyFile(t *testing.T) {
	_, err := Open(writeRoster(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
