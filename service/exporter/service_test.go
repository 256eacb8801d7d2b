package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/runtime/solve"
)

func TestService_Render(t *testing.T) {
	session := grantedSession(t)
	svc := New()

	testCases := []struct {
		description string
		format      Format
		expect      string
	}{
		{
			description: "text listing",
			format:      FormatText,
			expect: "Picked reservations:\n" +
				"    Alice (2024-01-01 .. 2024-01-03)\n" +
				"    Bob (2024-01-02 .. 2024-01-04)\n",
		},
		{
			description: "empty format defaults to text",
			format:      "",
			expect: "Picked reservations:\n" +
				"    Alice (2024-01-01 .. 2024-01-03)\n" +
				"    Bob (2024-01-02 .. 2024-01-04)\n",
		},
		{
			description: "csv round-trips the loader shape",
			format:      FormatCSV,
			expect:      "2024-01-01;2024-01-03;\"Alice\"\n2024-01-02;2024-01-04;\"Bob\"\n",
		},
	}

	for _, testCase := range testCases {
		actual, err := svc.Render(session, testCase.format)
		assert.NoErrorf(t, err, testCase.description)
		assert.Equalf(t, testCase.expect, string(actual), testCase.description)
	}
}

func TestService_RenderJSON(t *testing.T) {
	session := grantedSession(t)
	data, err := New().Render(session, FormatJSON)
	assert.NoError(t, err)

	var decoded []*model.Reservation
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, len(decoded))
	assert.Equal(t, "Alice", decoded[0].Name)
	assert.Equal(t, "Bob", decoded[1].Name)
}

func TestService_RenderUnsupportedFormat(t *testing.T) {
	_, err := New().Render(grantedSession(t), "xml")
	assert.Error(t, err)
}

func TestService_Export(t *testing.T) {
	session := grantedSession(t)
	location := filepath.Join(t.TempDir(), "granted.csv")

	err := New().Export(context.Background(), session, FormatCSV, location)
	assert.NoError(t, err)

	data, err := os.ReadFile(location)
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01;2024-01-03;\"Alice\"\n2024-01-02;2024-01-04;\"Bob\"\n", string(data))
}

func grantedSession(t *testing.T) *solve.Session {
	t.Helper()
	alice, err := model.NewReservation("Alice",
		calendar.Day(2024, time.January, 1), calendar.Day(2024, time.January, 3))
	assert.NoError(t, err)
	bob, err := model.NewReservation("Bob",
		calendar.Day(2024, time.January, 2), calendar.Day(2024, time.January, 4))
	assert.NoError(t, err)

	session := &solve.Session{}
	session.Grant(alice)
	session.Grant(bob)
	return session
}
