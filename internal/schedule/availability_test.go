package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAvailability(t *testing.T) {
	t.Run("block and booking collapse", func(t *testing.T) {
		got := BuildAvailability(
			[]Occupancy{{Date: "2025-01-01", Time: "9:00 AM", Duration: "2", Confirmed: true}},
			[]Block{{Date: "2025-01-01", Time: "9:00 AM"}},
		)
		assert.Equal(t, Availability{"2025-01-01": {"9:00 AM", "10:00 AM"}}, got)
	})

	t.Run("single slot bookings and ordering", func(t *testing.T) {
		got := BuildAvailability(
			[]Occupancy{
				{Date: "2025-02-03", Time: "4:00 PM", Confirmed: true},
				{Date: "2025-02-03", Time: "11:00 AM", Duration: "", Confirmed: true},
				{Date: "2025-02-04", Time: "1:00 PM", Duration: "0", Confirmed: true},
			},
			[]Block{{Date: "2025-02-03", Time: "9:00 AM"}},
		)
		assert.Equal(t, []string{"9:00 AM", "11:00 AM", "4:00 PM"}, got["2025-02-03"])
		assert.Equal(t, []string{"1:00 PM"}, got["2025-02-04"])
	})

	t.Run("unconfirmed bookings are ignored", func(t *testing.T) {
		got := BuildAvailability(
			[]Occupancy{{Date: "2025-03-01", Time: "2:00 PM", Duration: "4"}},
			nil,
		)
		assert.Empty(t, got)
	})

	t.Run("unparseable stored label sorts last", func(t *testing.T) {
		got := BuildAvailability(
			[]Occupancy{{Date: "2025-03-02", Time: "00:00 AM", Duration: "2", Confirmed: true}},
			[]Block{{Date: "2025-03-02", Time: "8:00 PM"}},
		)
		assert.Equal(t, []string{"8:00 PM", "00:00 AM"}, got["2025-03-02"])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, BuildAvailability(nil, nil))
	})
}

func TestAvailabilityContains(t *testing.T) {
	a := Availability{"2025-01-01": {"9:00 AM"}}
	assert.True(t, a.Contains("2025-01-01", "9:00 AM"))
	assert.False(t, a.Contains("2025-01-01", "10:00 AM"))
	assert.False(t, a.Contains("2025-01-02", "9:00 AM"))
}
