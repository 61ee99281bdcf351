package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	assert.Equal(t, []string{"Mon", "Wed"}, Days("MW"))
	assert.Equal(t, []string{"Tue", "Thu"}, Days("TH"))
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, Days("MTWHFSU"))
	assert.Empty(t, Days(""))
	assert.Empty(t, Days("xyz"))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "01:00 PM", Clock("13:00"))
	assert.Equal(t, "09:00 AM", Clock("9:00"))
	assert.Equal(t, "12:30 PM", Clock("12:30"))
	assert.Equal(t, "12:05 AM", Clock("0:05"))

	// Unparseable strings pass through untouched.
	assert.Equal(t, "TBA", Clock("TBA"))
	assert.Equal(t, "", Clock(""))
}

func TestTimeToDecimal(t *testing.T) {
	hour, err := TimeToDecimal("01:50 PM")
	require.NoError(t, err)
	assert.InDelta(t, 13.8333, hour, 0.001)

	hour, err = TimeToDecimal("09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 9.0, hour)

	hour, err = TimeToDecimal("12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 12.0, hour)

	hour, err = TimeToDecimal("12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0.0, hour)
}

func TestTimeToDecimal_Invalid(t *testing.T) {
	for _, input := range []string{"", "TBA", "25:00 PM", "13:00"} {
		_, err := TimeToDecimal(input)
		assert.Error(t, err, input)
	}
}

func TestDecimalToTime(t *testing.T) {
	assert.Equal(t, "01:50 PM", DecimalToTime(13.8333333))
	assert.Equal(t, "09:00 AM", DecimalToTime(9.0))
	assert.Equal(t, "12:00 AM", DecimalToTime(0.0))
	assert.Equal(t, "10:30 AM", DecimalToTime(10.5))
}

func TestInstructors(t *testing.T) {
	assert.Equal(t, "N/A", Instructors(nil))
	assert.Equal(t, "Mark Redekopp", Instructors([][2]string{{"Mark", "Redekopp"}}))
	assert.Equal(t, "Mark Redekopp, Marco Paolieri", Instructors([][2]string{{"Mark", "Redekopp"}, {"Marco", "Paolieri"}}))
}
