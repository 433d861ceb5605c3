package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"required,notblank,min=4,max=10"`
	Phone string  `validate:"required,phone"`
	Flag  string  `validate:"required,mainflag"`
	Score float32 `validate:"gte=0,lte=10"`
}

func validSample() sample {
	return sample{Name: "Hamlet", Phone: "+44-12-345-6789", Flag: "true", Score: 0}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(validSample()))

	cases := map[string]func(*sample){
		"blank name":       func(s *sample) { s.Name = "      " },
		"short name":       func(s *sample) { s.Name = "abc" },
		"long name":        func(s *sample) { s.Name = "abcdefghijk" },
		"missing phone":    func(s *sample) { s.Phone = "" },
		"foreign prefix":   func(s *sample) { s.Phone = "+45-12-345-6789" },
		"trailing digits":  func(s *sample) { s.Phone = "+44-12-345-67890" },
		"phone suffix":     func(s *sample) { s.Phone = "+44-12-345-6789 x" },
		"upper flag":       func(s *sample) { s.Flag = "TRUE" },
		"flag suffix":      func(s *sample) { s.Flag = "true-ish" },
		"score over range": func(s *sample) { s.Score = 10.5 },
		"negative score":   func(s *sample) { s.Score = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := validSample()
			mutate(&s)
			assert.False(t, Valid(s))
		})
	}
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	v, ok := ParseFlag("true")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = ParseFlag(" False ")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = ParseFlag("yes")
	assert.False(t, ok)
}

func TestParseSpan(t *testing.T) {
	t.Parallel()

	d, err := ParseSpan("01:30:00")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = ParseSpan("2:05:09")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+5*time.Minute+9*time.Second, d)

	d, err = ParseSpan("1.02:00:00.5")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour+500*time.Millisecond, d)

	d, err = ParseSpan("-00:10:00")
	require.NoError(t, err)
	assert.Equal(t, -10*time.Minute, d)

	for _, bad := range []string{"", "90", "1:30", "24:00:00", "01:60:00", "01:00:60", "aa:bb:cc", "01:00:00pm"} {
		_, err := ParseSpan(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01:30:00", FormatSpan(90*time.Minute))
	assert.Equal(t, "23:59:59", FormatSpan(23*time.Hour+59*time.Minute+59*time.Second))
	assert.Equal(t, "1.02:03:04", FormatSpan(26*time.Hour+3*time.Minute+4*time.Second))
	assert.Equal(t, "00:00:01.5000000", FormatSpan(1500*time.Millisecond))
	assert.Equal(t, "-00:10:00", FormatSpan(-10*time.Minute))
}

func TestSpanRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"01:00:00", "03:15:45", "23:59:59"} {
		d, err := ParseSpan(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatSpan(d))
	}
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, InRange(5, 1, 5))
	assert.True(t, InRange(int8(1), 1, 5))
	assert.False(t, InRange(0.5, 1.0, 5.0))
}
