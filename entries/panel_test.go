package entries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ircama/construct-editor/entries"
)

func TestIntegerPanelParse(t *testing.T) {
	p := entries.IntegerPanel{}

	tests := []struct {
		name string
		in   string
		want any
	}{
		{"decimal", "42", int64(42)},
		{"negative", "-7", int64(-7)},
		{"hex", "0x12C", int64(300)},
		{"octal", "0o17", int64(15)},
		{"binary", "0b101", int64(5)},
		{"padded", "  8  ", int64(8)},
		{"empty", "", int64(0)},
		{"text passes through", "garbage", "garbage"},
		{"fraction passes through", "12.5", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.in))
		})
	}
}

func TestChoicePanelParse(t *testing.T) {
	p := entries.ChoicePanel{Choices: []entries.Choice{
		{Value: 6, Name: "TCP"},
		{Value: 17, Name: "UDP"},
	}}

	tests := []struct {
		name string
		in   string
		want any
	}{
		{"code", "17", int64(17)},
		{"display form", "17 (UDP)", int64(17)},
		{"hex code", "0x11", int64(17)},
		{"symbol name", "UDP", int64(17)},
		{"empty", "", int64(0)},
		{"unknown passes through", "nonsense", "nonsense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.in))
		})
	}
}

func TestChoiceDisplay(t *testing.T) {
	assert.Equal(t, "6 (TCP)", entries.Choice{Value: 6, Name: "TCP"}.Display())
}

func TestFlagsPanelCompose(t *testing.T) {
	p := entries.FlagsPanel{Flags: []entries.FlagState{
		{Name: "ack", Value: 1, Set: true},
		{Name: "syn", Value: 2, Set: false},
		{Name: "fin", Value: 4, Set: true},
	}}

	// Exactly the named flags come out set; unknown names are dropped.
	assert.Equal(t, map[string]any{
		"ack": true,
		"syn": true,
		"fin": false,
	}, p.Compose([]string{"syn", "ack", "nope"}))

	assert.Equal(t, map[string]any{
		"ack": false,
		"syn": false,
		"fin": false,
	}, p.Compose(nil))
}

func TestTimestampPanelCompose(t *testing.T) {
	p := entries.TimestampPanel{}

	got, err := p.Compose("2020-01-02", "03:04:05")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02 03:04:05 +0000", got.Format("2006-01-02 15:04:05 -0700"))

	// The composed timestamp stays in the current value's location.
	p.Value = time.Date(2019, 6, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))
	got, err = p.Compose("2020-01-02", "03:04:05")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02 03:04:05 +0100", got.Format("2006-01-02 15:04:05 -0700"))

	_, err = p.Compose("2nd of January", "03:04:05")
	assert.Error(t, err)

	_, err = p.Compose("2020-01-02", "3 in the morning")
	assert.Error(t, err)
}
