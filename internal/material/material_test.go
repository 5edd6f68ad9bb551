package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		resistivity float64
		tcSuitable  bool
		wantErr     bool
	}{
		{name: "Kanthal A1", id: "Kanthal A1", resistivity: 1.45, tcSuitable: false},
		{name: "Nichrome Ni80", id: "Nichrome Ni80", resistivity: 1.09, tcSuitable: false},
		{name: "SS316L", id: "SS316L", resistivity: 0.75, tcSuitable: true},
		{name: "Ni200", id: "Ni200", resistivity: 0.70, tcSuitable: true},
		{name: "Titanium", id: "Titanium", resistivity: 0.42, tcSuitable: true},
		{name: "unknown id fails", id: "Copper", wantErr: true},
		{name: "empty id fails", id: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMaterial)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.id, m.ID)
			assert.Equal(t, tt.resistivity, m.ResistivityOhmMM)
			assert.Equal(t, tt.tcSuitable, m.TCSuitable)
			assert.NotEmpty(t, m.Note)
		})
	}
}

func TestGaugeDiameterMM(t *testing.T) {
	tests := []struct {
		awg     int
		want    float64
		wantErr bool
	}{
		{awg: 20, want: 0.8128},
		{awg: 22, want: 0.6438},
		{awg: 24, want: 0.511},
		{awg: 26, want: 0.405},
		{awg: 28, want: 0.321},
		{awg: 30, want: 0.255},
		{awg: 32, want: 0.202},
		{awg: 21, wantErr: true},
		{awg: 0, wantErr: true},
	}
	for _, tt := range tests {
		d, err := GaugeDiameterMM(tt.awg)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownGauge)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, d)
	}
}

func TestGaugesThickToThin(t *testing.T) {
	prev := 10.0
	for _, awg := range GaugesThickToThin {
		d, err := GaugeDiameterMM(awg)
		assert.NoError(t, err)
		assert.Less(t, d, prev, "gauges must be ordered thick to thin")
		prev = d
	}
	assert.Len(t, GaugesThickToThin, 7)
}

func TestAll(t *testing.T) {
	assert.Len(t, All(), 5)
}
