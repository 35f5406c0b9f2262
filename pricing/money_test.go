package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "dot", input: "8.50", want: "8.5"},
		{name: "comma", input: "8,50", want: "8.5"},
		{name: "euro suffix", input: " 12,00 € ", want: "12"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "acht", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParsePrice(testCase.input)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, got.String())
		})
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "13.50", FormatAmount(d("13.5")))
	assert.Equal(t, "13,50 €", FormatEUR(d("13.5")))
	assert.Equal(t, "0,00 €", FormatEUR(d("0")))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1350), ToMinorUnits(d("13.50")))
	assert.Equal(t, int64(1200), ToMinorUnits(d("12")))
	assert.Equal(t, int64(1), ToMinorUnits(d("0.005")))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 8.5, "b": "8,50", "c": null}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, "8.50", payload.A.StringFixed(2))
	assert.Equal(t, "8.50", payload.B.StringFixed(2))
	assert.True(t, payload.C.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"a": "acht"}`), &payload))
}
