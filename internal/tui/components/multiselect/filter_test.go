package multiselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []bool
	}{
		{name: "empty shows all", text: "", want: []bool{true, true, true}},
		{name: "case insensitive", text: "BL", want: []bool{false, false, true}},
		{name: "substring anywhere", text: "e", want: []bool{true, true, true}},
		{name: "inner match", text: "ree", want: []bool{false, true, false}},
		{name: "no match", text: "purple", want: []bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []ChoiceRow{
				{Label: "Red", Checked: true},
				{Label: "Green"},
				{Label: "Blue", Checked: true},
			}

			ApplyFilter(tt.text, rows)

			got := make([]bool, len(rows))
			for i, r := range rows {
				got[i] = r.Visible
			}
			assert.Equal(t, tt.want, got)
			assert.True(t, rows[0].Checked, "checked state is untouched")
			assert.False(t, rows[1].Checked)
			assert.True(t, rows[2].Checked)
		})
	}
}
