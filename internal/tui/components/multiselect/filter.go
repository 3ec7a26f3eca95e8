package multiselect

import "strings"

// ApplyFilter marks each row visible when its label contains text, ignoring
// case. An empty text shows every row. Only Visible is written.
func ApplyFilter(text string, rows []ChoiceRow) {
	needle := strings.ToLower(text)
	for i := range rows {
		rows[i].Visible = strings.Contains(strings.ToLower(rows[i].Label), needle)
	}
}
