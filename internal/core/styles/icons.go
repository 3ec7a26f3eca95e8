package styles

// Glyphs used by the dropdown and summary.
var (
	IconUnchecked = "[ ]"
	IconChecked   = "[x]"
	IconCursor    = ">"
	IconRemove    = "x"
	IconSearch    = "/"

	IconNotifyInfo    = "i"
	IconNotifyWarning = "!"
	IconNotifyError   = "x"
)
