package widget

// Presentation is how the widget offers its choices: an inline combobox or
// a modal checklist dialog.
type Presentation int

const (
	Inline Presentation = iota
	Dialog
)

// String returns the presentation name for logging and config display.
func (p Presentation) String() string {
	if p == Dialog {
		return "dialog"
	}
	return "inline"
}

// DialogThreshold is the choice count above which the widget switches to the
// dialog presentation when no override is given.
const DialogThreshold = 100

// PresentationFor derives the presentation from the choice count and the
// popup override. The override wins; auto (or unset) picks the dialog for
// large lists.
func PresentationFor(choiceCount int, popup PopupMode) Presentation {
	switch popup {
	case PopupAlways:
		return Dialog
	case PopupNever:
		return Inline
	default:
		if choiceCount > DialogThreshold {
			return Dialog
		}
		return Inline
	}
}
