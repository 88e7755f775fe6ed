package jobcard

// Event is the user interaction that triggered a card action.
type Event interface {
	// PreventDefault suppresses the control's own activation behavior,
	// such as following a link or submitting a form.
	PreventDefault()
	// StopPropagation keeps the event from reaching enclosing handlers.
	StopPropagation()
}

// HandleApply consumes e and reports apply intent for the card's job.
// It does nothing else when no OnApply callback was supplied.
func HandleApply(p Props, e Event) {
	delegate(p.ID, p.OnApply, e)
}

// HandleSave consumes e and reports save intent. Toggling the saved state
// is left to OnSave.
func HandleSave(p Props, e Event) {
	delegate(p.ID, p.OnSave, e)
}

func delegate(id string, cb Callback, e Event) {
	e.PreventDefault()
	e.StopPropagation()
	if cb != nil {
		cb(id)
	}
}
