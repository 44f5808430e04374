package selection

// Mode determines whether a widget holds at most one selected id or a set.
// It is fixed for the lifetime of a Machine, derived at construction from
// which controlled prop (value vs values) the host supplied.
type Mode int

const (
	Single Mode = iota
	Multi
)

// String returns the mode name for logging and config display.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// Value is the normalized external shape of a selection.
//
// In Single mode the selection is Single: nil means nothing chosen (reported
// as null), a non-nil pointer carries the id - which may legitimately be the
// empty string, a distinct state from absent. In Multi mode the selection is
// Multi: an ordered id sequence, empty but never nil when nothing is
// selected.
type Value struct {
	Mode   Mode
	Single *string
	Multi  []string
}

// SingleValue builds a Single-mode value. Pass nil for an absent selection.
func SingleValue(id *string) Value {
	return Value{Mode: Single, Single: id}
}

// MultiValue builds a Multi-mode value.
func MultiValue(ids []string) Value {
	if ids == nil {
		ids = []string{}
	}
	return Value{Mode: Multi, Multi: ids}
}

// Payload converts the value into the sync channel's argument shape:
// nil for an absent single selection, the bare id string for a present one,
// and an id slice (empty, not nil) for multi selections.
func (v Value) Payload() any {
	if v.Mode == Single {
		if v.Single == nil {
			return nil
		}
		return *v.Single
	}
	if v.Multi == nil {
		return []string{}
	}
	return v.Multi
}

// Equal reports whether two values are the same selection. For Multi values
// nil and empty compare equal; element order matters because the host
// supplies sequences, not sets.
func (v Value) Equal(o Value) bool {
	if v.Mode != o.Mode {
		return false
	}
	if v.Mode == Single {
		if (v.Single == nil) != (o.Single == nil) {
			return false
		}
		return v.Single == nil || *v.Single == *o.Single
	}
	if len(v.Multi) != len(o.Multi) {
		return false
	}
	for i := range v.Multi {
		if v.Multi[i] != o.Multi[i] {
			return false
		}
	}
	return true
}
