// Package widget ties the selection machine, filter engine and sync emitter
// together behind a single controller facade. It is the only package with an
// external surface; presentation layers call into it and render what it
// exposes.
package widget

import (
	"github.com/dropsel/dropsel/internal/choice"
	"github.com/dropsel/dropsel/internal/errors"
	"github.com/dropsel/dropsel/internal/selection"
)

// PopupMode overrides the automatic inline-vs-dialog decision.
type PopupMode string

const (
	PopupAuto   PopupMode = "auto"
	PopupAlways PopupMode = "always"
	PopupNever  PopupMode = "never"
)

// ValidPopupMode reports whether s names a popup mode. The empty string is
// accepted and treated as auto.
func ValidPopupMode(s string) bool {
	switch PopupMode(s) {
	case PopupAuto, PopupAlways, PopupNever, "":
		return true
	}
	return false
}

// Options is the construction configuration of a widget instance.
//
// Exactly one of Value and Values may be supplied: a non-nil Value selects
// Single mode, a non-nil Values selects Multi mode. Neither means Single
// mode with an absent initial selection. The mode is fixed for the
// widget's lifetime.
type Options struct {
	Name    string          // sync channel key, required
	Choices []choice.Choice // choice registry contents
	Value   *string         // controlled initial selection, Single mode
	Values  []string        // controlled initial selection, Multi mode
	Trigger bool            // request a host round-trip on user edits
	Popup   PopupMode       // inline/dialog override, default auto
}

// Validate checks the options, collecting every violation.
func (o Options) Validate() error {
	me := &errors.MultiError{}

	if o.Name == "" {
		me.Append(errors.NewValidationError("name", "", "widget name is required"))
	}
	if o.Value != nil && o.Values != nil {
		me.Append(errors.NewValidationError("value", *o.Value,
			"value and values are mutually exclusive"))
	}
	if !ValidPopupMode(string(o.Popup)) {
		me.Append(errors.NewValidationError("popup", string(o.Popup),
			"must be always, auto, or never"))
	}

	return me.ErrorOrNil()
}

// mode derives the fixed selection mode from which controlled prop is
// present.
func (o Options) mode() selection.Mode {
	if o.Values != nil {
		return selection.Multi
	}
	return selection.Single
}

// initialValue builds the construction-time controlled value.
func (o Options) initialValue() selection.Value {
	if o.mode() == selection.Multi {
		return selection.MultiValue(o.Values)
	}
	return selection.SingleValue(o.Value)
}
