package widgets

// Valuer is implemented by widgets that hold a bindable value (spec.md
// §4.7). Label and Divider, which are non-interactive, do not implement
// it. SPEC_FULL.md §12's Open Question decision keeps each widget's public
// accessor typed (Text.Value() string, CheckBox.Value() bool, ...); this
// interface is the `any`-erased view Frame's data map needs internally to
// treat every widget uniformly during Save/SetData.
type Valuer interface {
	Widget
	AnyValue() any
	SetAnyValue(any)
	// ZeroValue is the value Frame.SetData pushes into the widget when the
	// data map has no entry for its name (spec.md §4.7, Testable Property S6).
	ZeroValue() any
	// ValidateValue runs the widget's validator (if any) against its
	// current value, used by Frame.Save(validate=true) (spec.md §4.7).
	ValidateValue() bool
}
