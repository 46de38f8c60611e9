package domain

// FieldReader yields the current raw value of a named form field, or "" when
// the field is absent. url.Values satisfies it.
type FieldReader interface {
	Get(id string) string
}

// FieldValues is a FieldReader over a plain map, handy for tests and CLIs.
type FieldValues map[string]string

// Get returns the raw value for id.
func (v FieldValues) Get(id string) string { return v[id] }

// InputValue is one labelled raw value captured at save time.
type InputValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReadInputs captures the current values of a feature's fields, in catalogue
// order, keyed by their save labels. Values are read fresh on every call.
func ReadInputs(f Feature, r FieldReader) []InputValue {
	inputs := make([]InputValue, 0, len(f.Fields))
	for _, field := range f.Fields {
		inputs = append(inputs, InputValue{Label: field.SaveLabel, Value: r.Get(field.ID)})
	}
	return inputs
}
