package domain

// IntakeLine is one echoed field: label plus raw value with its suffix.
type IntakeLine struct {
	Label string
	Value string
}

// IntakeEcho is one echoed section.
type IntakeEcho struct {
	Title string
	Lines []IntakeLine
}

// EchoIntake displays the intake fields exactly as entered, no calculations.
// A suffix is appended even to empty values, as the page did.
func (c *Catalogue) EchoIntake(r FieldReader) []IntakeEcho {
	out := make([]IntakeEcho, 0, len(c.Intake))
	for _, sec := range c.Intake {
		echo := IntakeEcho{Title: sec.Title, Lines: make([]IntakeLine, 0, len(sec.Fields))}
		for _, f := range sec.Fields {
			echo.Lines = append(echo.Lines, IntakeLine{Label: f.Label, Value: r.Get(f.ID) + f.Suffix})
		}
		out = append(out, echo)
	}
	return out
}
