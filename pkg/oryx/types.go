package oryx

// Export is the keymap.json found in the source download of an Oryx layout.
// Only Layers is used for translation.
type Export struct {
	Keyboard string     `json:"keyboard" jsonschema:"description=Keyboard model the layout was made for"`
	Keymap   string     `json:"keymap"`
	Version  string     `json:"version,omitempty"`
	Author   string     `json:"author,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Layout   string     `json:"layout"`
	Layers   [][]string `json:"layers" jsonschema:"required,description=QMK key codes per layer in firmware key order"`
}

// wire form, Layers is a pointer so a missing field can be told apart from
// an empty one, and codes are pointers so null entries can be rejected
type rawExport struct {
	Keyboard string       `json:"keyboard"`
	Keymap   string       `json:"keymap"`
	Version  string       `json:"version"`
	Author   string       `json:"author"`
	Notes    string       `json:"notes"`
	Layout   string       `json:"layout"`
	Layers   *[][]*string `json:"layers"`
}
