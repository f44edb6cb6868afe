package overlay

// EventListener yields control lines of the form "event>>data".
type EventListener interface {
	ReadLine() (string, error)
}

// ExportReader returns the contents of the first candidate export that
// exists. A missing export is reported as found == false, not as an error.
type ExportReader interface {
	ReadBytes(candidates []string) (data []byte, found bool, err error)
}

// SettingsStore persists small string settings such as the current layer id.
type SettingsStore interface {
	GetString(key string) (value string, found bool, err error)
	SetString(key string, value string) error
}

type Renderer interface {
	Render(layer Layer) string
}

type Toggler interface {
	Toggle()
}

// ParseFunc turns an exported keymap into layers.
type ParseFunc func(data []byte) ([]Layer, error)
