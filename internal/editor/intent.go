package editor

// Intent is a request from the UI layer. The UI only describes what the
// user asked for; the editor applies intents in order during Tick.
type Intent interface {
	isIntent()
}

type (
	NewMapIntent struct{}
	// SaveIntent saves to the current path, or raises a save-as request
	// when the document has none.
	SaveIntent   struct{}
	SaveAsIntent struct{ Path string }
	LoadIntent   struct{ Path string }
	// AddTextureIntent imports an image file from anywhere on disk.
	AddTextureIntent struct{ Source string }
	// ImportBytesIntent imports image data that has no usable source path,
	// such as a file dropped onto the window.
	ImportBytesIntent struct {
		Name string
		Data []byte
	}
	RescanIntent        struct{}
	SelectTextureIntent struct{ Index int }
	SelectCellIntent    struct{ X, Y int }
	SetModeIntent       struct{ Mode Mode }
	ToggleEraseIntent   struct{}
	ToggleFillIntent    struct{}
	ZoomIntent          struct{ Steps float64 }
	// PanIntent moves the camera by world pixels while free camera is on.
	PanIntent            struct{ DX, DY float64 }
	ToggleFreeCamIntent  struct{}
	DismissMissingIntent struct{}
)

func (NewMapIntent) isIntent()         {}
func (SaveIntent) isIntent()           {}
func (SaveAsIntent) isIntent()         {}
func (LoadIntent) isIntent()           {}
func (AddTextureIntent) isIntent()     {}
func (ImportBytesIntent) isIntent()    {}
func (RescanIntent) isIntent()         {}
func (SelectTextureIntent) isIntent()  {}
func (SelectCellIntent) isIntent()     {}
func (SetModeIntent) isIntent()        {}
func (ToggleEraseIntent) isIntent()    {}
func (ToggleFillIntent) isIntent()     {}
func (ZoomIntent) isIntent()           {}
func (PanIntent) isIntent()            {}
func (ToggleFreeCamIntent) isIntent()  {}
func (DismissMissingIntent) isIntent() {}
