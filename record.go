package docindex

// Record is a raw documentation record read from a container. It is one
// of LocalRecord, ModuleVariable, ModuleFunction or ModuleUnknown.
type Record interface {
	// Key returns the documented identifier.
	Key() string

	record()
}

// LocalRecord is a record from a local JSON dump or a generated API page.
// Description holds HTML.
type LocalRecord struct {
	Label       string
	Title       string
	Description string
	Meta        string
}

// ModuleVariable is a variable symbol from a remote module manifest.
type ModuleVariable struct {
	Module      string
	Label       string
	Type        string
	Description string
}

// ModuleFunction is a function symbol from a remote module manifest.
type ModuleFunction struct {
	Module      string
	Label       string
	Params      []Param
	ReturnType  string
	Description string
}

// ModuleUnknown is a manifest symbol of any other kind. It only reserves
// the name.
type ModuleUnknown struct {
	Module string
	Label  string
}

// Param is a declared parameter of a module function.
type Param struct {
	Name string
	Type string
}

func (r *LocalRecord) Key() string    { return r.Label }
func (r *ModuleVariable) Key() string { return r.Label }
func (r *ModuleFunction) Key() string { return r.Label }
func (r *ModuleUnknown) Key() string  { return r.Label }

func (*LocalRecord) record()    {}
func (*ModuleVariable) record() {}
func (*ModuleFunction) record() {}
func (*ModuleUnknown) record()  {}

// Manifest symbol kinds.
const (
	KindVariable = "variable"
	KindFunction = "function"
	KindUnknown  = "unknown"
)

// MetaForKind maps a manifest symbol kind onto an entry Meta.
func MetaForKind(kind string) Meta {
	switch kind {
	case KindVariable:
		return MetaConst
	case KindFunction:
		return MetaFunc
	default:
		return MetaUnknown
	}
}
