package calldata

// NewCallObject builds the map passed to a contract method or constructor.
// The "method" entry is omitted for constructors (empty method), and "args"
// and "kwargs" are omitted when empty.
func NewCallObject(method string, args []Value, kwargs map[string]Value) Map {
	obj := make(Map, 3)
	if method != "" {
		obj["method"] = Str(method)
	}
	if len(args) > 0 {
		obj["args"] = Array(args)
	}
	if len(kwargs) > 0 {
		obj["kwargs"] = Map(kwargs)
	}
	return obj
}

// Readable is the diagnostic view of an encoded blob: the raw bytes as
// numbers next to their text rendering.
type Readable struct {
	Raw      []int  `json:"raw"`
	Readable string `json:"readable"`
}

// NewReadable decodes data and returns its diagnostic view.
func NewReadable(data []byte) (*Readable, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	raw := make([]int, len(data))
	for i, b := range data {
		raw[i] = int(b)
	}
	return &Readable{Raw: raw, Readable: ToText(v)}, nil
}
