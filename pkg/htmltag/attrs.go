package htmltag

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an insertion-ordered attribute list. Setting a name that already
// exists replaces its value in place, keeping the original position. The zero
// value is ready to use.
type Attrs struct {
	items []Attr
	index map[string]int
}

// NewAttrs builds an attribute list from name/value pairs. A trailing name
// without a value is ignored.
func NewAttrs(pairs ...any) Attrs {
	var attrs Attrs
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			continue
		}
		attrs.Set(name, pairs[i+1])
	}
	return attrs
}

// Set stores value under name.
func (a *Attrs) Set(name string, value any) {
	if name == "" {
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if pos, ok := a.index[name]; ok {
		a.items[pos].Value = value
		return
	}
	a.index[name] = len(a.items)
	a.items = append(a.items, Attr{Name: name, Value: value})
}

// Get returns the value stored under name.
func (a Attrs) Get(name string) (any, bool) {
	pos, ok := a.index[name]
	if !ok {
		return nil, false
	}
	return a.items[pos].Value, true
}

// Has reports whether name is present.
func (a Attrs) Has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// Delete removes name, shifting later attributes up.
func (a *Attrs) Delete(name string) {
	pos, ok := a.index[name]
	if !ok {
		return
	}
	a.items = append(a.items[:pos], a.items[pos+1:]...)
	delete(a.index, name)
	for i := pos; i < len(a.items); i++ {
		a.index[a.items[i].Name] = i
	}
}

// Merge copies every attribute from other using Set semantics.
func (a *Attrs) Merge(other Attrs) {
	for _, attr := range other.items {
		a.Set(attr.Name, attr.Value)
	}
}

// Len returns the number of stored attributes.
func (a Attrs) Len() int {
	return len(a.items)
}

// Names returns attribute names in insertion order.
func (a Attrs) Names() []string {
	if len(a.items) == 0 {
		return nil
	}
	names := make([]string, len(a.items))
	for i, attr := range a.items {
		names[i] = attr.Name
	}
	return names
}

// All returns a copy of the stored attributes in insertion order.
func (a Attrs) All() []Attr {
	if len(a.items) == 0 {
		return nil
	}
	return append([]Attr(nil), a.items...)
}
