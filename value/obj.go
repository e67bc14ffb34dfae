package value

// Obj is an insertion-ordered mapping from string to Value. It backs
// both LogicExpr operator nodes (which must distinguish their one
// operator key without surprise ordering) and QueryInput/QueryOutput
// context maps (§3), where insertion order is part of the observable
// contract for callers that print or diff a context.
type Obj struct {
	keys []string
	idx  map[string]int
	vals []Value
}

// NewObj returns an empty Obj.
func NewObj() *Obj {
	return &Obj{idx: make(map[string]int)}
}

// Set inserts or overwrites key. Overwriting an existing key keeps its
// original position; a brand-new key is appended.
func (o *Obj) Set(key string, v Value) *Obj {
	if i, ok := o.idx[key]; ok {
		o.vals[i] = v
		return o
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
	return o
}

// Get returns the value for key and whether it was present.
func (o *Obj) Get(key string) (Value, bool) {
	i, ok := o.idx[key]
	if !ok {
		return Null, false
	}
	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Obj) Has(key string) bool {
	_, ok := o.idx[key]
	return ok
}

// Len returns the number of entries.
func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice must
// not be mutated by the caller.
func (o *Obj) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Range calls fn for every entry in insertion order, stopping early if
// fn returns false.
func (o *Obj) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// SoleEntry returns the single key/value pair of a one-entry Obj. It
// is used to pull an operator name + payload out of a LogicExpr node;
// callers must have already checked Len() == 1.
func (o *Obj) SoleEntry() (string, Value) {
	return o.keys[0], o.vals[0]
}

// Clone returns a shallow copy: new backing slices/map, same Values.
// Values are themselves immutable, so a shallow copy is sufficient to
// give the clone independent key/value storage.
func (o *Obj) Clone() *Obj {
	c := &Obj{
		keys: make([]string, len(o.keys)),
		idx:  make(map[string]int, len(o.idx)),
		vals: make([]Value, len(o.vals)),
	}
	copy(c.keys, o.keys)
	copy(c.vals, o.vals)
	for k, i := range o.idx {
		c.idx[k] = i
	}
	return c
}
