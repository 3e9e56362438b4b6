package ui

// FocusManager rotates focus across the named inputs of a form.
type FocusManager struct {
	Current  string   // ID of the focused input
	Order    []string // tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping, and returns the new ID.
func (f *FocusManager) Next() string { return f.step(1) }

// Prev moves focus backward, wrapping, and returns the new ID.
func (f *FocusManager) Prev() string { return f.step(-1) }

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index()
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. It returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool { return f.Current == id }

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
