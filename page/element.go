package page

import "slices"

// Media is a playable resource bound to an element, satisfied by *audio.MusicTrack
type Media interface {
	Play() error
	Volume() float64
	SetVolume(v float64)
}

// Element is a node in the document tree.
// Mutating methods must run inside Document.Mutate; readers use Document.View.
type Element struct {
	ID       string
	Tag      string
	Text     string
	Disabled bool
	Media    Media

	Style *Style

	classes  []string
	parent   *Element
	children []*Element
	doc      *Document
}

// HasClass reports class membership
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// AddClass adds class if absent
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes class if present
func (e *Element) RemoveClass(class string) {
	if i := slices.Index(e.classes, class); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// Parent returns the parent node, nil for the root or a detached node
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// ChildCount returns the number of direct children
func (e *Element) ChildCount() int {
	return len(e.children)
}

// AppendChild attaches child as the last child, detaching it from any previous parent
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.Remove()
	}
	child.parent = e
	e.children = append(e.children, child)
	if e.doc != nil {
		e.doc.attach(child)
	}
}

// Remove detaches the element from its parent; removing a detached node is a no-op
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
	if e.doc != nil {
		e.doc.detach(e)
	}
}

// Connected reports whether the element is reachable from the document root
func (e *Element) Connected() bool {
	for n := e; n != nil; n = n.parent {
		if e.doc != nil && n == e.doc.root {
			return true
		}
	}
	return false
}

// Visible reports whether the element and all ancestors are displayed
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.Style.Display == DisplayNone || n.HasClass(ClassHidden) {
			return false
		}
	}
	return true
}

// walk visits e and its descendants depth-first, stopping early when fn returns false
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
