package page

import (
	"strings"
	"sync"
)

// Class names toggled by the choreography and read by the renderer
const (
	ClassHidden  = "hidden"
	ClassActive  = "active"
	ClassShow    = "show"
	ClassEffects = "effects"
	ClassSparkle = "sparkle"
	ClassMeteor  = "meteor"
	ClassTail    = "tail"
	ClassHead    = "head"
	ClassPoem    = "poem"
	ClassTitle   = "title"
	ClassSub     = "subtitle"
)

// Document is the element tree of the page. All mutation happens through Mutate so
// an observer using View never sees half of a multi-element change.
type Document struct {
	mu   sync.RWMutex
	root *Element
	byID map[string]*Element
}

// NewDocument creates an empty document with a body root
func NewDocument() *Document {
	d := &Document{byID: make(map[string]*Element)}
	d.root = &Element{Tag: "body", Style: newStyle(), doc: d}
	return d
}

// Mutate runs fn with exclusive access to the tree
func (d *Document) Mutate(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// View runs fn with shared read access to the tree
func (d *Document) View(fn func()) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn()
}

// Root returns the body element
func (d *Document) Root() *Element {
	return d.root
}

// CreateElement returns a detached element owned by this document
func (d *Document) CreateElement(tag, id string, classes ...string) *Element {
	e := &Element{
		ID:    id,
		Tag:   tag,
		Style: newStyle(),
		doc:   d,
	}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// GetElementByID returns the connected element with id, nil if none
func (d *Document) GetElementByID(id string) *Element {
	return d.byID[id]
}

// QuerySelector returns the first element matching sel in document order
func (d *Document) QuerySelector(sel string) *Element {
	return d.root.QuerySelector(sel)
}

// QuerySelectorAll returns every element matching sel in document order
func (d *Document) QuerySelectorAll(sel string) []*Element {
	return d.root.QuerySelectorAll(sel)
}

// Len returns the number of connected elements, root included
func (d *Document) Len() int {
	n := 0
	d.root.walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

func (d *Document) attach(e *Element) {
	if !e.Connected() {
		return
	}
	e.walk(func(n *Element) bool {
		if n.ID != "" {
			d.byID[n.ID] = n
		}
		return true
	})
}

func (d *Document) detach(e *Element) {
	e.walk(func(n *Element) bool {
		if n.ID != "" && d.byID[n.ID] == n {
			delete(d.byID, n.ID)
		}
		return true
	})
}

// compound is one whitespace-separated step of a selector: tag#id.class.class
type compound struct {
	tag     string
	id      string
	classes []string
}

func parseSelector(sel string) []compound {
	fields := strings.Fields(sel)
	out := make([]compound, 0, len(fields))
	for _, f := range fields {
		var c compound
		// Split on '#' and '.' while remembering the marker
		start, marker := 0, byte(0)
		flush := func(end int) {
			part := f[start:end]
			switch marker {
			case 0:
				c.tag = part
			case '#':
				c.id = part
			case '.':
				if part != "" {
					c.classes = append(c.classes, part)
				}
			}
		}
		for i := 0; i < len(f); i++ {
			if f[i] == '#' || f[i] == '.' {
				flush(i)
				start, marker = i+1, f[i]
			}
		}
		flush(len(f))
		out = append(out, c)
	}
	return out
}

func (c compound) matches(e *Element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != e.Tag {
		return false
	}
	if c.id != "" && c.id != e.ID {
		return false
	}
	for _, class := range c.classes {
		if !e.HasClass(class) {
			return false
		}
	}
	return true
}

// matchesChain checks e against the last step and ancestors (below scope) against the rest
func matchesChain(steps []compound, e, scope *Element) bool {
	last := len(steps) - 1
	if !steps[last].matches(e) {
		return false
	}
	i := last - 1
	for n := e.parent; n != nil && n != scope && i >= 0; n = n.parent {
		if steps[i].matches(n) {
			i--
		}
	}
	return i < 0
}

// QuerySelector returns the first descendant matching sel
func (e *Element) QuerySelector(sel string) *Element {
	steps := parseSelector(sel)
	if len(steps) == 0 {
		return nil
	}
	var found *Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if matchesChain(steps, n, e) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// QuerySelectorAll returns all descendants matching sel in document order
func (e *Element) QuerySelectorAll(sel string) []*Element {
	steps := parseSelector(sel)
	if len(steps) == 0 {
		return nil
	}
	var out []*Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if matchesChain(steps, n, e) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}
