package theme

import (
	"context"
	"errors"
)

// ClickHandler is called when an element is activated.
type ClickHandler func(ctx context.Context) error

// Element is a node of the rendered page that the controller can find and mutate.
type Element struct {
	ID       string
	Class    string
	Content  string
	Style    map[string]string
	Children []*Element

	handlers []ClickHandler
}

// NewToggle makes the toggle control with an empty icon element inside.
func NewToggle() *Element {
	return &Element{ID: ToggleID, Children: []*Element{{Class: IconClass}}}
}

// Find returns the first descendant with the given class, depth first.
func (e *Element) Find(class string) (*Element, bool) {
	for _, c := range e.Children {
		if c.Class == class {
			return c, true
		}
		if found, ok := c.Find(class); ok {
			return found, true
		}
	}
	return nil, false
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(prop, value string) {
	if e.Style == nil {
		e.Style = map[string]string{}
	}
	e.Style[prop] = value
}

// OnClick attaches a click handler.
func (e *Element) OnClick(h ClickHandler) {
	e.handlers = append(e.handlers, h)
}

// Handlers returns the number of attached click handlers.
func (e *Element) Handlers() int {
	return len(e.handlers)
}

// Click dispatches the click to every attached handler in attach order.
func (e *Element) Click(ctx context.Context) error {
	var errs []error
	for _, h := range e.handlers {
		if err := h(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Document is an in-memory page: root attributes plus elements addressable by id.
// Not safe for concurrent use, each request builds its own.
type Document struct {
	attrs    map[string]string
	elements map[string]*Element
}

// NewDocument makes a document holding the given top-level elements.
func NewDocument(elems ...*Element) *Document {
	d := &Document{attrs: map[string]string{}, elements: map[string]*Element{}}
	for _, e := range elems {
		d.Add(e)
	}
	return d
}

// Add registers an element and its descendants by id.
func (d *Document) Add(e *Element) {
	if e == nil {
		return
	}
	if e.ID != "" {
		d.elements[e.ID] = e
	}
	for _, c := range e.Children {
		d.Add(c)
	}
}

// RootAttr returns the root node attribute and whether it is present.
func (d *Document) RootAttr(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// SetRootAttr sets an attribute on the root node.
func (d *Document) SetRootAttr(name, value string) {
	d.attrs[name] = value
}

// RemoveRootAttr removes an attribute from the root node.
func (d *Document) RemoveRootAttr(name string) {
	delete(d.attrs, name)
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}
