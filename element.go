package datacenter

import (
	"strings"
	"sync"

	"github.com/scigolib/datacenter/internal/core"
	"github.com/scigolib/datacenter/internal/utils"
)

// Parent is a tagged union over an Element's upward link: either the
// DataCenter itself (the element is the tree root) or another Element (the
// element is a child). Modeling it this way keeps the up-reference weak —
// an Element never owns its parent — while still letting Path and the
// navigation iterators walk upward without a separate "is root" flag
// threaded through every call site.
type Parent struct {
	dc   *DataCenter
	node *Element
}

// RootParent builds a Parent denoting "the tree root, parented by dc".
func RootParent(dc *DataCenter) Parent {
	return Parent{dc: dc}
}

// NodeParent builds a Parent denoting "child of node".
func NodeParent(node *Element) Parent {
	return Parent{dc: node.dc, node: node}
}

// IsRoot reports whether this Parent denotes the tree root.
func (p Parent) IsRoot() bool {
	return p.node == nil
}

// Element returns the parent Element and true, or (nil, false) if this
// Parent is the tree root.
func (p Parent) Element() (*Element, bool) {
	if p.node == nil {
		return nil, false
	}
	return p.node, true
}

// Element is a single node in a data center tree: a name, a set of typed
// attributes, and an ordered list of children. Attributes and children are
// materialized lazily and memoized: the first caller to ask pays the cost
// of reading and validating the underlying records, every later caller
// (including concurrent ones) observes the same result.
type Element struct {
	dc     *DataCenter
	addr   core.Address
	parent Parent
	rec    core.ElementRecord
	name   string

	attrsOnce sync.Once
	attrs     map[string]TypedValue
	attrsErr  error

	childrenOnce sync.Once
	children     []*Element
	childrenErr  error
}

// Name returns the element's interned name, or "" for a placeholder record.
func (e *Element) Name() string {
	return e.name
}

// IsPlaceholder reports whether the underlying record is a placeholder:
// its attribute and child counts are never consulted, so Attrs and Children
// both report empty, error-free results.
func (e *Element) IsPlaceholder() bool {
	return e.rec.IsPlaceholder()
}

// Parent returns the element's parent link.
func (e *Element) Parent() Parent {
	return e.parent
}

// Path returns the slash-separated chain of names from the tree root down
// to this element, e.g. "/system/device0".
func (e *Element) Path() string {
	var names []string
	for cur := e; ; {
		names = append(names, cur.Name())
		node, ok := cur.Parent().Element()
		if !ok {
			break
		}
		cur = node
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

// Attrs materializes and returns a copy of this element's attribute set,
// keyed by name. The underlying read happens at most once per element.
func (e *Element) Attrs() (map[string]TypedValue, error) {
	e.attrsOnce.Do(e.realizeAttrs)
	if e.attrsErr != nil {
		return nil, e.attrsErr
	}
	out := make(map[string]TypedValue, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out, nil
}

// Attr returns the named attribute's value, or NullValue if it isn't
// present. It fails with InvalidArgumentError if name is empty.
func (e *Element) Attr(name string) (TypedValue, error) {
	if name == "" {
		return TypedValue{}, &core.InvalidArgumentError{Reason: "attribute name must not be empty"}
	}
	attrs, err := e.Attrs()
	if err != nil {
		return TypedValue{}, err
	}
	if v, ok := attrs[name]; ok {
		return v, nil
	}
	return NullValue(), nil
}

// AttrOrDefault returns the named attribute's value, or a TypedValue built
// from fallback (one of int32, float32, bool, string) if the attribute is
// absent. It fails with InvalidArgumentError if name is empty or fallback
// is not one of the four supported primitive types.
func (e *Element) AttrOrDefault(name string, fallback interface{}) (TypedValue, error) {
	def, err := typedValueFromFallback(fallback)
	if err != nil {
		return TypedValue{}, err
	}
	v, err := e.Attr(name)
	if err != nil {
		return TypedValue{}, err
	}
	if !v.IsNull() {
		return v, nil
	}
	return def, nil
}

// Children materializes and returns this element's child list, in on-disk
// order, with placeholder records silently dropped. The underlying reads
// happen at most once per element.
func (e *Element) Children() ([]*Element, error) {
	e.childrenOnce.Do(e.realizeChildren)
	if e.childrenErr != nil {
		return nil, e.childrenErr
	}
	return e.children, nil
}

func (e *Element) realizeAttrs() {
	if e.rec.IsPlaceholder() || e.rec.AttributeCount == 0 {
		e.attrs = map[string]TypedValue{}
		return
	}

	attrs := make(map[string]TypedValue, e.rec.AttributeCount)
	base := e.rec.AttributeBase
	for i := uint16(0); i < e.rec.AttributeCount; i++ {
		index, err := utils.AddUint16(base.Index, int(i))
		if err != nil {
			e.attrsErr = core.NewStructuralError("attribute base index", err.Error())
			return
		}
		addr := core.Address{Segment: base.Segment, Index: index}
		cur, err := e.dc.attributeHeap.ReaderAt(addr)
		if err != nil {
			e.attrsErr = err
			return
		}

		rec, err := core.ParseAttributeRecord(cur)
		if err != nil {
			e.attrsErr = err
			return
		}

		if rec.NameIndexPlusOne == 0 {
			e.attrsErr = core.NewStructuralError("attribute name index", "index 0 is reserved")
			return
		}
		name, ok := e.dc.names.Lookup(int(rec.NameIndexPlusOne) - 1)
		if !ok {
			e.attrsErr = core.NewStructuralError("attribute name index", "index %d out of range", int(rec.NameIndexPlusOne)-1)
			return
		}
		if _, dup := attrs[name]; dup {
			e.attrsErr = core.NewStructuralError("attribute name", "duplicate attribute name %q", name)
			return
		}

		var stringAddr core.Address
		typeCode, _ := core.DecodeTypeWord(rec.TypeWord)
		if typeCode == 3 {
			cur.Rewind(4)
			stringAddr, err = cur.ReadAddress()
			if err != nil {
				e.attrsErr = err
				return
			}
		}

		val, err := decodeAttributeValue(rec, stringAddr, e.dc.values)
		if err != nil {
			e.attrsErr = err
			return
		}
		attrs[name] = val
	}

	e.attrs = attrs
}

func (e *Element) realizeChildren() {
	if e.rec.IsPlaceholder() || e.rec.ChildCount == 0 {
		e.children = nil
		return
	}

	children := make([]*Element, 0, e.rec.ChildCount)
	base := e.rec.ChildBase
	for i := uint16(0); i < e.rec.ChildCount; i++ {
		index, err := utils.AddUint16(base.Index, int(i))
		if err != nil {
			e.childrenErr = core.NewStructuralError("child base index", err.Error())
			return
		}
		addr := core.Address{Segment: base.Segment, Index: index}
		child, err := e.dc.materialize(addr, NodeParent(e))
		if err != nil {
			e.childrenErr = err
			return
		}
		if child.IsPlaceholder() {
			continue
		}
		children = append(children, child)
	}

	e.children = children
}
