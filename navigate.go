package datacenter

import (
	"iter"

	"github.com/scigolib/datacenter/internal/core"
)

// Ancestors yields this element's ancestors, nearest first, up to but
// excluding the tree root's own parent.
func (e *Element) Ancestors() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		cur := e
		for {
			node, ok := cur.Parent().Element()
			if !ok {
				return
			}
			if !yield(node) {
				return
			}
			cur = node
		}
	}
}

// AncestorsNamed yields ancestors whose name equals name. It fails with
// InvalidArgumentError if name is empty.
func (e *Element) AncestorsNamed(name string) (iter.Seq[*Element], error) {
	if name == "" {
		return nil, &core.InvalidArgumentError{Reason: "name must not be empty"}
	}
	return filterByName(e.Ancestors(), name), nil
}

// AncestorsIn yields ancestors whose name is a member of names. It fails
// with InvalidArgumentError if names is empty.
func (e *Element) AncestorsIn(names map[string]struct{}) (iter.Seq[*Element], error) {
	if len(names) == 0 {
		return nil, &core.InvalidArgumentError{Reason: "name set must not be empty"}
	}
	return filterByNameSet(e.Ancestors(), names), nil
}

// Siblings yields this element's siblings, in on-disk order, excluding
// itself. The tree root has no siblings.
func (e *Element) Siblings() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		parentNode, ok := e.Parent().Element()
		if !ok {
			return
		}
		children, err := parentNode.Children()
		if err != nil {
			return
		}
		for _, c := range children {
			if c == e {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// SiblingsNamed yields siblings whose name equals name. It fails with
// InvalidArgumentError if name is empty.
func (e *Element) SiblingsNamed(name string) (iter.Seq[*Element], error) {
	if name == "" {
		return nil, &core.InvalidArgumentError{Reason: "name must not be empty"}
	}
	return filterByName(e.Siblings(), name), nil
}

// SiblingsIn yields siblings whose name is a member of names. It fails with
// InvalidArgumentError if names is empty.
func (e *Element) SiblingsIn(names map[string]struct{}) (iter.Seq[*Element], error) {
	if len(names) == 0 {
		return nil, &core.InvalidArgumentError{Reason: "name set must not be empty"}
	}
	return filterByNameSet(e.Siblings(), names), nil
}

// Descendants yields every element reachable below this one, breadth-first,
// visiting each true descendant exactly once. If materializing a subtree
// fails partway through, that branch is silently truncated rather than the
// whole iteration aborted; callers needing to detect that should walk
// Children directly or use Walk.
func (e *Element) Descendants() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		queue := []*Element{e}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			children, err := node.Children()
			if err != nil {
				continue
			}
			for _, c := range children {
				if !yield(c) {
					return
				}
				queue = append(queue, c)
			}
		}
	}
}

// DescendantsNamed yields descendants whose name equals name. It fails with
// InvalidArgumentError if name is empty.
func (e *Element) DescendantsNamed(name string) (iter.Seq[*Element], error) {
	if name == "" {
		return nil, &core.InvalidArgumentError{Reason: "name must not be empty"}
	}
	return filterByName(e.Descendants(), name), nil
}

// DescendantsIn yields descendants whose name is a member of names. It
// fails with InvalidArgumentError if names is empty.
func (e *Element) DescendantsIn(names map[string]struct{}) (iter.Seq[*Element], error) {
	if len(names) == 0 {
		return nil, &core.InvalidArgumentError{Reason: "name set must not be empty"}
	}
	return filterByNameSet(e.Descendants(), names), nil
}

func filterByName(seq iter.Seq[*Element], name string) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for el := range seq {
			if el.Name() == name {
				if !yield(el) {
					return
				}
			}
		}
	}
}

func filterByNameSet(seq iter.Seq[*Element], names map[string]struct{}) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for el := range seq {
			if _, ok := names[el.Name()]; ok {
				if !yield(el) {
					return
				}
			}
		}
	}
}
