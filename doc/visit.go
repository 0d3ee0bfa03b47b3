package doc

// Action directs traversal at each visited node.
type Action int

const (
	// Continue descends into the node's children.
	Continue Action = iota

	// StopDescent keeps the node and skips its children.
	StopDescent

	// Replace splices the returned fragment in place of the node and its
	// subtree. Spliced content is not revisited.
	Replace
)

// VisitFunc decides the action for a node. When the action is [Replace],
// the returned fragment takes the node's place.
type VisitFunc func(*Node) (Action, Fragment, error)

// Visit traverses the tree depth-first, pre-order, applying fn to each node
// below root. Replacements are applied in place; siblings keep their
// original order.
func Visit(root *Node, fn VisitFunc) error {
	if root == nil {
		return nil
	}

	return visitChildren(root, fn)
}

func visitChildren(n *Node, fn VisitFunc) error {
	out := n.Children[:0:0]

	for _, child := range n.Children {
		action, frag, err := fn(child)
		if err != nil {
			return err
		}

		switch action {
		case Replace:
			out = append(out, frag...)

		case StopDescent:
			out = append(out, child)

		case Continue:
			err := visitChildren(child, fn)
			if err != nil {
				return err
			}

			out = append(out, child)
		}
	}

	n.Children = out

	return nil
}

// Find returns the first node below root, in depth-first pre-order, for
// which pred returns true. Returns nil when no node matches.
func Find(root *Node, pred func(*Node) bool) *Node {
	if root == nil {
		return nil
	}

	for _, child := range root.Children {
		if pred(child) {
			return child
		}

		if found := Find(child, pred); found != nil {
			return found
		}
	}

	return nil
}

// Splice replaces target (and its subtree) with the fragment wherever it
// occurs below root. Returns true when the target was found.
func Splice(root *Node, target *Node, frag Fragment) bool {
	if root == nil || target == nil {
		return false
	}

	for i, child := range root.Children {
		if child == target {
			out := make([]*Node, 0, len(root.Children)-1+len(frag))
			out = append(out, root.Children[:i]...)
			out = append(out, frag...)
			out = append(out, root.Children[i+1:]...)
			root.Children = out

			return true
		}

		if Splice(child, target, frag) {
			return true
		}
	}

	return false
}
