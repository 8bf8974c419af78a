package notifications

// Listener receives a bubbling notification. Returning true consumes the
// notification and stops propagation; returning false lets it bubble on.
type Listener func(n Notification) bool

// Node is a position in the listener tree. Nodes form a parent-linked
// chain walked at dispatch time; there is no registry and no virtual
// dispatch, just tagged notification kinds and a type switch in whichever
// listener cares.
type Node struct {
	parent         *Node
	listener       Listener
	scrollBoundary bool
}

// NewNode creates a node under the given parent. A nil parent makes a root.
func NewNode(parent *Node) *Node {
	return &Node{parent: parent}
}

// Parent returns the node's parent, nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetListener installs the node's listener. Pass nil to unregister.
func (n *Node) SetListener(l Listener) {
	n.listener = l
}

// MarkScrollBoundary marks the node as a scrollable boundary: a
// notification bubbling past it has its depth incremented.
func (n *Node) MarkScrollBoundary() {
	n.scrollBoundary = true
}

// Dispatch walks the ancestor chain from origin outward, invoking each
// node's listener until one consumes the notification. Unconsumed
// notifications silently reach the root and are dropped. Dispatch is
// purely synchronous and single-threaded; listeners must not re-dispatch
// the notification they are currently handling.
func Dispatch(notification Notification, origin *Node) {
	if notification == nil {
		return
	}
	for node := origin; node != nil; node = node.parent {
		if node.listener != nil && node.listener(notification) {
			return
		}
		if node.scrollBoundary {
			notification.bumpDepth()
		}
	}
}
