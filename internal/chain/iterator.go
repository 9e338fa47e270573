package chain

// Iterator - Is used to iterate over list nodes one by one.
// The successor of a node is captured before the node is handed out, so the returned node may be removed from
// the list before calling Next again.
type Iterator[T any] struct {
	next *Node[T]
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.next != nil
}

// Next - Returns the next node, or nil if the iteration is exhausted
func (I *Iterator[T]) Next() (node *Node[T]) {
	node = I.next
	if node != nil {
		I.next = node.next
	}

	return
}
