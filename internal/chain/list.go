package chain

// Node - Holds one element of a List
type Node[T any] struct {
	Data T
	prev *Node[T]
	next *Node[T]
}

// List - Doubly linked list of elements sharing a hash bucket.
// New elements are prepended, so traversal order is most recently inserted first.
// If Free is set it is called for every element removed through Delete or Clear.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
	Free   func(T)
}

// New - Returns a pointer to a new empty List
//   - free is an optional function called with each element removed from the list
func New[T any](free func(T)) *List[T] {
	return &List[T]{Free: free}
}

// Len - Returns the number of elements in the list
func (L *List[T]) Len() int {
	if L == nil {
		return 0
	}
	return L.length
}

// Prepend - Inserts data at the head of the list and returns the node holding it
func (L *List[T]) Prepend(data T) *Node[T] {
	n := &Node[T]{Data: data, next: L.head}
	if L.head != nil {
		L.head.prev = n
	} else {
		L.tail = n
	}
	L.head = n
	L.length++

	return n
}

// Unlink - Removes the node from the list without calling Free
func (L *List[T]) Unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		L.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		L.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	L.length--
}

// Delete - Removes the node from the list and calls Free with its data
func (L *List[T]) Delete(n *Node[T]) {
	L.Unlink(n)
	if L.Free != nil {
		L.Free(n.Data)
	}
}

// Clear - Removes every node in list order, calling Free for each of them
func (L *List[T]) Clear() {
	if L == nil {
		return
	}
	iter := L.Iterator()
	for iter.HasNext() {
		L.Delete(iter.Next())
	}
}

// Iterator - Returns an iterator starting at the head of the list.
// Deleting or unlinking the node most recently returned by Next is safe during iteration.
func (L *List[T]) Iterator() *Iterator[T] {
	if L == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{next: L.head}
}

// Foreach - Calls fn with each element in list order until fn returns false
func (L *List[T]) Foreach(fn func(T) bool) bool {
	iter := L.Iterator()
	for iter.HasNext() {
		if !fn(iter.Next().Data) {
			return false
		}
	}

	return true
}
