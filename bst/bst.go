// Copyright 2023 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements in-memory unbalanced binary search trees.
//
// A Tree stores values in an ordered structure, allowing insertion, lookup,
// removal, deep copies and traversal in order, pre-order and post-order.
// Every node keeps a back-reference to its parent, which lets all of the
// algorithms in this package run without recursion and without an auxiliary
// stack: removal walks down from the root, clearing flattens the tree with
// rotations while it releases nodes, and cloning and traversal walk parent
// links upwards instead of unwinding a call stack.  Deep or degenerate trees
// therefore never exhaust the goroutine stack.
//
// The tree does not rebalance itself; inserting values in sorted order
// degrades it to a linked list, and every operation then costs O(n).
//
// Equal values are allowed.  They are always routed to the left, so lookups
// return the shallowest of several equal values.
//
// Trees are not safe for concurrent use.  In particular, a traversal must not
// run concurrently with any write to the same tree.
package bst

import "golang.org/x/exp/constraints"

// Iterator allows callers of the traversal methods to receive the values of
// the tree one at a time.  When this function returns false, the traversal
// stops and the associated method immediately returns.
type Iterator[T any] func(T) bool

// node is a single cell of the tree.
//
// parent is nil iff the node is the root; otherwise the node is exactly one
// of parent.left and parent.right.  parent never keeps a node alive on its
// own: nodes are handed out and taken back only by the tree's FreeList.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// minNode returns the node with the smallest value in n's subtree.
// n must not be nil.
func (n *node[T]) minNode() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the node with the largest value in n's subtree.
// n must not be nil.
func (n *node[T]) maxNode() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Tree is a generic implementation of an unbalanced binary search tree.
//
// For every node, all values in its left subtree are less than or equal to
// its own value and all values in its right subtree are greater.
//
// The zero value holds no values and may be read, but it has no ordering and
// no free list, so writing to it panics.  Create trees with New, NewFunc or
// NewWithFreeList.
type Tree[T any] struct {
	root     *node[T]
	length   int
	cmp      func(a, b T) int
	freelist *FreeList[T]
}

// New creates a new tree ordered by the natural ordering of T.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(Compare[T])
}

// NewFunc creates a new tree ordered according to cmp, which must return a
// negative number when a < b, a positive number when a > b and zero when
// a == b, and must define a total order.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	return NewWithFreeList(cmp, NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates a new tree ordered according to cmp that uses the
// given node free list.
func NewWithFreeList[T any](cmp func(a, b T) int, f *FreeList[T]) *Tree[T] {
	if cmp == nil {
		panic("nil comparison")
	}
	if f == nil {
		panic("nil free list")
	}
	return &Tree[T]{
		cmp:      cmp,
		freelist: f,
	}
}

// Compare returns the three-way comparison of a and b in the natural
// ordering of T.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	}
	return 0
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Insert adds the given value to the tree.  Values equal to ones already in
// the tree are kept as well.  If no node can be allocated, Insert returns an
// error matching ErrAllocation and leaves the tree unchanged.
func (t *Tree[T]) Insert(value T) error {
	n, err := t.freelist.newNode()
	if err != nil {
		return err
	}
	n.value = value
	t.attach(n)
	return nil
}

// Emplace adds the value returned by construct to the tree.  The node is
// allocated before construct is called; if construct fails, the node is
// released and Emplace returns a *ConstructionError wrapping the failure.
// In both failure cases the tree is left unchanged.
func (t *Tree[T]) Emplace(construct func() (T, error)) error {
	n, err := t.freelist.newNode()
	if err != nil {
		return err
	}
	value, err := construct()
	if err != nil {
		t.freelist.freeNode(n)
		return &ConstructionError{Err: err}
	}
	n.value = value
	t.attach(n)
	return nil
}

// InsertAll inserts the given values in order.  It stops at the first value
// that cannot be inserted and returns its error; values inserted before it
// remain in the tree.
func (t *Tree[T]) InsertAll(values ...T) error {
	for _, value := range values {
		if err := t.Insert(value); err != nil {
			return err
		}
	}
	return nil
}

// attach links the detached node n under the first free slot on its search
// path.
func (t *Tree[T]) attach(n *node[T]) {
	t.length++
	if t.root == nil {
		t.root = n
		return
	}
	for cur := t.root; ; {
		if t.cmp(n.value, cur.value) <= 0 {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return
			}
			cur = cur.right
		}
	}
}

// find returns the shallowest node whose value equals key, or nil.
func (t *Tree[T]) find(key T) *node[T] {
	cur := t.root
	for cur != nil {
		switch c := t.cmp(key, cur.value); {
		case c < 0:
			cur = cur.left
		case 0 < c:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Search looks for the key in the tree and returns a pointer to the stored
// value, or nil if no equal value exists.  The pointer is only valid until
// the next write to the tree, and callers must not change the value in a way
// that changes its ordering.
func (t *Tree[T]) Search(key T) *T {
	if n := t.find(key); n != nil {
		return &n.value
	}
	return nil
}

// Get looks for the key in the tree, returning the stored value.  It returns
// (zeroValue, false) if unable to find that value.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	return
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	return t.find(key) != nil
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.minNode().value, true
}

// Max returns the largest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.maxNode().value, true
}

// Remove removes the shallowest value equal to key from the tree and reports
// whether one was found.
//
// A node with two children keeps its place in the tree: it takes over the
// value of its in-order successor, the leftmost node of its right subtree,
// and that successor is unlinked instead.  If the successor has an equal
// parent, the in-order predecessor, the rightmost node of the left subtree,
// is used in its place.  Either node has at most one child, so unlinking it
// only splices its single subtree into its former slot.
func (t *Tree[T]) Remove(key T) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	if n.left != nil && n.right != nil {
		// Equal values chain to the left, so the successor may sit below
		// copies of itself that would end up right of n; take the
		// predecessor, which has no right child, instead.
		replacement := n.right.minNode()
		if replacement != n.right && t.cmp(replacement.parent.value, replacement.value) == 0 {
			replacement = n.left.maxNode()
		}
		n.value = replacement.value
		n = replacement
	}
	t.splice(n)
	t.freelist.freeNode(n)
	t.length--
	return true
}

// splice unlinks n, which has at most one child, by moving that child into
// n's slot.
func (t *Tree[T]) splice(n *node[T]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	switch p := n.parent; {
	case p == nil:
		t.root = child
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
}

// Clear removes all values from the tree and returns its nodes to the free
// list.
//
// The tree is torn down without recursion: while the current node has a left
// child, that child is rotated up, so the tree gradually turns into a chain
// of right children; a node without a left child is released and the walk
// continues with its right child.
func (t *Tree[T]) Clear() {
	cur := t.root
	for cur != nil {
		var next *node[T]
		if cur.left == nil {
			next = cur.right
			t.freelist.freeNode(cur)
		} else {
			next = cur.left
			cur.left = next.right
			next.right = cur
		}
		cur = next
	}
	t.root = nil
	t.length = 0
}

// Clone returns a deep copy of the tree.  The copy has the same shape, shares
// the comparison and free list of t, but no nodes.
//
// If the free list runs out of nodes, Clone releases the nodes it has already
// copied and returns the error; t is never modified.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	root, err := clone(t.root, t.freelist)
	if err != nil {
		return nil, err
	}
	return &Tree[T]{
		root:     root,
		length:   t.length,
		cmp:      t.cmp,
		freelist: t.freelist,
	}, nil
}

// clone copies the tree rooted at src using nodes from f.
//
// Two cursors walk src and its copy in lock-step.  A child of the source
// cursor that is missing in the copy has not been visited yet, so the walk
// copies it and descends, left child first.  When both children are done the
// cursors climb to their parents; the walk ends above the root.
func clone[T any](src *node[T], f *FreeList[T]) (*node[T], error) {
	if src == nil {
		return nil, nil
	}
	root, err := f.newNode()
	if err != nil {
		return nil, err
	}
	root.value = src.value

	for cur := root; src != nil; {
		var slot **node[T]
		switch {
		case src.left != nil && cur.left == nil:
			src = src.left
			slot = &cur.left
		case src.right != nil && cur.right == nil:
			src = src.right
			slot = &cur.right
		default:
			src, cur = src.parent, cur.parent
			continue
		}
		n, err := f.newNode()
		if err != nil {
			(&Tree[T]{root: root, freelist: f}).Clear()
			return nil, err
		}
		n.value = src.value
		n.parent = cur
		*slot = n
		cur = n
	}
	return root, nil
}

// CopyFrom replaces the contents of t with a deep copy of src, allocated from
// t's own free list and ordered like src.  If the copy cannot be completed,
// t is left unchanged and the error is returned.
func (t *Tree[T]) CopyFrom(src *Tree[T]) error {
	if t == src {
		return nil
	}
	root, err := clone(src.root, t.freelist)
	if err != nil {
		return err
	}
	t.Clear()
	t.root, t.length, t.cmp = root, src.length, src.cmp
	return nil
}

// MoveFrom hands all nodes of src over to t, together with src's comparison
// and free list, leaving src empty.  The previous contents of t are cleared.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.root, src.root = src.root, nil
	t.length, src.length = src.length, 0
	t.cmp = src.cmp
	t.freelist = src.freelist
}

// Swap exchanges the contents of t and u in constant time.
func (t *Tree[T]) Swap(u *Tree[T]) {
	*t, *u = *u, *t
}
