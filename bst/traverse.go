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

package bst

// Traversal selects the order in which Traverse visits the values of a tree.
type Traversal int

const (
	TraverseInOrder   Traversal = iota // ascending order
	TraversePreOrder                   // node, left subtree, right subtree
	TraversePostOrder                  // left subtree, right subtree, node
	TraverseReverse                    // descending order
)

func (typ Traversal) String() string {
	switch typ {
	case TraverseInOrder:
		return "in-order"
	case TraversePreOrder:
		return "pre-order"
	case TraversePostOrder:
		return "post-order"
	case TraverseReverse:
		return "reverse"
	default:
		return "invalid"
	}
}

// Valid reports whether typ names one of the supported traversals.
func (typ Traversal) Valid() bool {
	return TraverseInOrder <= typ && typ <= TraverseReverse
}

// Traverse calls the iterator for every value in the tree in the order given
// by typ, until iterator returns false.
func (t *Tree[T]) Traverse(typ Traversal, iterator Iterator[T]) {
	switch typ {
	case TraverseInOrder:
		t.InOrder(iterator)
	case TraversePreOrder:
		t.PreOrder(iterator)
	case TraversePostOrder:
		t.PostOrder(iterator)
	case TraverseReverse:
		t.Descend(iterator)
	default:
		panic("invalid type")
	}
}

// All the walks below are driven by parent links only; none of them writes
// to the tree, so a tree is never observed half-restored, even if the
// iterator stops early or panics.

// InOrder calls the iterator for every value in the tree in ascending order,
// until iterator returns false.  Equal values are visited one after another.
func (t *Tree[T]) InOrder(iterator Iterator[T]) {
	if t.root == nil {
		return
	}
	for n := t.root.minNode(); n != nil && iterator(n.value); n = n.next() {
	}
}

// Descend calls the iterator for every value in the tree in descending
// order, until iterator returns false.
func (t *Tree[T]) Descend(iterator Iterator[T]) {
	if t.root == nil {
		return
	}
	for n := t.root.maxNode(); n != nil && iterator(n.value); n = n.prev() {
	}
}

// PreOrder calls the iterator for every value in the tree, visiting each node
// before its left and then its right subtree, until iterator returns false.
func (t *Tree[T]) PreOrder(iterator Iterator[T]) {
	for n := t.root; n != nil && iterator(n.value); n = n.preorderNext() {
	}
}

// PostOrder calls the iterator for every value in the tree, visiting each
// node after its left and then its right subtree, until iterator returns
// false.
func (t *Tree[T]) PostOrder(iterator Iterator[T]) {
	if t.root == nil {
		return
	}
	for n := t.root.firstLeaf(); n != nil && iterator(n.value); n = n.postorderNext() {
	}
}

// next returns the in-order successor of n, or nil if n is the last node.
func (n *node[T]) next() *node[T] {
	if n.right != nil {
		return n.right.minNode()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n, or nil if n is the first node.
func (n *node[T]) prev() *node[T] {
	if n.left != nil {
		return n.left.maxNode()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// preorderNext returns the node visited after n in pre-order.  Once both
// subtrees of n are done, the walk climbs until it leaves a left subtree
// whose parent still has a right subtree to visit.
func (n *node[T]) preorderNext() *node[T] {
	if n.left != nil {
		return n.left
	}
	if n.right != nil {
		return n.right
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n && p.right != nil {
			return p.right
		}
	}
	return nil
}

// firstLeaf returns the first node of n's subtree in post-order: the leaf
// reached by always preferring the left child.
func (n *node[T]) firstLeaf() *node[T] {
	for {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			return n
		}
	}
}

// postorderNext returns the node visited after n in post-order.
func (n *node[T]) postorderNext() *node[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	if p.left == n && p.right != nil {
		return p.right.firstLeaf()
	}
	return p
}
