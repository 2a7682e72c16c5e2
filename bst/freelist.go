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

import (
	"sync"

	"github.com/pkg/errors"
)

// DefaultFreeListSize is the size of the free list created by New and NewFunc.
const DefaultFreeListSize = 32

// FreeList represents a free list of tree nodes. By default each Tree has its
// own FreeList, but multiple trees can share the same FreeList, in which case
// they also share its node limit.
// A FreeList is safe for concurrent use by trees living in different
// goroutines.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
	limit    int
	live     int
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return NewBoundedFreeList[T](size, 0)
}

// NewBoundedFreeList creates a new free list that hands out at most limit
// nodes at a time.  Once limit nodes are live, further allocations fail with
// ErrAllocation until some node is freed.  A limit of zero means no limit.
func NewBoundedFreeList[T any](size, limit int) *FreeList[T] {
	if size < 0 || limit < 0 {
		panic("bad free list size")
	}
	return &FreeList[T]{
		freelist: make([]*node[T], 0, size),
		limit:    limit,
	}
}

// Live returns the number of nodes currently handed out by the free list.
func (f *FreeList[T]) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

func (f *FreeList[T]) newNode() (n *node[T], err error) {
	f.mu.Lock()
	if 0 < f.limit && f.limit <= f.live {
		f.mu.Unlock()
		return nil, errors.WithStack(ErrAllocation)
	}
	f.live++
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T]), nil
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

// freeNode adds the given node to the list, returning true if it was added
// and false if it was discarded.  The node is always counted as released.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	*n = node[T]{}
	f.mu.Lock()
	f.live--
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}
