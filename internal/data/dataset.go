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

// Package data provides primitives for holding the keys served by the tree
// service.  A binary search tree must not be written while it is read, so
// every dataset serializes access to its tree; traversals work on snapshots
// so that long-running readers do not block writers.
package data

import (
	"sync"

	"github.com/9rum/bstree/bst"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Dataset represents the set of keys held by the server.
// All implementations must embed DatasetBase for forward compatibility.
type Dataset interface {
	// Insert adds the given key.  Equal keys may be held more than once.
	Insert(key int64) error

	// Has tests whether the given key is held.
	Has(key int64) bool

	// Remove removes a single copy of the given key, reporting whether one
	// was found.
	Remove(key int64) bool

	// Clear removes all keys.
	Clear()

	// Min returns the smallest key, or false if there is none.
	Min() (int64, bool)

	// Max returns the largest key, or false if there is none.
	Max() (int64, bool)

	// Len returns the number of keys currently held.
	Len() int

	// Snapshot returns an independent copy of the keys.  The caller must hand
	// it back to Release once done.
	Snapshot() (*bst.Tree[int64], error)

	// Release returns the nodes of a snapshot to the dataset.
	Release(snapshot *bst.Tree[int64])

	// OnTerminate releases all resources of the dataset.
	OnTerminate()
}

// DatasetBase must be embedded to have forward compatible implementations.
type DatasetBase struct {
}

func (DatasetBase) Insert(key int64) error {
	return nil
}
func (DatasetBase) Has(key int64) bool {
	return false
}
func (DatasetBase) Remove(key int64) bool {
	return false
}
func (DatasetBase) Clear() {}
func (DatasetBase) Min() (_ int64, _ bool) {
	return
}
func (DatasetBase) Max() (_ int64, _ bool) {
	return
}
func (DatasetBase) Len() int {
	return 0
}
func (DatasetBase) Snapshot() (*bst.Tree[int64], error) {
	return bst.New[int64](), nil
}
func (DatasetBase) Release(snapshot *bst.Tree[int64]) {}
func (DatasetBase) OnTerminate()                      {}

// SortedDataset keeps its keys in a single binary search tree guarded by a
// mutex.
type SortedDataset struct {
	DatasetBase
	mu    sync.Mutex
	items *bst.Tree[int64]
}

// New creates a new sorted dataset whose nodes come from a free list of the
// given size.  If capacity is positive, the dataset and all of its snapshots
// together hold at most capacity keys.
func New(freelistSize, capacity int) *SortedDataset {
	glog.Infof("creating dataset with free list size: %d capacity: %d", freelistSize, capacity)
	f := bst.NewBoundedFreeList[int64](freelistSize, capacity)
	return &SortedDataset{
		items: bst.NewWithFreeList(bst.Compare[int64], f),
	}
}

// Insert adds the given key.
func (d *SortedDataset) Insert(key int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.items.Insert(key); err != nil {
		glog.Warningf("insert %d failed: %v", key, err)
		return errors.Wrapf(err, "insert %d", key)
	}
	glog.V(2).Infof("inserted %d, %d keys", key, d.items.Len())
	return nil
}

// Has tests whether the given key is held.
func (d *SortedDataset) Has(key int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Has(key)
}

// Remove removes a single copy of the given key.
func (d *SortedDataset) Remove(key int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	ok := d.items.Remove(key)
	glog.V(2).Infof("remove %d: %v, %d keys", key, ok, d.items.Len())
	return ok
}

// Clear removes all keys.
func (d *SortedDataset) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	glog.V(1).Infof("clearing %d keys", d.items.Len())
	d.items.Clear()
}

// Min returns the smallest key.
func (d *SortedDataset) Min() (int64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Min()
}

// Max returns the largest key.
func (d *SortedDataset) Max() (int64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Max()
}

// Len returns the number of keys currently held.
func (d *SortedDataset) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Len()
}

// Snapshot returns a deep copy of the keys.  The copy draws on the same node
// budget as the dataset, so it fails with bst.ErrAllocation when the dataset
// is close to its capacity.
func (d *SortedDataset) Snapshot() (*bst.Tree[int64], error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	snapshot, err := d.items.Clone()
	if err != nil {
		glog.Warningf("snapshot of %d keys failed: %v", d.items.Len(), err)
		return nil, errors.Wrapf(err, "snapshot of %d keys", d.items.Len())
	}
	glog.V(1).Infof("took snapshot of %d keys", snapshot.Len())
	return snapshot, nil
}

// Release clears the given snapshot, returning its nodes to the free list.
func (d *SortedDataset) Release(snapshot *bst.Tree[int64]) {
	snapshot.Clear()
}

// OnTerminate clears the dataset.
func (d *SortedDataset) OnTerminate() {
	d.Clear()
}
