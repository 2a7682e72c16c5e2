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

// Package tree exposes a sorted dataset of int64 keys over gRPC.
package tree

import (
	"context"
	"os"
	"sync"

	"github.com/9rum/bstree/bst"
	"github.com/9rum/bstree/internal/data"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// treeServer implements the server API for Tree service.
type treeServer struct {
	UnimplementedTreeServer
	dataset data.Dataset
	done    chan<- os.Signal
	once    sync.Once
}

// NewTreeServer creates a new tree server on top of the given dataset.
// done is closed once Finalize is called.
func NewTreeServer(dataset data.Dataset, done chan<- os.Signal) TreeServer {
	return &treeServer{
		dataset: dataset,
		done:    done,
	}
}

// toStatus converts dataset errors to gRPC status errors.
func toStatus(err error) error {
	switch {
	case errors.Is(err, bst.ErrAllocation):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, bst.ErrValueConstruction):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Insert adds the given key to the dataset.
func (s *treeServer) Insert(ctx context.Context, in *wrapperspb.Int64Value) (*empty.Empty, error) {
	glog.V(1).Infof("Insert called with key: %d", in.GetValue())

	if err := s.dataset.Insert(in.GetValue()); err != nil {
		return nil, toStatus(err)
	}
	return new(empty.Empty), nil
}

// Search reports whether the given key is in the dataset.
func (s *treeServer) Search(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	glog.V(1).Infof("Search called with key: %d", in.GetValue())

	return wrapperspb.Bool(s.dataset.Has(in.GetValue())), nil
}

// Remove removes one occurrence of the given key, reporting whether one was
// found.
func (s *treeServer) Remove(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	glog.V(1).Infof("Remove called with key: %d", in.GetValue())

	return wrapperspb.Bool(s.dataset.Remove(in.GetValue())), nil
}

func (s *treeServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.dataset.Clear()
	return new(empty.Empty), nil
}

func (s *treeServer) Min(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	key, ok := s.dataset.Min()
	if !ok {
		return nil, status.Error(codes.NotFound, "empty dataset")
	}
	return wrapperspb.Int64(key), nil
}

func (s *treeServer) Max(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	key, ok := s.dataset.Max()
	if !ok {
		return nil, status.Error(codes.NotFound, "empty dataset")
	}
	return wrapperspb.Int64(key), nil
}

func (s *treeServer) Len(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.dataset.Len())), nil
}

// Traverse streams the keys of the dataset in the requested order.  The keys
// are read from a snapshot, so concurrent writes do not affect the stream.
func (s *treeServer) Traverse(in *wrapperspb.Int32Value, stream Tree_TraverseServer) (err error) {
	typ := bst.Traversal(in.GetValue())
	glog.Infof("Traverse called with type: %s", typ)

	if !typ.Valid() {
		return status.Errorf(codes.InvalidArgument, "invalid traversal type: %d", in.GetValue())
	}

	snapshot, err := s.dataset.Snapshot()
	if err != nil {
		return toStatus(err)
	}
	defer s.dataset.Release(snapshot)

	snapshot.Traverse(typ, func(key int64) bool {
		err = stream.Send(wrapperspb.Int64(key))
		return err == nil
	})
	return
}

// Finalize clears the dataset and signals the server to stop.
func (s *treeServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	defer s.once.Do(func() {
		close(s.done)
	})

	glog.Info("Finalize called")
	defer glog.Flush()

	s.dataset.OnTerminate()

	return new(empty.Empty), nil
}
