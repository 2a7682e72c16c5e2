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

package tree

import (
	"context"
	"io"
	"math/rand"
	"net"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/9rum/bstree/bst"
	"github.com/9rum/bstree/internal/data"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// serve starts a tree server over an in-memory listener and returns a client
// connected to it together with the channel closed by Finalize.
func serve(t *testing.T, capacity int) (TreeClient, <-chan os.Signal) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpc_recovery.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(grpc_recovery.StreamServerInterceptor()),
	)
	done := make(chan os.Signal)
	RegisterTreeServer(server, NewTreeServer(data.New(bst.DefaultFreeListSize, capacity), done))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err, "did not connect")
	t.Cleanup(func() { conn.Close() })

	return NewTreeClient(conn), done
}

// traverse collects the keys streamed by Traverse.
func traverse(t *testing.T, c TreeClient, typ bst.Traversal) []int64 {
	t.Helper()

	stream, err := c.Traverse(context.Background(), wrapperspb.Int32(int32(typ)))
	require.NoError(t, err)

	var keys []int64
	for {
		key, err := stream.Recv()
		if err == io.EOF {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, key.GetValue())
	}
}

func TestTreeServer(t *testing.T) {
	const (
		datasetSize = 1 << 10
		worldSize   = 1 << 2
	)
	ctx := context.Background()
	c, done := serve(t, 0)

	_, err := c.Min(ctx, new(emptypb.Empty))
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = c.Max(ctx, new(emptypb.Empty))
	require.Equal(t, codes.NotFound, status.Code(err))

	keys := rand.Perm(datasetSize)
	var wg sync.WaitGroup
	for rank := 0; rank < worldSize; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			for index := rank; index < datasetSize; index += worldSize {
				if _, err := c.Insert(ctx, wrapperspb.Int64(int64(keys[index]))); err != nil {
					t.Errorf("could not insert: %v", err)
				}
			}
		}(rank)
	}
	wg.Wait()

	r, err := c.Len(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, datasetSize, r.GetValue())

	r, err = c.Min(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, 0, r.GetValue())
	r, err = c.Max(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, datasetSize-1, r.GetValue())

	ascending := traverse(t, c, bst.TraverseInOrder)
	require.Len(t, ascending, datasetSize)
	require.True(t, sort.SliceIsSorted(ascending, func(i, j int) bool { return ascending[i] < ascending[j] }))

	descending := traverse(t, c, bst.TraverseReverse)
	require.Len(t, descending, datasetSize)
	for i, key := range descending {
		require.Equal(t, ascending[datasetSize-1-i], key)
	}

	// pre-order starts at the root, which is the first key inserted by some worker
	preorder := traverse(t, c, bst.TraversePreOrder)
	require.Len(t, preorder, datasetSize)
	postorder := traverse(t, c, bst.TraversePostOrder)
	require.Len(t, postorder, datasetSize)
	require.Equal(t, preorder[0], postorder[datasetSize-1])

	found, err := c.Search(ctx, wrapperspb.Int64(datasetSize/2))
	require.NoError(t, err)
	require.True(t, found.GetValue())
	removed, err := c.Remove(ctx, wrapperspb.Int64(datasetSize/2))
	require.NoError(t, err)
	require.True(t, removed.GetValue())
	found, err = c.Search(ctx, wrapperspb.Int64(datasetSize/2))
	require.NoError(t, err)
	require.False(t, found.GetValue())
	removed, err = c.Remove(ctx, wrapperspb.Int64(datasetSize/2))
	require.NoError(t, err)
	require.False(t, removed.GetValue())

	_, err = c.Clear(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	r, err = c.Len(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Zero(t, r.GetValue())
	require.Empty(t, traverse(t, c, bst.TraverseInOrder))

	_, err = c.Finalize(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	_, ok := <-done
	require.False(t, ok, "done is not closed")

	// a second Finalize must not close done again
	_, err = c.Finalize(ctx, new(emptypb.Empty))
	require.NoError(t, err)
}

func TestTreeServerTraverseInvalid(t *testing.T) {
	c, _ := serve(t, 0)

	stream, err := c.Traverse(context.Background(), wrapperspb.Int32(int32(bst.TraverseReverse)+1))
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTreeServerCapacity(t *testing.T) {
	const capacity = 1 << 4
	ctx := context.Background()
	c, _ := serve(t, capacity)

	for key := int64(0); key < capacity; key++ {
		_, err := c.Insert(ctx, wrapperspb.Int64(key))
		require.NoError(t, err)
	}
	_, err := c.Insert(ctx, wrapperspb.Int64(capacity))
	require.Equal(t, codes.ResourceExhausted, status.Code(err))

	// the snapshot needs as many nodes as the dataset holds
	stream, err := c.Traverse(ctx, wrapperspb.Int32(int32(bst.TraverseInOrder)))
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.ResourceExhausted, status.Code(err))

	for key := int64(0); key < capacity/2; key++ {
		removed, err := c.Remove(ctx, wrapperspb.Int64(key))
		require.NoError(t, err)
		require.True(t, removed.GetValue())
	}
	keys := traverse(t, c, bst.TraverseInOrder)
	require.Len(t, keys, capacity/2)
	require.EqualValues(t, capacity/2, keys[0])

	// the snapshot has been released
	_, err = c.Insert(ctx, wrapperspb.Int64(0))
	require.NoError(t, err)
}

func TestTreeServiceDesc(t *testing.T) {
	ctx := context.Background()
	srv := NewTreeServer(data.New(bst.DefaultFreeListSize, 0), make(chan os.Signal))
	handlers := make(map[string]func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error))
	for _, method := range Tree_ServiceDesc.Methods {
		handlers[method.MethodName] = method.Handler
	}
	require.Len(t, handlers, 8)

	decode := func(in proto.Message) func(interface{}) error {
		return func(m interface{}) error {
			proto.Merge(m.(proto.Message), in)
			return nil
		}
	}

	out, err := handlers["Insert"](srv, ctx, decode(wrapperspb.Int64(7)), nil)
	require.NoError(t, err)
	require.IsType(t, new(emptypb.Empty), out)

	out, err = handlers["Search"](srv, ctx, decode(wrapperspb.Int64(7)), nil)
	require.NoError(t, err)
	require.True(t, out.(*wrapperspb.BoolValue).GetValue())

	var fullMethod string
	interceptor := func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		fullMethod = info.FullMethod
		return handler(ctx, req)
	}
	out, err = handlers["Len"](srv, ctx, decode(new(emptypb.Empty)), interceptor)
	require.NoError(t, err)
	require.EqualValues(t, 1, out.(*wrapperspb.Int64Value).GetValue())
	require.Equal(t, Tree_Len_FullMethodName, fullMethod)
}
