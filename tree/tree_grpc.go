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

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The Tree service is described directly in terms of the protobuf well-known
// types, so it needs no generated message code.

const (
	Tree_Insert_FullMethodName   = "/bstree.Tree/Insert"
	Tree_Search_FullMethodName   = "/bstree.Tree/Search"
	Tree_Remove_FullMethodName   = "/bstree.Tree/Remove"
	Tree_Clear_FullMethodName    = "/bstree.Tree/Clear"
	Tree_Min_FullMethodName      = "/bstree.Tree/Min"
	Tree_Max_FullMethodName      = "/bstree.Tree/Max"
	Tree_Len_FullMethodName      = "/bstree.Tree/Len"
	Tree_Traverse_FullMethodName = "/bstree.Tree/Traverse"
	Tree_Finalize_FullMethodName = "/bstree.Tree/Finalize"
)

// TreeClient is the client API for Tree service.
type TreeClient interface {
	Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Search(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Min(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Max(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Traverse(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (Tree_TraverseClient, error)
	Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type treeClient struct {
	cc grpc.ClientConnInterface
}

func NewTreeClient(cc grpc.ClientConnInterface) TreeClient {
	return &treeClient{cc}
}

func (c *treeClient) Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Tree_Insert_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Search(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	err := c.cc.Invoke(ctx, Tree_Search_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	err := c.cc.Invoke(ctx, Tree_Remove_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Tree_Clear_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Min(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	err := c.cc.Invoke(ctx, Tree_Min_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Max(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	err := c.cc.Invoke(ctx, Tree_Max_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	err := c.cc.Invoke(ctx, Tree_Len_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *treeClient) Traverse(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (Tree_TraverseClient, error) {
	stream, err := c.cc.NewStream(ctx, &Tree_ServiceDesc.Streams[0], Tree_Traverse_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &treeTraverseClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Tree_TraverseClient interface {
	Recv() (*wrapperspb.Int64Value, error)
	grpc.ClientStream
}

type treeTraverseClient struct {
	grpc.ClientStream
}

func (x *treeTraverseClient) Recv() (*wrapperspb.Int64Value, error) {
	m := new(wrapperspb.Int64Value)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *treeClient) Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Tree_Finalize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TreeServer is the server API for Tree service.
// All implementations must embed UnimplementedTreeServer
// for forward compatibility
type TreeServer interface {
	Insert(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	Search(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Min(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Max(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Traverse(*wrapperspb.Int32Value, Tree_TraverseServer) error
	Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	mustEmbedUnimplementedTreeServer()
}

// UnimplementedTreeServer must be embedded to have forward compatible implementations.
type UnimplementedTreeServer struct {
}

func (UnimplementedTreeServer) Insert(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedTreeServer) Search(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Search not implemented")
}
func (UnimplementedTreeServer) Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedTreeServer) Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedTreeServer) Min(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Min not implemented")
}
func (UnimplementedTreeServer) Max(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Max not implemented")
}
func (UnimplementedTreeServer) Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Len not implemented")
}
func (UnimplementedTreeServer) Traverse(*wrapperspb.Int32Value, Tree_TraverseServer) error {
	return status.Errorf(codes.Unimplemented, "method Traverse not implemented")
}
func (UnimplementedTreeServer) Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedTreeServer) mustEmbedUnimplementedTreeServer() {}

func RegisterTreeServer(s grpc.ServiceRegistrar, srv TreeServer) {
	s.RegisterService(&Tree_ServiceDesc, srv)
}

// unaryHandler adapts a typed unary method of TreeServer to the Handler of a
// grpc.MethodDesc.
func unaryHandler[In any, Out any](fullMethod string, call func(TreeServer, context.Context, *In) (*Out, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(In)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TreeServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(TreeServer), ctx, req.(*In))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func _Tree_Traverse_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(wrapperspb.Int32Value)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TreeServer).Traverse(m, &treeTraverseServer{stream})
}

type Tree_TraverseServer interface {
	Send(*wrapperspb.Int64Value) error
	grpc.ServerStream
}

type treeTraverseServer struct {
	grpc.ServerStream
}

func (x *treeTraverseServer) Send(m *wrapperspb.Int64Value) error {
	return x.ServerStream.SendMsg(m)
}

// Tree_ServiceDesc is the grpc.ServiceDesc for Tree service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Tree_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bstree.Tree",
	HandlerType: (*TreeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Insert",
			Handler:    unaryHandler(Tree_Insert_FullMethodName, TreeServer.Insert),
		},
		{
			MethodName: "Search",
			Handler:    unaryHandler(Tree_Search_FullMethodName, TreeServer.Search),
		},
		{
			MethodName: "Remove",
			Handler:    unaryHandler(Tree_Remove_FullMethodName, TreeServer.Remove),
		},
		{
			MethodName: "Clear",
			Handler:    unaryHandler(Tree_Clear_FullMethodName, TreeServer.Clear),
		},
		{
			MethodName: "Min",
			Handler:    unaryHandler(Tree_Min_FullMethodName, TreeServer.Min),
		},
		{
			MethodName: "Max",
			Handler:    unaryHandler(Tree_Max_FullMethodName, TreeServer.Max),
		},
		{
			MethodName: "Len",
			Handler:    unaryHandler(Tree_Len_FullMethodName, TreeServer.Len),
		},
		{
			MethodName: "Finalize",
			Handler:    unaryHandler(Tree_Finalize_FullMethodName, TreeServer.Finalize),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Traverse",
			Handler:       _Tree_Traverse_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "tree.proto",
}
