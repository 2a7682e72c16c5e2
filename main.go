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

// Package main implements the tree server. The server holds a single sorted
// dataset of int64 keys and stops once a client calls Finalize or the process
// receives SIGINT or SIGTERM.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/bstree/bst"
	"github.com/9rum/bstree/internal/data"
	"github.com/9rum/bstree/tree"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	freelistSize := flag.Int("freelist", bst.DefaultFreeListSize, "The number of freed nodes kept for reuse")
	capacity := flag.Int("capacity", 0, "The maximum number of live nodes, including snapshots (0 means unbounded)")
	flag.Parse()
	defer glog.Flush()

	if *freelistSize < 0 || *capacity < 0 {
		glog.Fatalf("invalid arguments: freelist %d capacity %d", *freelistSize, *capacity)
	}

	if err := serve(*port, *freelistSize, *capacity); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port, freelistSize, capacity int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(data.New(freelistSize, capacity))
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer(dataset data.Dataset) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	done := make(chan os.Signal)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func(server *grpc.Server) {
		select {
		case <-done:
		case s := <-sig:
			glog.Infof("received %v", s)
			dataset.OnTerminate()
		}
		signal.Stop(sig)
		server.GracefulStop()
	}(server)

	tree.RegisterTreeServer(server, tree.NewTreeServer(dataset, done))

	return server
}
