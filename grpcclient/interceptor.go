package grpcclient

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryClientInterceptor returns a gRPC unary client interceptor that adds
// the given bearer token to outgoing request metadata as
// "authorization: Bearer <token>".
//
// The token is fixed for the lifetime of the interceptor; obtain it from an
// authclient.AuthorizedClient's Token().
func UnaryClientInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor returns a gRPC stream client interceptor that adds
// the given bearer token to outgoing request metadata as
// "authorization: Bearer <token>".
func StreamClientInterceptor(token string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return streamer(ctx, desc, cc, method, opts...)
	}
}

// DialOptions returns dial options wiring both interceptors for token.
//
// Usage:
//
//	conn, err := grpc.NewClient("server:9090", grpcclient.DialOptions(token)...)
func DialOptions(token string) []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithUnaryInterceptor(UnaryClientInterceptor(token)),
		grpc.WithStreamInterceptor(StreamClientInterceptor(token)),
	}
}
