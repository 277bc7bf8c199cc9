// Package grpcclient attaches a connect-time bearer token to outgoing gRPC calls.
//
// It offers unary and stream client interceptors that inject
// "authorization: Bearer <token>" metadata, plus a fluent Builder for
// connections with TLS/mTLS. The token is fixed for the lifetime of the
// connection, mirroring the immutable-token contract of authclient.
//
// # Quick Start
//
//	client, err := authclient.Connect(ctx, settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conn, err := grpcclient.NewBuilder().
//	    WithAddress("server.example.com:9090").
//	    WithBearerToken(client.Token().AccessToken).
//	    WithTLS("/path/to/ca.crt", "", "", "").
//	    Build()
//
// # Manual Composition
//
//	conn, err := grpc.NewClient("server:9090", grpcclient.DialOptions(token)...)
package grpcclient
