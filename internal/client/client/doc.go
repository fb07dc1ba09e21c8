// Package client talks to the GratiLog journal service.
//
// # Overview
//
//  1. Service and Authenticator describe what the rest of the client needs
//     from the backend: journal reads and mutations, and account endpoints.
//  2. GRPCClient implements both over gRPC. A client built with tokens injects
//     the access token via a unary interceptor and transparently refreshes it
//     when the server answers "token expired"; the refreshed pair is handed
//     to the OnTokens hook so it can be persisted.
//  3. InitDatabase and RunMigrations bootstrap the local sqlite database with
//     embedded goose migrations.
//
// # Error Handling
//
// gRPC statuses are mapped once, in mapError:
//
//	Unauthenticated                                  -> ErrUnauthorized
//	Unavailable, DeadlineExceeded                     -> ErrUnavailable
//	InvalidArgument, NotFound, AlreadyExists,
//	PermissionDenied, FailedPrecondition              -> *RejectedError
//	anything else                                     -> wrapped "rpc error"
//
// AsResult turns a (value, error) pair into a journal.Result for the views.
package client
