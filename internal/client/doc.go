// Package client talks to the remote bracket generation service.
//
// A bracket is requested with a single HTTP GET carrying the madness level
// as a query parameter. The client performs no retries; every failure is
// returned to the caller, which logs it and shows UserMessage to the user.
package client
