// Package authsdk is a Go client for the medibook auth service. It exposes
// unauthenticated operations on Client and authenticated operations on
// Session, which refreshes its access token transparently.
package authsdk
