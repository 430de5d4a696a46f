// Package storedesk holds module-wide metadata for the storedesk tool.
package storedesk

// Version is the storedesk release version.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/storedesk"
