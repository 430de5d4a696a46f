//go:build mage

// Package main provides build targets for storedesk using Mage.
//
// Usage:
//
//	mage build        Compile the storedesk binary to bin/
//	mage test:all     Run every test
//	mage test:unit    Run tests with -short and the race detector
//	mage test:cover   Write a coverage profile and print the summary
//	mage lint         Run golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install storedesk to GOPATH/bin
//	mage stats        Print Go lines of code per package
package main

const (
	binaryName = "storedesk"
	binaryDir  = "bin"
	cmdDir     = "./cmd/storedesk"
	coverFile  = "coverage.out"
)

// Default builds the binary.
var Default = Build
