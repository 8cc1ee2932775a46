// Package version exposes build metadata of the habits binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/habits/version.Version=1.2.3 \
//	  -X github.com/ncobase/habits/version.Branch=main \
//	  -X github.com/ncobase/habits/version.Revision=abc1234"
//
// Unset revision and build time fall back to the VCS stamp embedded by the
// Go toolchain.
package version
