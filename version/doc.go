// Package version reports the build version of the testrail binaries.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/testrail/version.Version=1.2.0" ./cmd/trctl
//
// Values not set that way are taken from the module build info when the
// binary was built from a VCS checkout.
package version
