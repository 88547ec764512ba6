package version

// Version is the current version of objectid, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/objectid/internal/version.Version=...".
var Version = "0.1.0-dev"
