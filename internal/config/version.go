package config

// Version is the graphpane binary version.
// Set at build time via: -ldflags "-X github.com/graphpane/graphpane/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
