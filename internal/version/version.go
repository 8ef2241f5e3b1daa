package version

// AppVersion is the uvctl release version. Overridden at build time via
// -ldflags "-X uvctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
