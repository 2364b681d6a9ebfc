package version

// Version is the build version, overridden at link time:
//
//	-ldflags "-X github.com/deheerhoreca/Aoe-ModelCache/internal/version.Version=v1.0.0"
//
// Version 是构建版本，可在链接时通过 -ldflags 覆盖。
var Version = "dev"
