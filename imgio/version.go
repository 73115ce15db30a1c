package imgio

import (
	"runtime/debug"
	"strings"
)

// CodecModule is the module providing the extended image codecs.
const CodecModule = "golang.org/x/image"

// Version reports the active codec module version, without the "v" prefix.
// Empty when no build info is available.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, dep := range bi.Deps {
		if dep.Path == CodecModule {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}

	return ""
}

func UsingV2() bool {
	return checkVersion("2.")
}

func UsingV3() bool {
	return checkVersion("3.")
}

func checkVersion(version string) bool {
	return strings.HasPrefix(Version(), version)
}
