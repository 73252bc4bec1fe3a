// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// Info describes the build that produced the running binary.
type Info struct {
	Revision  string
	Modified  bool
	GoVersion string
}

// String renders the short revision, "dev" when no revision is stamped.
func (i Info) String() string {
	if i.Revision == "" {
		return "dev"
	}
	if i.Modified {
		return fmt.Sprintf("%s (dirty)", i.Revision)
	}
	return i.Revision
}

var readBuildInfo = debug.ReadBuildInfo

// Current reads the embedded build information.
func Current() Info {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Info{}
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Info {
	out := Info{GoVersion: info.GoVersion}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
			if len(out.Revision) > 7 {
				out.Revision = out.Revision[:7]
			}
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}
	return out
}

// GetVersion returns the short version string.
func GetVersion() string {
	return Current().String()
}
