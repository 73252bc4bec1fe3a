package version

import (
	"runtime/debug"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{name: "no vcs", want: "dev"},
		{
			name: "clean",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "0123456",
		},
		{
			name: "dirty",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "abc (dirty)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := fromBuildInfo(&debug.BuildInfo{GoVersion: "go1.25.1", Settings: tt.settings})
			if got := info.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			if info.GoVersion != "go1.25.1" {
				t.Fatalf("unexpected go version %q", info.GoVersion)
			}
		})
	}
}

func TestCurrentWithoutBuildInfo(t *testing.T) {
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	t.Cleanup(func() { readBuildInfo = prev })

	if got := GetVersion(); got != "dev" {
		t.Fatalf("GetVersion() = %q, want dev", got)
	}
}
