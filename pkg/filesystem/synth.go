package filesystem

import (
	"runtime"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// SynthBacked is implemented by filesystems a synthfs pipeline can write
// to directly. Synth returns nil when it cannot.
type SynthBacked interface {
	Synth() synthfilesystem.FullFileSystem
}

// Synth returns the OS root as a synthfs filesystem taking absolute paths.
// Windows paths carry a volume name, so nil is returned there.
func (o *osFS) Synth() synthfilesystem.FullFileSystem {
	if runtime.GOOS == "windows" {
		return nil
	}
	return NewSynthOS()
}

// NewSynthOS returns the OS root as a synthfs filesystem taking absolute
// paths
func NewSynthOS() synthfilesystem.FullFileSystem {
	return synthfs.NewPathAwareFileSystem(synthfilesystem.NewOSFileSystem("/"), "/").WithAbsolutePaths()
}

// NewSynthMemory returns an empty in-memory synthfs filesystem taking
// absolute paths
func NewSynthMemory() synthfilesystem.FullFileSystem {
	return synthfs.NewPathAwareFileSystem(synthfilesystem.NewTestFileSystem(), "/").WithAbsolutePaths()
}
