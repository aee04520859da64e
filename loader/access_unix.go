// +build !windows

package loader

import "golang.org/x/sys/unix"

// accessible reports whether path exists and is readable, the permission
// probe the search algorithm runs over each module-search candidate
// before accepting it as a match, mirroring how the teacher splits
// system_unix.go/system_windows.go rather than branching on
// runtime.GOOS at every call site.
func accessible(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
