// +build windows

package loader

import "golang.org/x/sys/windows"

// accessible reports whether path exists, is readable, and is not itself
// a directory, the Windows counterpart to access_unix.go's unix.Access
// probe.
func accessible(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0
}
