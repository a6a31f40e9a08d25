// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"
	"path"

	"golang.org/x/sys/unix"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), ".jasper_history"))
}

// lock takes an advisory lock on f that is released when f is closed.
// Concurrent sessions wait for each other instead of interleaving writes.
func lock(f *os.File, exclusive bool) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}

	return unix.Flock(int(f.Fd()), how)
}
