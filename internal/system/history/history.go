// Released under an MIT license. See LICENSE.

// Package history persists the lines entered at jasper's prompt.
package history

import (
	"io"
	"os"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	err = lock(f, false)
	if err != nil {
		f.Close()

		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the contents of the history file with what write produces.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(create)
	if err != nil {
		return err
	}

	err = lock(f, true)
	if err != nil {
		f.Close()

		return err
	}

	err = f.Truncate(0)
	if err != nil {
		f.Close()

		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// create opens the file without truncating it. Truncation waits for the lock.
func create(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o600)
}
