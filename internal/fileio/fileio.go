package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrFileNotReadable is returned when the input file cannot be opened or read.
	ErrFileNotReadable = errors.New("file not readable")
	// ErrFileNotWritable is returned when the output file cannot be created or written.
	ErrFileNotWritable = errors.New("file not writable")
)

// ReadBinary loads the whole file at path. The bytes are returned exactly
// as stored; nothing is returned on failure.
//
// Parameters:
//   - path: The file to read.
//
// Returns:
//   - []byte: The file contents.
//   - error: An error wrapping ErrFileNotReadable.
func ReadBinary(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrFileNotReadable, path)
	}

	var buf bytes.Buffer
	buf.Grow(int(fi.Size()))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	return buf.Bytes(), nil
}

// WriteText overwrites (or creates) the file at path with text. Symlinks
// are followed, so the file a link points to is updated and the link stays
// in place, and an existing file keeps its permissions. The content goes to
// a temporary file next to the destination and is renamed into place, so a
// failed write leaves any previous file untouched. When no temporary file
// can be created there, the destination is truncated and written in place.
//
// Parameters:
//   - path: The destination file.
//   - text: The content to write.
//
// Returns:
//   - error: An error wrapping ErrFileNotWritable.
func WriteText(path string, text string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if fi, lerr := os.Lstat(path); lerr == nil && fi.Mode()&os.ModeSymlink != 0 {
			// Dangling link: opening it creates the file it names.
			return notWritable(writeInPlace(path, text, 0644))
		}
		target = path
	}

	mode := os.FileMode(0644)
	if fi, err := os.Stat(target); err == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return notWritable(writeInPlace(target, text, mode))
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, text, mode); err != nil {
		os.Remove(tmpName)
		return notWritable(err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return notWritable(err)
	}
	return nil
}

func notWritable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrFileNotWritable, err)
}

func writeInPlace(path string, text string, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAndSync(f *os.File, text string, mode os.FileMode) error {
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
