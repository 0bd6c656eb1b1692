// Package output writes generated data files so that a run either replaces
// every destination or leaves them all untouched.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// OutputError reports a destination that could not be created, written or
// committed. Output errors are fatal to the run.
type OutputError struct {
	Path string
	Op   string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

var errIsDir = errors.New("destination is a directory")

// File buffers writes in a temporary sibling of Path until Commit.
type File struct {
	Path string
	tmp  *os.File
	done bool
}

// Create opens a temporary file next to path, creating parent directories.
func Create(path string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &OutputError{Path: path, Op: "mkdir", Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, &OutputError{Path: path, Op: "create", Err: err}
	}
	return &File{Path: path, tmp: tmp}, nil
}

func (f *File) Write(p []byte) (int, error) {
	n, err := f.tmp.Write(p)
	if err != nil {
		return n, &OutputError{Path: f.Path, Op: "write", Err: err}
	}
	return n, nil
}

// Commit closes the temporary file and moves it over Path.
func (f *File) Commit() error {
	if f.done {
		return nil
	}
	if err := f.prepare(); err != nil {
		f.Abort()
		return err
	}
	backup, err := f.install()
	if err != nil {
		return err
	}
	if backup != "" {
		os.Remove(backup)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}

// prepare checks that Path can be replaced and finishes the temporary file.
func (f *File) prepare() error {
	if info, err := os.Lstat(f.Path); err == nil && info.IsDir() {
		return &OutputError{Path: f.Path, Op: "stat", Err: errIsDir}
	}
	if err := f.tmp.Close(); err != nil {
		return &OutputError{Path: f.Path, Op: "close", Err: err}
	}
	if err := os.Chmod(f.tmp.Name(), 0o644); err != nil {
		return &OutputError{Path: f.Path, Op: "chmod", Err: err}
	}
	return nil
}

// install moves an existing Path aside, then the temporary file into
// place. It returns where the previous contents went, "" if there were none.
// On failure Path is left as it was.
func (f *File) install() (backup string, err error) {
	f.done = true
	if _, err := os.Lstat(f.Path); err == nil {
		backup = f.tmp.Name() + ".bak"
		if err := os.Rename(f.Path, backup); err != nil {
			os.Remove(f.tmp.Name())
			return "", &OutputError{Path: f.Path, Op: "backup", Err: err}
		}
	}
	if err := os.Rename(f.tmp.Name(), f.Path); err != nil {
		os.Remove(f.tmp.Name())
		if backup != "" {
			os.Rename(backup, f.Path)
		}
		return "", &OutputError{Path: f.Path, Op: "rename", Err: err}
	}
	return backup, nil
}

// restore undoes a successful install.
func (f *File) restore(backup string) {
	if backup == "" {
		os.Remove(f.Path)
		return
	}
	os.Rename(backup, f.Path)
}

// Set groups the files of one run.
type Set struct {
	files []*File
}

// Create adds a new file to the set.
func (s *Set) Create(path string) (*File, error) {
	f, err := Create(path)
	if err != nil {
		return nil, err
	}
	s.files = append(s.files, f)
	return f, nil
}

// Commit moves every file into place, or none of them. Every destination
// is checked before the first rename, and if a rename still fails the
// files already moved are put back the way they were.
func (s *Set) Commit() error {
	for _, f := range s.files {
		if f.done {
			continue
		}
		if err := f.prepare(); err != nil {
			s.Abort()
			return err
		}
	}

	backups := make([]string, 0, len(s.files))
	installed := make([]*File, 0, len(s.files))
	for _, f := range s.files {
		if f.done {
			continue
		}
		backup, err := f.install()
		if err != nil {
			for i := len(installed) - 1; i >= 0; i-- {
				installed[i].restore(backups[i])
			}
			s.Abort()
			return err
		}
		installed = append(installed, f)
		backups = append(backups, backup)
	}

	for _, b := range backups {
		if b != "" {
			os.Remove(b)
		}
	}
	return nil
}

// Abort discards every uncommitted file.
func (s *Set) Abort() {
	for _, f := range s.files {
		f.Abort()
	}
}
