// Package day07 rebuilds a filesystem tree from a terminal transcript and
// finds directories worth deleting.
package day07

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

const (
	SmallDirLimit = 100_000
	DiskSize      = 70_000_000
	UpdateSize    = 30_000_000
)

// Entry is either a *File or a *Dir.
type Entry interface {
	Size() int
	entry()
}

type File struct {
	Name  string
	Bytes int
}

func (f *File) Size() int { return f.Bytes }
func (*File) entry()      {}

type Dir struct {
	Name    string
	Entries []Entry
}

func (*Dir) entry() {}

// Size is the total size of every file below d.
func (d *Dir) Size() int {
	return d.Walk(func(*Dir, int) {})
}

// Walk calls f for d and every directory below it, children before their
// parent, with the directory's total size. It returns the size of d.
func (d *Dir) Walk(f func(dir *Dir, size int)) int {
	size := 0
	for _, e := range d.Entries {
		switch e := e.(type) {
		case *File:
			size += e.Bytes
		case *Dir:
			size += e.Walk(f)
		}
	}
	f(d, size)
	return size
}

func (d *Dir) child(name string) Entry {
	for _, e := range d.Entries {
		switch e := e.(type) {
		case *File:
			if e.Name == name {
				return e
			}
		case *Dir:
			if e.Name == name {
				return e
			}
		}
	}
	return nil
}

// add appends e unless an identical entry is already listed.
func (d *Dir) add(name string, e Entry) error {
	switch old := d.child(name).(type) {
	case nil:
		d.Entries = append(d.Entries, e)
		return nil
	case *File:
		if f, ok := e.(*File); ok && f.Bytes == old.Bytes {
			return nil
		}
	case *Dir:
		if _, ok := e.(*Dir); ok {
			return nil
		}
	}
	return fmt.Errorf("%q listed twice with different contents", name)
}

func pwd(path *aoc.Stack[*Dir]) string {
	var names []string
	for _, d := range path.Slice()[1:] {
		names = append(names, d.Name)
	}
	return "/" + strings.Join(names, "/")
}

// Parse replays a transcript of "$ cd" and "$ ls" commands and returns the
// root directory.
func Parse(in string) (*Dir, error) {
	root := &Dir{Name: "/"}
	path := aoc.StackOf(root)
	listing := false
	for i, line := range aoc.Lines(in) {
		cwd, _ := path.Peek()
		if cmd, ok := strings.CutPrefix(line, "$ "); ok {
			listing = false
			fs := strings.Fields(cmd)
			switch {
			case len(fs) == 1 && fs[0] == "ls":
				listing = true
			case len(fs) == 2 && fs[0] == "cd":
				switch name := fs[1]; name {
				case "/":
					path = aoc.StackOf(root)
				case "..":
					if path.Len() == 1 {
						return nil, aoc.Errorf(i+1, line, "cd .. from /")
					}
					path.Pop()
				default:
					d, ok := cwd.child(name).(*Dir)
					if !ok {
						return nil, aoc.Errorf(i+1, line, "no directory %q in %s", name, pwd(path))
					}
					path.Push(d)
				}
			default:
				return nil, aoc.Errorf(i+1, line, "unknown command")
			}
			continue
		}
		if !listing {
			return nil, aoc.Errorf(i+1, line, "output outside of ls")
		}
		a, name, ok := strings.Cut(line, " ")
		if !ok || name == "" {
			return nil, aoc.Errorf(i+1, line, "want \"dir <name>\" or \"<size> <name>\"")
		}
		var e Entry
		if a == "dir" {
			e = &Dir{Name: name}
		} else {
			n, err := aoc.Atoi(a)
			if err != nil {
				return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
			}
			if n < 0 {
				return nil, aoc.Errorf(i+1, line, "negative file size")
			}
			e = &File{Name: name, Bytes: n}
		}
		if err := cwd.add(name, e); err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: fmt.Errorf("in %s: %w", pwd(path), err)}
		}
	}
	return root, nil
}

// SmallDirsTotal sums the sizes of all directories of at most
// SmallDirLimit. Nested directories count once for themselves and again
// inside each parent.
func SmallDirsTotal(root *Dir) int {
	total := 0
	root.Walk(func(_ *Dir, size int) {
		if size <= SmallDirLimit {
			total += size
		}
	})
	return total
}

// DirToDelete returns the size of the smallest directory whose removal
// leaves UpdateSize free on a disk of DiskSize. It returns 0 when there is
// already enough room.
func DirToDelete(root *Dir) (int, error) {
	used := root.Size()
	if used > DiskSize {
		return 0, fmt.Errorf("%w: %d bytes used on a %d byte disk", aoc.ErrInvariant, used, DiskSize)
	}
	need := UpdateSize - (DiskSize - used)
	if need <= 0 {
		return 0, nil
	}
	best := used
	root.Walk(func(_ *Dir, size int) {
		if size >= need && size < best {
			best = size
		}
	})
	return best, nil
}
