package widgets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/gostagecraft/stagecraft"
)

// FileBrowser is a MultiColumnListBox specialized to walk the local
// filesystem (spec.md §4.8, SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/filebrowser.py's `_populate_list`:
// ".." entry when not at the filesystem root, directories sorted ahead
// of files, optional filename-filter regexp, size/mtime columns via
// `readable_mem`/`readable_timestamp`). Libs: stdlib `os`,
// `path/filepath`, `regexp` — the original leans on Python's
// `os.listdir`/`os.lstat`; Go's stdlib equivalents are the direct,
// idiomatic counterpart, so there's no third-party dependency to
// reach for here.
type FileBrowser struct {
	*MultiColumnListBox
	Root     string
	Filter   *regexp.Regexp
	OnSelect func(path string)

	initialized bool
}

// NewFileBrowser creates a FileBrowser named name rooted at root. filter,
// if non-empty, is a regexp matched against file (not directory) names.
func NewFileBrowser(name, root, filter string, onSelect func(string)) *FileBrowser {
	var re *regexp.Regexp
	if filter != "" {
		re = regexp.MustCompile(filter)
	}
	inner := NewMultiColumnListBox(name, []Column{
		{Width: 40, Align: AlignLeft},
		{Width: 8, Align: AlignRight},
		{Width: 14, Align: AlignRight},
	}, nil)
	inner.Titles = []string{"Filename", "Size", "Last modified"}
	fb := &FileBrowser{MultiColumnListBox: inner, Root: root, Filter: re, OnSelect: onSelect}
	inner.OnChange = func(int) {}
	return fb
}

// readableMem matches readable_mem's K/M/G/T/P scaling.
func readableMem(size int64) string {
	mem := float64(size)
	for _, suffix := range []string{"", "K", "M", "G", "T"} {
		if mem < 10000 {
			return fmt.Sprintf("%d%s", int64(mem), suffix)
		}
		mem /= 1024
	}
	return fmt.Sprintf("%dP", int64(mem))
}

// readableTimestamp matches readable_timestamp: time-of-day if today,
// else the date.
func readableTimestamp(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("03:04:05PM")
	}
	return t.Format("2006-01-02")
}

func (fb *FileBrowser) populate(root string) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return
	}
	info, err := os.Stat(abs)
	if err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	fb.Root = abs

	var rows []Row
	parent := filepath.Dir(abs)
	if parent != abs {
		rows = append(rows, Row{Cells: []string{"|-+ .."}, Value: parent})
	}

	entries, _ := os.ReadDir(abs)
	var dirRows, fileRows []Row
	for _, e := range entries {
		full := filepath.Join(abs, e.Name())
		fi, statErr := os.Lstat(full)
		var size int64
		var mtime time.Time
		if statErr == nil {
			size = fi.Size()
			mtime = fi.ModTime()
		}
		label := "|-- " + e.Name()
		if e.IsDir() {
			label = "|-+ " + e.Name()
			dirRows = append(dirRows, Row{
				Cells: []string{label, readableMem(size), readableTimestamp(mtime)},
				Value: full,
			})
			continue
		}
		if fb.Filter != nil && !fb.Filter.MatchString(e.Name()) {
			continue
		}
		fileRows = append(fileRows, Row{
			Cells: []string{label, readableMem(size), readableTimestamp(mtime)},
			Value: full,
		})
	}
	sort.Slice(dirRows, func(i, j int) bool { return dirRows[i].Cells[0] < dirRows[j].Cells[0] })
	sort.Slice(fileRows, func(i, j int) bool { return fileRows[i].Cells[0] < fileRows[j].Cells[0] })
	rows = append(rows, dirRows...)
	rows = append(rows, fileRows...)

	fb.Rows = rows
	if len(fb.Titles) > 0 {
		fb.Titles[0] = fb.Root
	}
}

// Select activates the current row: descends into directories, or
// forwards to OnSelect for files, mirroring `_on_selection`.
func (fb *FileBrowser) Select() {
	v := fb.AnyValue()
	path, ok := v.(string)
	if !ok || path == "" {
		return
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		fb.populate(path)
		return
	}
	if fb.OnSelect != nil {
		fb.OnSelect(path)
	}
}

func (fb *FileBrowser) Reset() {
	if !fb.initialized {
		fb.populate(fb.Root)
		fb.initialized = true
	}
	fb.MultiColumnListBox.Reset()
}

// ProcessEvent activates the selection on Enter before delegating
// navigation/search keys to the embedded MultiColumnListBox.
func (fb *FileBrowser) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if ke, ok := ev.(stagecraft.KeyboardEvent); ok && ke.Key == stagecraft.KeyEnter {
		fb.Select()
		return nil
	}
	return fb.MultiColumnListBox.ProcessEvent(ev)
}
