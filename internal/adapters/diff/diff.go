// Package diff parses unified diff text into per-file patches.
//
// Plain unified diffs and git diffs are both accepted, including rename
// detection, new and deleted files, and binary markers. Line numbers on
// added lines are positions in the post-change file, which is what a
// reviewer sees when the patch lands
package diff

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// AddedLine is one line introduced by a patch. Line is the number in the
// post-change file. Position is the review anchor: counting from the line
// below the file's first hunk header, every diff line including later hunk
// headers occupies one position
type AddedLine struct {
	Line     int    `json:"line"`
	Position int    `json:"position"`
	Content  string `json:"content"`
}

// Patch is the change to a single file
type Patch struct {
	OldPath  string      `json:"old_path,omitempty"`
	NewPath  string      `json:"new_path,omitempty"`
	IsNew    bool        `json:"is_new,omitempty"`
	IsDelete bool        `json:"is_delete,omitempty"`
	IsRename bool        `json:"is_rename,omitempty"`
	Binary   bool        `json:"binary,omitempty"`
	Added    []AddedLine `json:"added,omitempty"`
}

// Path is the best name for the patched file: the post-change path when
// the file still exists, the old one for deletions
func (p Patch) Path() string {
	if p.NewPath != "" {
		return p.NewPath
	}
	return p.OldPath
}

const maxLineSize = 16 * 1024 * 1024

var hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse reads a unified diff and returns one Patch per file section.
// Anything before the first header and after the last hunk, like commit
// message preambles and format-patch trailers, is skipped
func Parse(r io.Reader) ([]Patch, error) {
	p := parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return p.run()
}

// ParseString is Parse over an in-memory diff
func ParseString(s string) ([]Patch, error) { return Parse(strings.NewReader(s)) }

type parser struct {
	sc      *bufio.Scanner
	lineno  int
	patches []Patch

	cur     *Patch
	sawHunk bool
	pos     int

	inHunk    bool
	newLine   int
	oldRemain int
	newRemain int
}

func (p *parser) run() ([]Patch, error) {
	for p.sc.Scan() {
		p.lineno++
		if err := p.line(p.sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("diff: read: %w", err)
	}
	if err := p.closeHunk(); err != nil {
		return nil, err
	}
	p.flush()
	return p.patches, nil
}

func (p *parser) line(s string) error {
	if p.inHunk {
		return p.hunkLine(s)
	}

	switch {
	case strings.HasPrefix(s, "diff --git "):
		p.flush()
		old, new := splitGitHeader(strings.TrimPrefix(s, "diff --git "))
		p.cur = &Patch{OldPath: old, NewPath: new}
		p.sawHunk = false
		p.pos = 0

	case strings.HasPrefix(s, "@@"):
		if p.cur == nil {
			return fmt.Errorf("diff: line %d: hunk before file header", p.lineno)
		}
		m := hunkRe.FindStringSubmatch(s)
		if m == nil {
			return fmt.Errorf("diff: line %d: malformed hunk header %q", p.lineno, s)
		}
		if p.sawHunk {
			p.pos++ // later hunk headers occupy a position themselves
		}
		p.newLine = atoi(m[3])
		p.oldRemain = atoiDefault(m[2], 1)
		p.newRemain = atoiDefault(m[4], 1)
		p.inHunk = p.oldRemain > 0 || p.newRemain > 0
		p.sawHunk = true

	case strings.HasPrefix(s, "--- "):
		// plain unified diffs open their next file section here
		if p.cur != nil && p.sawHunk {
			p.flush()
		}
		if p.cur == nil {
			p.cur = &Patch{}
			p.sawHunk = false
			p.pos = 0
		}
		if path := parseFileHeader(s[4:]); path == "" {
			p.cur.IsNew = true
			p.cur.OldPath = ""
		} else {
			p.cur.OldPath = strings.TrimPrefix(path, "a/")
		}

	case strings.HasPrefix(s, "+++ "):
		if p.cur == nil {
			return fmt.Errorf("diff: line %d: +++ header without ---", p.lineno)
		}
		if path := parseFileHeader(s[4:]); path == "" {
			p.cur.IsDelete = true
			p.cur.NewPath = ""
		} else {
			p.cur.NewPath = strings.TrimPrefix(path, "b/")
		}

	case strings.HasPrefix(s, "rename from "):
		if p.cur != nil {
			p.cur.IsRename = true
			p.cur.OldPath = strings.TrimPrefix(s, "rename from ")
		}

	case strings.HasPrefix(s, "rename to "):
		if p.cur != nil {
			p.cur.IsRename = true
			p.cur.NewPath = strings.TrimPrefix(s, "rename to ")
		}

	case strings.HasPrefix(s, "new file mode"):
		if p.cur != nil {
			p.cur.IsNew = true
			p.cur.OldPath = ""
		}

	case strings.HasPrefix(s, "deleted file mode"):
		if p.cur != nil {
			p.cur.IsDelete = true
		}

	case strings.HasPrefix(s, "Binary files "), s == "GIT binary patch":
		if p.cur != nil {
			p.cur.Binary = true
		}

	default:
		// preamble, index/mode lines, trailers, trailing newline markers
	}
	return nil
}

// hunkLine consumes one body line while declared counts remain
func (p *parser) hunkLine(s string) error {
	p.pos++
	if strings.HasPrefix(s, `\`) {
		return nil // "\ No newline at end of file" annotates its neighbor
	}

	op, rest := byte(' '), ""
	if s != "" {
		op, rest = s[0], s[1:]
	}

	switch op {
	case '+':
		if p.newRemain <= 0 {
			return fmt.Errorf("diff: line %d: hunk longer than declared", p.lineno)
		}
		p.cur.Added = append(p.cur.Added, AddedLine{Line: p.newLine, Position: p.pos, Content: rest})
		p.newLine++
		p.newRemain--
	case '-':
		if p.oldRemain <= 0 {
			return fmt.Errorf("diff: line %d: hunk longer than declared", p.lineno)
		}
		p.oldRemain--
	case ' ':
		if p.oldRemain <= 0 || p.newRemain <= 0 {
			return fmt.Errorf("diff: line %d: hunk longer than declared", p.lineno)
		}
		p.newLine++
		p.oldRemain--
		p.newRemain--
	default:
		return fmt.Errorf("diff: line %d: unexpected %q inside hunk", p.lineno, s)
	}

	if p.oldRemain == 0 && p.newRemain == 0 {
		p.inHunk = false
	}
	return nil
}

func (p *parser) closeHunk() error {
	if p.inHunk {
		return fmt.Errorf("diff: line %d: truncated hunk", p.lineno)
	}
	return nil
}

func (p *parser) flush() {
	if p.cur != nil {
		p.patches = append(p.patches, *p.cur)
		p.cur = nil
	}
}

// splitGitHeader best-effort splits "a/old b/new" from a diff --git
// line; the ---/+++/rename headers that follow are authoritative
func splitGitHeader(s string) (oldPath, newPath string) {
	if i := strings.LastIndex(s, " b/"); i >= 0 {
		return strings.TrimPrefix(s[:i], "a/"), s[i+3:]
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", ""
}

// parseFileHeader extracts the path from a ---/+++ remainder, dropping
// tab-separated timestamps and unwrapping quoted paths
// /dev/null maps to the empty string
func parseFileHeader(s string) string {
	if i := strings.IndexByte(s, '\t'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			s = u
		}
	}
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return atoi(s)
}
