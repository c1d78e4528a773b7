// Package gettext reads PO translation files just far enough to answer the
// questions discovery asks: what do the headers say, how many entries are
// there, and how many are translated. It is not an editor; msgstr content is
// only inspected for emptiness.
package gettext

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/potomac-dev/potomac/internal/errors"
	"github.com/potomac-dev/potomac/internal/interfaces"
)

// Parser parses PO files from the filesystem.
type Parser struct{}

// New creates a parser.
func New() *Parser {
	return &Parser{}
}

// entry accumulates one message during scanning.
type entry struct {
	msgid      strings.Builder
	msgstr     strings.Builder
	hasMsgid   bool
	hasMsgstr  bool
	fuzzy      bool
	translated bool
}

// ParseWithHeaders reads a PO file and returns its entry statistics and the
// header map from the empty-msgid entry. Malformed files yield a parse error
// with the offending line number.
func (p *Parser) ParseWithHeaders(path string) (interfaces.FileStats, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return interfaces.FileStats{}, nil, errors.NewIOError(path, "cannot open translation file", err)
	}
	defer f.Close()

	var (
		stats   interfaces.FileStats
		headers = make(map[string]string)
		cur     *entry
		target  *strings.Builder
		lineNo  int
	)

	finish := func() {
		if cur == nil || !cur.hasMsgid {
			cur = nil
			target = nil
			return
		}
		if cur.msgid.Len() == 0 {
			// Header entry: msgstr holds "Key: Value\n" lines.
			parseHeaders(cur.msgstr.String(), headers)
		} else {
			stats.Total++
			if cur.fuzzy {
				stats.Fuzzy++
			}
			if cur.translated {
				stats.Translated++
			}
		}
		cur = nil
		target = nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			finish()

		case strings.HasPrefix(line, "#"):
			if cur == nil && strings.HasPrefix(line, "#,") && strings.Contains(line, "fuzzy") {
				cur = &entry{fuzzy: true}
			} else if cur != nil && !cur.hasMsgid && strings.HasPrefix(line, "#,") && strings.Contains(line, "fuzzy") {
				cur.fuzzy = true
			}

		case strings.HasPrefix(line, "msgid_plural"):
			if cur == nil || !cur.hasMsgid {
				return stats, headers, parseErr(path, lineNo, "msgid_plural without msgid")
			}
			// Plural source form; counts as part of the same entry.
			if _, err := unquoteTail(line, "msgid_plural"); err != nil {
				return stats, headers, parseErr(path, lineNo, err.Error())
			}
			target = &strings.Builder{}

		case strings.HasPrefix(line, "msgid"):
			if cur != nil && cur.hasMsgstr {
				finish()
			}
			if cur == nil {
				cur = &entry{}
			}
			if cur.hasMsgid {
				return stats, headers, parseErr(path, lineNo, "duplicate msgid in entry")
			}
			s, err := unquoteTail(line, "msgid")
			if err != nil {
				return stats, headers, parseErr(path, lineNo, err.Error())
			}
			cur.hasMsgid = true
			cur.msgid.WriteString(s)
			target = &cur.msgid

		case strings.HasPrefix(line, "msgstr"):
			if cur == nil || !cur.hasMsgid {
				return stats, headers, parseErr(path, lineNo, "msgstr without msgid")
			}
			keyword := "msgstr"
			if i := strings.Index(line, "]"); strings.HasPrefix(line, "msgstr[") && i > 0 {
				keyword = line[:i+1]
			}
			s, err := unquoteTail(line, keyword)
			if err != nil {
				return stats, headers, parseErr(path, lineNo, err.Error())
			}
			cur.hasMsgstr = true
			if s != "" {
				cur.translated = true
			}
			cur.msgstr.WriteString(s)
			target = &cur.msgstr

		case strings.HasPrefix(line, `"`):
			if target == nil {
				return stats, headers, parseErr(path, lineNo, "continuation string outside entry")
			}
			s, err := unquote(line)
			if err != nil {
				return stats, headers, parseErr(path, lineNo, err.Error())
			}
			if s != "" && target == &cur.msgstr {
				cur.translated = true
			}
			target.WriteString(s)

		default:
			return stats, headers, parseErr(path, lineNo, "unrecognized line")
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, headers, errors.NewIOError(path, "cannot read translation file", err)
	}
	finish()

	return stats, headers, nil
}

// parseHeaders splits the header msgstr into key/value pairs.
func parseHeaders(block string, headers map[string]string) {
	for _, line := range strings.Split(block, "\n") {
		if i := strings.Index(line, ":"); i > 0 {
			key := strings.TrimSpace(line[:i])
			value := strings.TrimSpace(line[i+1:])
			if key != "" {
				headers[key] = value
			}
		}
	}
}

// unquoteTail strips a keyword prefix and unquotes the rest of the line.
func unquoteTail(line, keyword string) (string, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, keyword))
	if rest == "" {
		return "", fmt.Errorf("missing string after %s", keyword)
	}
	return unquote(rest)
}

// unquote decodes one double-quoted PO string segment. PO escapes are a
// subset of Go's, so strconv does the work.
func unquote(s string) (string, error) {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("malformed quoted string %q", s)
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("malformed quoted string %q", s)
	}
	return out, nil
}

func parseErr(path string, line int, msg string) error {
	return errors.NewParseError(path, fmt.Errorf("line %d: %s", line, msg))
}
