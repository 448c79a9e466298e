/*
Package filter decides which icon sets are processed, given an allow list and
a disallow list of prefixes.

An empty list does not restrict anything. A non-empty allow list admits only
the prefixes it names; a non-empty disallow list rejects the prefixes it
names. Both conditions apply independently, so a prefix on both lists is
rejected.
*/
package filter

import (
	"bufio"
	"io"
	"strings"
)

// Include reports whether prefix passes both lists.
func Include(prefix string, allow, disallow []string) bool {
	if len(allow) > 0 && !contains(allow, prefix) {
		return false
	}
	if len(disallow) > 0 && contains(disallow, prefix) {
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Lists bundles the allow and disallow list of a run. Lists are read once and
// not changed afterwards.
type Lists struct {
	Allow    []string
	Disallow []string
}

// Include reports whether prefix passes both lists of l.
func (l Lists) Include(prefix string) bool {
	return Include(prefix, l.Allow, l.Disallow)
}

// ReadList reads one prefix per line. Surrounding white space is trimmed and
// blank lines are ignored; CRLF line endings are accepted.
func ReadList(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		list = append(list, line)
	}
	return list, scanner.Err()
}
