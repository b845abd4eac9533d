package assistant

import (
	"regexp"
	"strings"
)

var (
	itemStart = regexp.MustCompile(`\d+\.\s+`)
	itemBreak = regexp.MustCompile(`\n\d+\.`)
)

// ExtractNumbered pulls "<n>. text" items out of a free-text reply. Each item
// runs until the next line that starts a new number, or the end of the reply,
// so wrapped explanations stay attached to their item.
func ExtractNumbered(reply string) []string {
	var items []string
	pos := 0
	for pos < len(reply) {
		loc := itemStart.FindStringIndex(reply[pos:])
		if loc == nil {
			break
		}
		bodyStart := pos + loc[1]
		if bodyStart >= len(reply) {
			break
		}
		bodyEnd := len(reply)
		// An item body holds at least one character before the next break.
		if next := itemBreak.FindStringIndex(reply[bodyStart+1:]); next != nil {
			bodyEnd = bodyStart + 1 + next[0]
		}
		if item := strings.TrimSpace(reply[bodyStart:bodyEnd]); item != "" {
			items = append(items, item)
		}
		pos = bodyEnd
	}
	return items
}
