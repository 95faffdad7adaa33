package diagram

import (
	"strconv"
	"strings"

	"github.com/JaimeStill/blueprint/internal/architecture"
)

// unsafeLabel lists characters that end or restructure a Mermaid node or
// edge label when written bare.
const unsafeLabel = "[](){}<>|\"#;`\r\n"

// label returns text ready to sit inside a node shape or edge pipe. Text
// without unsafe characters is returned unchanged; anything else is wrapped
// in double quotes with quotes entity-encoded and line breaks flattened.
func label(text string) string {
	if !strings.ContainsAny(text, unsafeLabel) {
		return text
	}
	r := strings.NewReplacer(
		"#", "#35;",
		`"`, "#quot;",
		"\r\n", " ",
		"\n", " ",
		"\r", " ",
	)
	return `"` + r.Replace(text) + `"`
}

// identifier maps a category to a Mermaid identifier. Letters and digits are
// kept, everything else becomes an underscore. Catalog categories map to the
// plain upper- or lower-case word.
func identifier(cat architecture.Category, upper bool) string {
	s := string(cat)
	if upper {
		s = strings.ToUpper(s)
	} else {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "other"
	}
	return b.String()
}

// subgraphIDs assigns each group a unique subgraph identifier. Categories
// that differ only in case or punctuation get a numeric suffix.
func subgraphIDs(groups []group) []string {
	ids := make([]string, len(groups))
	used := make(map[string]int, len(groups))
	for i, g := range groups {
		id := identifier(g.category, true)
		used[id]++
		if n := used[id]; n > 1 {
			id += "_" + strconv.Itoa(n)
		}
		ids[i] = id
	}
	return ids
}
