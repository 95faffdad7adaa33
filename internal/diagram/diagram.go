// Package diagram renders an architecture as a Mermaid flowchart. Rendering
// is pure: identical input yields byte-identical markup.
package diagram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/blueprint/internal/architecture"
)

const indent = "    "

type group struct {
	category   architecture.Category
	components []architecture.Component
}

// Generate returns Mermaid flowchart markup for components. Connections
// referencing unknown names are dropped. When connections is empty, edges
// are synthesized from category pairs. No components yields "". Names and
// labels with Mermaid syntax characters are quoted, and categories outside
// the catalog are reduced to valid identifiers.
func Generate(components []architecture.Component, connections []architecture.Connection) string {
	if len(components) == 0 {
		return ""
	}

	groups := groupByCategory(components)

	var b strings.Builder
	b.WriteString("flowchart TB\n")

	b.WriteString(indent + "%% Styling\n")
	for _, d := range classDefs {
		fmt.Fprintf(&b, "%sclassDef %s fill:%s,stroke:%s,color:%s\n", indent, d.category, d.fill, d.stroke, d.color)
	}
	b.WriteString("\n")

	nodes := make(map[string]string, len(components))
	index := 0
	for i, id := range subgraphIDs(groups) {
		g := groups[i]
		fmt.Fprintf(&b, "%ssubgraph %s[\"%s\"]\n", indent, id, layerOf(g.category).name)
		for _, c := range g.components {
			node := fmt.Sprintf("node%d", index)
			index++
			nodes[c.Name] = node
			fmt.Fprintf(&b, "%s%s%s%s\n", indent, indent, node, shape(g.category, label(c.Name)))
		}
		b.WriteString(indent + "end\n\n")
	}

	b.WriteString(indent + "%% Connections\n")
	if len(connections) > 0 {
		writeConnections(&b, connections, nodes)
	} else {
		writeSynthesized(&b, groups, nodes)
	}

	b.WriteString("\n" + indent + "%% Apply styles\n")
	for _, g := range groups {
		for _, c := range g.components {
			fmt.Fprintf(&b, "%sclass %s %s\n", indent, nodes[c.Name], identifier(g.category, false))
		}
	}

	return b.String()
}

// groupByCategory buckets components by category in first-seen order, then
// orders buckets by layer priority. Unknown categories share the lowest
// priority and keep first-seen order among themselves.
func groupByCategory(components []architecture.Component) []group {
	var groups []group
	position := make(map[architecture.Category]int)

	for _, c := range components {
		cat := c.Category
		if cat == "" {
			cat = architecture.CategoryService
		}
		i, ok := position[cat]
		if !ok {
			i = len(groups)
			position[cat] = i
			groups = append(groups, group{category: cat})
		}
		groups[i].components = append(groups[i].components, c)
	}

	slices.SortStableFunc(groups, func(a, b group) int {
		return layerOf(a.category).priority - layerOf(b.category).priority
	})

	return groups
}

func writeConnections(b *strings.Builder, connections []architecture.Connection, nodes map[string]string) {
	for _, conn := range connections {
		from, ok := nodes[conn.From]
		if !ok {
			continue
		}
		to, ok := nodes[conn.To]
		if !ok {
			continue
		}
		if conn.Label != "" {
			fmt.Fprintf(b, "%s%s -->|%s| %s\n", indent, from, label(conn.Label), to)
		} else {
			fmt.Fprintf(b, "%s%s --> %s\n", indent, from, to)
		}
	}
}

func writeSynthesized(b *strings.Builder, groups []group, nodes map[string]string) {
	members := make(map[architecture.Category][]architecture.Component, len(groups))
	for _, g := range groups {
		members[g.category] = g.components
	}

	for _, e := range synthesized {
		sources := members[e.from]
		targets := members[e.to]
		if len(sources) == 0 || len(targets) == 0 {
			continue
		}
		if e.limit > 0 && len(sources) > e.limit {
			sources = sources[:e.limit]
		}
		for _, s := range sources {
			for _, t := range targets {
				fmt.Fprintf(b, "%s%s %s %s\n", indent, nodes[s.Name], e.arrow, nodes[t.Name])
			}
		}
	}
}
