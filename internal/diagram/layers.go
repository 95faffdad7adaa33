package diagram

import "github.com/JaimeStill/blueprint/internal/architecture"

type layer struct {
	name     string
	priority int
}

type classDef struct {
	category architecture.Category
	fill     string
	stroke   string
	color    string
}

const (
	otherLayer    = "Other"
	otherPriority = 99
)

var layers = map[architecture.Category]layer{
	architecture.CategoryFrontend: {"Client Layer", 1},
	architecture.CategoryBackend:  {"Application Layer", 2},
	architecture.CategoryAuth:     {"Security Layer", 3},
	architecture.CategoryService:  {"Services", 4},
	architecture.CategoryCache:    {"Caching Layer", 5},
	architecture.CategoryQueue:    {"Message Layer", 6},
	architecture.CategoryStorage:  {"Storage Layer", 7},
	architecture.CategoryDatabase: {"Data Layer", 8},
}

var classDefs = []classDef{
	{architecture.CategoryFrontend, "#10b981", "#059669", "#fff"},
	{architecture.CategoryBackend, "#3b82f6", "#2563eb", "#fff"},
	{architecture.CategoryDatabase, "#f59e0b", "#d97706", "#fff"},
	{architecture.CategoryService, "#8b5cf6", "#7c3aed", "#fff"},
	{architecture.CategoryCache, "#ef4444", "#dc2626", "#fff"},
	{architecture.CategoryStorage, "#06b6d4", "#0891b2", "#fff"},
	{architecture.CategoryQueue, "#f97316", "#ea580c", "#fff"},
	{architecture.CategoryAuth, "#ec4899", "#db2777", "#fff"},
}

func layerOf(cat architecture.Category) layer {
	if l, ok := layers[cat]; ok {
		return l
	}
	return layer{otherLayer, otherPriority}
}

func shape(cat architecture.Category, name string) string {
	switch cat {
	case architecture.CategoryDatabase:
		return "[(" + name + ")]"
	case architecture.CategoryQueue:
		return ">>" + name + "]"
	case architecture.CategoryStorage:
		return "[/" + name + "/]"
	case architecture.CategoryCache:
		return "((" + name + "))"
	default:
		return "[" + name + "]"
	}
}

// edge is a synthesized connection between every pair of components from
// two categories. Limit caps how many source components participate.
type edge struct {
	from  architecture.Category
	to    architecture.Category
	arrow string
	limit int
}

// Emitted in this order when no explicit connections are supplied.
var synthesized = []edge{
	{architecture.CategoryFrontend, architecture.CategoryBackend, "-->", 0},
	{architecture.CategoryBackend, architecture.CategoryAuth, "<-->", 0},
	{architecture.CategoryBackend, architecture.CategoryDatabase, "-->", 0},
	{architecture.CategoryBackend, architecture.CategoryCache, "<-->", 0},
	{architecture.CategoryBackend, architecture.CategoryService, "-->", 0},
	{architecture.CategoryBackend, architecture.CategoryQueue, "-->", 0},
	{architecture.CategoryBackend, architecture.CategoryStorage, "-->", 0},
	{architecture.CategoryService, architecture.CategoryDatabase, "-.->", 2},
}
