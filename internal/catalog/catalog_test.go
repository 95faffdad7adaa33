package catalog_test

import (
	"testing"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/catalog"
)

func TestDefaultCategoryOrder(t *testing.T) {
	want := architecture.Categories()
	got := catalog.Default().Categories()

	if len(got) != len(want) {
		t.Fatalf("categories: got %d, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.Category != want[i] {
			t.Errorf("categories[%d]: got %s, want %s", i, p.Category, want[i])
		}
		if len(p.Keywords) == 0 {
			t.Errorf("categories[%d] %s has no keywords", i, p.Category)
		}
		if p.Style != string(p.Category) {
			t.Errorf("categories[%d] style: got %s, want %s", i, p.Style, p.Category)
		}
	}
}

func TestIcon(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		category architecture.Category
		want     string
	}{
		{architecture.CategoryFrontend, "Monitor"},
		{architecture.CategoryBackend, "Server"},
		{architecture.CategoryDatabase, "Database"},
		{architecture.CategoryAuth, "Shield"},
		{architecture.CategoryCache, "Zap"},
		{architecture.CategoryStorage, "HardDrive"},
		{architecture.CategoryQueue, "GitBranch"},
		{architecture.CategoryService, "Cpu"},
		{architecture.Category("gateway"), catalog.IconDefault},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := cat.Icon(tt.category); got != tt.want {
				t.Errorf("Icon(%s) = %s, want %s", tt.category, got, tt.want)
			}
		})
	}
}

func TestComponentName(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		keyword string
		want    string
	}{
		{"postgresql", "PostgreSQL DB"},
		{"db", "Database"},
		{"websocket", "WebSocket Server"},
		{"sql", "Sql Service"},
		{"graphql", "Graphql Service"},
		{"pub/sub", "Pub/sub Service"},
		{"2fa", "2fa Service"},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			if got := cat.ComponentName(tt.keyword); got != tt.want {
				t.Errorf("ComponentName(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestInferCategory(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		want architecture.Category
	}{
		{"Admin Frontend", architecture.CategoryFrontend},
		{"Reporting Dashboard", architecture.CategoryFrontend},
		{"Chat Database", architecture.CategoryDatabase},
		{"Media Storage", architecture.CategoryDatabase},
		{"Session Cache", architecture.CategoryCache},
		{"CDN", architecture.CategoryCache},
		{"Auth Service", architecture.CategoryAuth},
		{"Message Queue", architecture.CategoryQueue},
		{"File Storage", architecture.CategoryDatabase},
		{"Media Processing Service", architecture.CategoryStorage},
		{"Admin API", architecture.CategoryBackend},
		{"WebSocket Server", architecture.CategoryBackend},
		{"Search Index", architecture.CategoryService},
		{"Payment Gateway", architecture.CategoryService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.InferCategory(tt.name); got != tt.want {
				t.Errorf("InferCategory(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestFeaturesEnumerable(t *testing.T) {
	features := catalog.Default().Features()
	if len(features) != 11 {
		t.Fatalf("features: got %d, want 11", len(features))
	}
	if features[0].Phrase != "user authentication" {
		t.Errorf("first feature: got %q", features[0].Phrase)
	}
	if features[len(features)-1].Phrase != "analytics" {
		t.Errorf("last feature: got %q", features[len(features)-1].Phrase)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat := catalog.Default()

	cats := cat.Categories()
	cats[0].Keywords[0] = "mutated"

	features := cat.Features()
	features[0].Components[0] = "mutated"

	tables := cat.Tables()
	tables.Names["db"] = "mutated"

	if cat.Categories()[0].Keywords[0] != "ui" {
		t.Error("category keywords mutated through accessor")
	}
	if cat.Features()[0].Components[0] != "Auth Service" {
		t.Error("feature components mutated through accessor")
	}
	if cat.ComponentName("db") != "Database" {
		t.Error("names table mutated through Tables")
	}
}

func TestNewIsolatesInput(t *testing.T) {
	keywords := []string{"widget"}
	cat := catalog.New(catalog.Tables{
		Categories: []catalog.CategoryPattern{
			{Category: architecture.CategoryFrontend, Keywords: keywords, Icon: "Monitor", Style: "frontend"},
		},
		Suffix: "Module",
	})

	keywords[0] = "changed"

	if got := cat.Categories()[0].Keywords[0]; got != "widget" {
		t.Errorf("keyword: got %q, want widget", got)
	}
	if got := cat.ComponentName("widget"); got != "Widget Module" {
		t.Errorf("ComponentName: got %q, want Widget Module", got)
	}
}

func TestTablesVersion(t *testing.T) {
	if got := catalog.Default().Tables().Version; got != catalog.Version {
		t.Errorf("version: got %s, want %s", got, catalog.Version)
	}
}

func TestDefaultsCompletion(t *testing.T) {
	defaults := catalog.Default().Defaults()
	if len(defaults) != 3 || defaults[0].Name != "Web Application" || defaults[2].Category != architecture.CategoryDatabase {
		t.Fatalf("default completions: %+v", defaults)
	}

	completions := []catalog.Completion{
		{Name: "Gateway", Category: architecture.CategoryBackend, Description: "Edge entry point"},
	}
	cat := catalog.New(catalog.Tables{Defaults: completions})
	completions[0].Name = "changed"

	got := cat.Defaults()
	if len(got) != 1 || got[0].Name != "Gateway" {
		t.Errorf("injected completions: %+v", got)
	}
	got[0].Name = "mutated"
	if cat.Defaults()[0].Name != "Gateway" {
		t.Error("completions mutated through accessor")
	}
}
