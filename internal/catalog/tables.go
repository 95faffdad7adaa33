package catalog

import "github.com/JaimeStill/blueprint/internal/architecture"

var defaultCategories = []CategoryPattern{
	{
		Category: architecture.CategoryFrontend,
		Keywords: []string{
			"ui", "frontend", "web app", "mobile app", "react", "vue", "angular",
			"dashboard", "portal", "interface", "client", "spa", "pwa", "website",
			"landing page", "admin panel", "user interface",
		},
		Icon:  "Monitor",
		Style: "frontend",
	},
	{
		Category: architecture.CategoryBackend,
		Keywords: []string{
			"api", "backend", "server", "rest", "graphql", "microservice", "service",
			"endpoint", "controller", "node", "express", "django", "spring",
			"fastapi", "lambda", "serverless",
		},
		Icon:  "Server",
		Style: "backend",
	},
	{
		Category: architecture.CategoryDatabase,
		Keywords: []string{
			"database", "db", "postgresql", "mysql", "mongodb", "sql", "nosql",
			"data store", "repository", "persistence", "storage", "dynamo", "cosmos",
			"sqlite", "oracle", "data layer",
		},
		Icon:  "Database",
		Style: "database",
	},
	{
		Category: architecture.CategoryAuth,
		Keywords: []string{
			"authentication", "auth", "login", "signup", "oauth", "jwt", "session",
			"user management", "identity", "sso", "permission", "role",
			"access control", "security", "2fa", "mfa",
		},
		Icon:  "Shield",
		Style: "auth",
	},
	{
		Category: architecture.CategoryCache,
		Keywords: []string{
			"cache", "redis", "memcached", "caching", "cdn", "cloudfront", "edge",
			"session store",
		},
		Icon:  "Zap",
		Style: "cache",
	},
	{
		Category: architecture.CategoryStorage,
		Keywords: []string{
			"file storage", "s3", "blob", "upload", "image", "media", "asset",
			"bucket", "object storage", "file system", "document storage",
		},
		Icon:  "HardDrive",
		Style: "storage",
	},
	{
		Category: architecture.CategoryQueue,
		Keywords: []string{
			"queue", "message", "rabbitmq", "kafka", "sqs", "pub/sub", "event",
			"streaming", "worker", "job", "background", "async",
		},
		Icon:  "GitBranch",
		Style: "queue",
	},
	{
		Category: architecture.CategoryService,
		Keywords: []string{
			"email", "notification", "push", "sms", "payment", "stripe", "analytics",
			"logging", "monitoring", "search", "elasticsearch", "ai", "ml", "chat",
			"real-time", "websocket", "socket",
		},
		Icon:  "Cpu",
		Style: "service",
	},
}

var defaultFeatures = []Feature{
	{Phrase: "user authentication", Components: []string{"Auth Service", "User Database", "Session Cache"}},
	{Phrase: "real-time chat", Components: []string{"WebSocket Server", "Chat Service", "Message Queue", "Chat Database"}},
	{Phrase: "image uploads", Components: []string{"File Storage", "Media Processing Service", "CDN"}},
	{Phrase: "admin dashboard", Components: []string{"Admin Frontend", "Admin API", "Analytics Service"}},
	{Phrase: "payment", Components: []string{"Payment Gateway", "Payment Service", "Transaction Database"}},
	{Phrase: "notification", Components: []string{"Notification Service", "Push Notification", "Email Service"}},
	{Phrase: "search", Components: []string{"Search Engine", "Search Index", "Search API"}},
	{Phrase: "social media", Components: []string{"Social Feed", "User Profiles", "Content Database", "Media Storage"}},
	{Phrase: "e-commerce", Components: []string{"Product Catalog", "Shopping Cart", "Order Service", "Inventory Database"}},
	{Phrase: "blog", Components: []string{"Content Management", "Blog Database", "Comment Service"}},
	{Phrase: "analytics", Components: []string{"Analytics Engine", "Data Warehouse", "Reporting Dashboard"}},
}

var defaultNames = map[string]string{
	"ui":             "UI Layer",
	"frontend":       "Frontend App",
	"web app":        "Web Application",
	"mobile app":     "Mobile App",
	"dashboard":      "Dashboard",
	"api":            "API Gateway",
	"backend":        "Backend Server",
	"server":         "Application Server",
	"microservice":   "Microservices",
	"database":       "Primary Database",
	"db":             "Database",
	"postgresql":     "PostgreSQL DB",
	"mysql":          "MySQL DB",
	"mongodb":        "MongoDB",
	"authentication": "Auth Service",
	"auth":           "Authentication",
	"login":          "Login Service",
	"cache":          "Cache Layer",
	"redis":          "Redis Cache",
	"cdn":            "CDN",
	"file storage":   "File Storage",
	"s3":             "S3 Storage",
	"upload":         "Upload Service",
	"queue":          "Message Queue",
	"kafka":          "Kafka Streams",
	"email":          "Email Service",
	"payment":        "Payment Gateway",
	"notification":   "Notification Service",
	"analytics":      "Analytics Engine",
	"search":         "Search Engine",
	"chat":           "Chat Service",
	"real-time":      "Real-time Engine",
	"websocket":      "WebSocket Server",
}

// Order is significant: the first matching rule wins.
var defaultRules = []Rule{
	{Substrings: []string{"frontend", "dashboard", "ui"}, Category: architecture.CategoryFrontend},
	{Substrings: []string{"database", "db", "storage"}, Category: architecture.CategoryDatabase},
	{Substrings: []string{"cache", "cdn"}, Category: architecture.CategoryCache},
	{Substrings: []string{"auth", "session"}, Category: architecture.CategoryAuth},
	{Substrings: []string{"queue", "worker"}, Category: architecture.CategoryQueue},
	{Substrings: []string{"file", "media", "asset"}, Category: architecture.CategoryStorage},
	{Substrings: []string{"api", "server"}, Category: architecture.CategoryBackend},
}

var defaultDefaults = []Completion{
	{Name: "Web Application", Category: architecture.CategoryFrontend, Description: "Main user interface"},
	{Name: "API Server", Category: architecture.CategoryBackend, Description: "Backend API layer"},
	{Name: "Database", Category: architecture.CategoryDatabase, Description: "Data persistence layer"},
}

const defaultSuffix = "Service"

// Default returns a Catalog populated with the built-in tables.
func Default() *Catalog {
	return New(Tables{
		Categories: defaultCategories,
		Features:   defaultFeatures,
		Names:      defaultNames,
		Rules:      defaultRules,
		Defaults:   defaultDefaults,
		Suffix:     defaultSuffix,
	})
}
