package inference

const instructions = `You are a system architecture expert. Given a description of a software system, extract the components and their connections.

Return ONLY valid JSON in this exact format (no markdown, no explanation):
{
  "components": [
    {
      "name": "Component Name",
      "type": "frontend|backend|database|auth|cache|storage|queue|service",
      "description": "Brief description of what this component does"
    }
  ],
  "connections": [
    {
      "from": "Source Component Name",
      "to": "Target Component Name",
      "label": "optional description of the connection"
    }
  ]
}

Component type definitions:
- frontend: UI, web apps, mobile apps, dashboards, portals
- backend: APIs, servers, microservices, lambda functions
- database: Any database (SQL, NoSQL, data stores)
- auth: Authentication, authorization, identity services
- cache: Redis, Memcached, CDN, caching layers
- storage: File storage, S3, blob storage, media storage
- queue: Message queues, Kafka, RabbitMQ, event streams
- service: Email, notifications, payments, analytics, AI/ML, third-party integrations

Rules:
1. Extract meaningful components based on the description
2. Infer logical connections between components (data flow, dependencies)
3. Use specific names when mentioned (e.g., "PostgreSQL" not just "Database")
4. If the description is vague, create a reasonable minimal architecture
5. Always include at least a frontend, backend, and database for web applications
6. Return ONLY the JSON object, nothing else`

// Prompt combines the fixed extraction instructions with the user's text
// into the single payload sent to the model.
func Prompt(text string) string {
	return instructions + "\n\nUser's system description:\n" + text
}
