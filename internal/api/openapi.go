package api

import (
	"github.com/JaimeStill/blueprint/internal/architectures"
	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/pkg/openapi"
	"github.com/JaimeStill/blueprint/pkg/routes"
)

// specGroup documents the registered groups and returns a group serving the
// resulting OpenAPI document at /openapi.json.
func specGroup(cfg *config.Config, registered []routes.Group) (routes.Group, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(architectures.Schemas())
	spec.Components.AddSchemas(history.Schemas())
	spec.Components.AddSchemas(exportSchemas())

	routes.Document(spec, "", registered...)

	body, err := openapi.MarshalJSON(spec)
	if err != nil {
		return routes.Group{}, err
	}

	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/openapi.json", Handler: openapi.ServeSpec(body)},
		},
	}, nil
}
