package api

import (
	"github.com/JaimeStill/blueprint/pkg/routes"
)

func groups(domain *Domain, runtime *Runtime) []routes.Group {
	out := []routes.Group{
		domain.Architectures.Handler().Routes(),
	}

	if domain.History != nil {
		out = append(out, domain.History.Handler().Routes())
	}

	if runtime.Storage != nil {
		exports := newExportsHandler(runtime.Storage, runtime.Logger, runtime.MaxListSize)
		out = append(out, exports.routes())
	}

	return out
}
