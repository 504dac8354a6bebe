// Package all lists the template families compiled into plannergen.
package all

import (
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/templates/mos"
	"github.com/matzehuels/plannergen/pkg/templates/plain"
)

// Families is every built-in template family.
var Families = []registry.Family{
	mos.Family,
	plain.Family,
}

// Registry returns a registry with every built-in family installed.
func Registry() (*registry.Registry, error) {
	return registry.Install(Families...)
}
