// Package planner turns a configuration into planner documents.
//
// The work is split across three subpackages:
//
//   - [github.com/matzehuels/plannergen/pkg/planner/registry] maps
//     (family, section, role) to component factories. Template families
//     register themselves at startup.
//   - [github.com/matzehuels/plannergen/pkg/planner/resolver] reads the enabled
//     sections of a configuration and builds a header, a body and a section
//     for each of them, all from the same family.
//   - [github.com/matzehuels/plannergen/pkg/planner/section] runs the header
//     and body over a section's pages and joins the result into one
//     [section.Document].
//
// Layout engines live in pkg/layout and are used by body implementations;
// the planner packages never render markup themselves.
package planner
