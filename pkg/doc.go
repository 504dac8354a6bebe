// Package pkg provides the core libraries for plannergen.
//
// # Overview
//
// Plannergen turns a declarative planner configuration into LaTeX documents.
// Each configured section (a monthly calendar, note pages, a to-do list) is
// bound to a template family, resolved to a header and a body component,
// and rendered page by page into one document.
//
// # Architecture
//
// The typical data flow:
//
//	planner.toml / planner.yaml
//	         ↓
//	    [config] package (parse, default, validate)
//	         ↓
//	    [planner/resolver] package (section → header, body, section components)
//	         ↓
//	    [planner/section] package (pages → header + body per page)
//	         ↓
//	    [io] package (documents + main.tex on disk)
//
// [pipeline] ties these together for one generation run and is what the CLI
// calls.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/plannergen/pkg/config"
//	    "github.com/matzehuels/plannergen/pkg/io"
//	    "github.com/matzehuels/plannergen/pkg/pipeline"
//	    "github.com/matzehuels/plannergen/pkg/templates/all"
//	)
//
//	cfg, _ := config.Load("planner.toml")
//	reg, _ := all.Registry()
//	result, _ := pipeline.NewRunner(reg, nil).Generate(context.Background(), cfg, pipeline.Options{})
//	io.Export(context.Background(), "out", result.Documents, cfg.Parameters)
//
// # Main Packages
//
// ## Planner Core
//
// [planner/registry] - Template components keyed by family, section and role.
//
// [planner/resolver] - Enabled sections to section descriptors, in order.
//
// [planner/section] - Page-by-page composition into one document.
//
// ## Layouts
//
// [layout/littlecal] - Month calendar table with optional week numbers.
//
// [layout/dotgrid] - Dotted note grid sized from physical dimensions.
//
// [tex] and [tex/table] - LaTeX vocabulary and tabularx tables.
//
// [measure] - Physical lengths with units.
//
// ## Templates
//
// [templates/mos] - Months-on-sides planner with navigation tabs.
//
// [templates/plain] - Minimal headings, no navigation.
//
// ## Support
//
// [calendar] - Read-only year, month, week and day model.
//
// [i18n] - Translation catalogs.
//
// [errors] - Error codes and typed errors.
//
// [observability] - Hooks for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
package pkg
