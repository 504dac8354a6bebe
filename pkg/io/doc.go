// Package io writes generated planner documents to disk.
//
// # Overview
//
// A generation run produces one document per enabled section. This package
// places those documents in an output directory next to a root document,
// main.tex, that pulls them in with \include in configuration order:
//
//	out/
//	  main.tex
//	  monthly.tex
//	  notes.tex
//	  .plannergen.json
//
// Compile main.tex with any LaTeX engine to get the finished planner.
//
// # Export
//
// Use [Export] to write everything at once, or [WriteDocuments] and
// [WriteMain] separately:
//
//	paths, err := io.Export(ctx, "out", result.Documents, cfg.Parameters)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Document names must be plain file names; a name with a path separator is
// rejected before anything is written.
//
// # Manifest
//
// Every export records a manifest, .plannergen.json, listing the documents it
// wrote. The next export into the same directory reads it back and removes
// documents a previous run wrote that the current run did not, so disabling a
// section does not leave a stale file behind. Files the manifest does not
// name are never touched.
package io
