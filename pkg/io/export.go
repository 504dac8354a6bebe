package io

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/observability"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// MainDocument is the file name of the root document.
const MainDocument = "main.tex"

// preamble is loaded by every planner. Each template family relies on these
// packages being present.
var preamble = []string{
	`\documentclass[9pt]{extarticle}`,
	`\usepackage[a5paper,margin=1cm]{geometry}`,
	`\usepackage{tabularx}`,
	`\usepackage{multido}`,
	`\usepackage{adjustbox}`,
	`\usepackage{graphicx}`,
	`\usepackage{marginnote}`,
	`\usepackage{amssymb}`,
	`\usepackage[hidelinks]{hyperref}`,
	`\newcolumntype{Y}{>{\centering\arraybackslash}X}`,
	`\pagestyle{empty}`,
	`\setlength{\parindent}{0pt}`,
}

// Export writes docs and main.tex into dir, removes documents left behind by
// a previous export, and records a new manifest. It returns the paths written.
func Export(ctx context.Context, dir string, docs []section.Document, params config.Parameters) ([]string, error) {
	previous, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	paths, err := WriteDocuments(ctx, dir, docs)
	if err != nil {
		return nil, err
	}

	mainPath, err := WriteMain(ctx, dir, docs, params)
	if err != nil {
		return nil, err
	}
	paths = append(paths, mainPath)

	current := NewManifest(docs)
	if err := Prune(dir, previous, current); err != nil {
		return nil, err
	}
	if err := WriteManifest(dir, current); err != nil {
		return nil, err
	}

	return paths, nil
}

// WriteDocuments writes each document to dir under its own name, creating
// dir if needed. All names are checked before the first write.
func WriteDocuments(ctx context.Context, dir string, docs []section.Document) ([]string, error) {
	for _, doc := range docs {
		if err := errors.ValidateDocumentName(doc.Name); err != nil {
			return nil, err
		}
		if doc.Name == MainDocument {
			return nil, errors.New(errors.ErrCodeInvalidPath, "document name %q is reserved", doc.Name)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path, err := writeFile(ctx, dir, doc.Name, doc.Content)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteMain writes main.tex, which includes docs in order.
func WriteMain(ctx context.Context, dir string, docs []section.Document, params config.Parameters) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return writeFile(ctx, dir, MainDocument, MainContent(docs, params))
}

// MainContent renders the root document for docs.
func MainContent(docs []section.Document, params config.Parameters) string {
	var b strings.Builder
	for _, line := range preamble {
		b.WriteString(line + "\n")
	}
	if params.ShowFrames {
		b.WriteString(`\usepackage{showframe}` + "\n")
	}

	b.WriteString("\n" + `\begin{document}` + "\n")
	for _, doc := range docs {
		b.WriteString(`\include{` + strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name)) + "}\n")
	}
	b.WriteString(`\end{document}` + "\n")
	return b.String()
}

func writeFile(ctx context.Context, dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	observability.Output().OnDocumentWritten(ctx, path, len(content))
	return path, nil
}
