// Package export renders audit results into the supported output formats:
// indented JSON (the canonical form, round-trippable through encoding/json),
// flattened CSV, plain text, Markdown, and PDF.
package export
