package cmd

import "fmt"

// UnknownFormatError indicates an unsupported --format value.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (valid: text, json, csv, markdown, pdf)", e.Format)
}

// NoTargetsError signals that a command received nothing to audit.
type NoTargetsError struct {
	File string
}

func (e *NoTargetsError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("no targets found in %s", e.File)
	}
	return "no targets given (pass URLs as arguments or use --file)"
}
