package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/sunangle/millennium-calendar-go/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// textWriter is implemented by results that have a plain text form.
type textWriter interface {
	writeText(w io.Writer) error
}

// writeResult prints result as indented JSON or in its text form.
func writeResult(w io.Writer, format string, result textWriter) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		return nil
	}

	return result.writeText(w)
}
