package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// RunAlphabet prints the character set that a generation run with the given
// selection would draw from. Useful for previewing the effect of exclusions
// before starting a run.
func RunAlphabet(out io.Writer, selection domain.ClassSelection, format string) error {
	alphabet := domain.BuildAlphabet(selection)

	if format == "json" {
		result := map[string]interface{}{
			"alphabet": alphabet,
			"size":     len(alphabet),
		}

		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(out, "Current character set: %s\n", alphabet)
	fmt.Fprintf(out, "Size: %d\n", len(alphabet))
	return nil
}
