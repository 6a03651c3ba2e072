package reporting

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olechiw/great-expectations/internal/render"
)

// WriteJSON serializes the abstract table for downstream consumers. Fragments
// carry an explicit content type discriminator (see render.Cell.MarshalJSON).
func WriteJSON(table *render.Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("encoding table JSON: %w", err)
	}
	return nil
}
