package narrate

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// ParseNarrationMetadata decodes an LLM-backed provider's structured
// narration metadata (tags, confidence, a short summary) into dst, falling
// back through JSON repair and then lenient Hjson parsing when a provider
// returns slightly malformed output — a common failure mode for anything
// generated outside a strict function-calling schema.
func ParseNarrationMetadata(raw string, dst interface{}) error {
	if err := json.Unmarshal([]byte(raw), dst); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(raw)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), dst); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(raw), dst); err == nil {
		return nil
	}

	return fmt.Errorf("narrate: could not parse narration metadata via JSON, repaired JSON, or hjson")
}
