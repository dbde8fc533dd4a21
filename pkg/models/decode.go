package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// decodeAliased decodes data into out, matching object keys to json tags
// without regard to case or underscores. "evolvesFrom" and "evolves_from"
// both land in the field tagged `json:"evolvesFrom"`.
func decodeAliased(data []byte, out any) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:   "json",
		Result:    out,
		MatchName: matchFieldName,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode %T: %w", out, err)
	}
	return nil
}

func matchFieldName(mapKey, fieldName string) bool {
	return normalizeName(mapKey) == normalizeName(fieldName)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}
