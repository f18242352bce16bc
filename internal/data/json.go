package data

import (
	"encoding/json"
	"os"

	"laytime-calculator/internal/config"

	"github.com/pkg/errors"
)

// LoadLaytimeJSON reads a laytime job in the same JSON shape the API accepts.
func LoadLaytimeJSON(path string) (*config.LaytimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var c config.LaytimeConfig
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &c, nil
}
