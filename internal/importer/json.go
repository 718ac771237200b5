package importer

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// JSONParser reads the Source model serialized as JSON:
//
//	{"projects": [{"short_name": "Tower A", "wbs": [{"id": "1", "code": "A", "name": "Root"}]}]}
type JSONParser struct{}

func (JSONParser) Format() string { return "json" }

func (JSONParser) Parse(r io.Reader) (*Source, error) {
	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, errors.Wrap(err, "decoding json")
	}
	return &src, nil
}
