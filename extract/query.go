package extract

import (
	"encoding/json"

	"github.com/jmespath/go-jmespath"

	"github.com/sqwxl/jx/errors"
)

// ApplyQuery narrows a JSON document with a JMESPath expression before it is
// loaded into the viewer. The result is re-encoded so the caller can run it
// through the order-preserving parser.
func ApplyQuery(data []byte, expr string) ([]byte, error) {
	jp, err := jmespath.Compile(expr)
	if err != nil {
		return nil, errors.QueryInvalid(expr, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.ParseFailed(err)
	}

	result, err := jp.Search(doc)
	if err != nil {
		return nil, errors.QueryInvalid(expr, err)
	}
	if result == nil {
		return []byte("null"), nil
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode query result")
	}
	return out, nil
}
