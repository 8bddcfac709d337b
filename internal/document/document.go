package document

import (
	"bytes"

	"github.com/valyala/fastjson"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed JSON input.
type Document struct {
	root Value
}

// Parse parses data as a single JSON value of any kind.
// A leading UTF-8 byte order mark is ignored. The input is validated strictly
// first, since the fastjson parser itself tolerates bad numbers and escapes.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, err
	}

	raw, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	return &Document{root: Value{raw: raw}}, nil
}

// Root returns the top-level value.
func (d *Document) Root() Value {
	return d.root
}
