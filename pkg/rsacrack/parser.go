package rsacrack

import (
	"encoding/json"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

// TargetParser reads attack inputs from external sources.
type TargetParser interface {
	// ParseKey reads a public key target.
	ParseKey(source string) (*rsakey.Key, error)

	// ParseCiphertexts reads broadcast (n, c) pairs.
	ParseCiphertexts(source string) ([]Ciphertext, error)
}

// JSONTargetParser parses attack inputs from JSON files. Integers may be
// JSON numbers, decimal strings or 0x-prefixed hex strings; json.Number
// decoding keeps values above float64 precision intact.
//
// Key format:
//
//	{"n": "0x...", "e": 65537}
//
// Ciphertext pairs format:
//
//	[
//	  {"n": "...", "c": "..."},
//	  {"n": "...", "c": "..."}
//	]
type JSONTargetParser struct{}

// ParseKey implements TargetParser.
func (JSONTargetParser) ParseKey(source string) (*rsakey.Key, error) {
	var raw map[string]interface{}
	if err := decodeJSONFile(source, &raw); err != nil {
		return nil, err
	}

	n, err := fieldBigInt(raw, "n")
	if err != nil {
		return nil, err
	}
	e, err := fieldBigInt(raw, "e")
	if err != nil {
		return nil, err
	}

	key := &rsakey.Key{N: n, E: e}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// ParseCiphertexts implements TargetParser.
func (JSONTargetParser) ParseCiphertexts(source string) ([]Ciphertext, error) {
	var raw []map[string]interface{}
	if err := decodeJSONFile(source, &raw); err != nil {
		return nil, err
	}

	pairs := make([]Ciphertext, 0, len(raw))
	for i, item := range raw {
		n, err := fieldBigInt(item, "n")
		if err != nil {
			return nil, errors.WithMessagef(err, "pair %d", i)
		}
		c, err := fieldBigInt(item, "c")
		if err != nil {
			return nil, errors.WithMessagef(err, "pair %d", i)
		}
		pairs = append(pairs, Ciphertext{N: n, C: c})
	}
	return pairs, nil
}

func decodeJSONFile(source string, v interface{}) error {
	file, err := os.Open(source)
	if err != nil {
		return errors.Wrap(err, "rsacrack: opening target file")
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return errors.Wrap(err, "rsacrack: parsing target file")
	}
	return nil
}

func fieldBigInt(item map[string]interface{}, field string) (*big.Int, error) {
	val, ok := item[field]
	if !ok {
		return nil, errors.Errorf("rsacrack: missing %q field", field)
	}
	return ParseBigInt(val)
}

// ParseBigInt converts a decoded JSON value (json.Number, decimal string
// or 0x-prefixed hex string) to a big integer.
func ParseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case json.Number:
		n, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, errors.Errorf("rsacrack: invalid integer %q", v.String())
		}
		return n, nil
	case string:
		s := strings.TrimSpace(v)
		base := 10
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
			base = 16
		}
		n, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, errors.Errorf("rsacrack: invalid integer %q", v)
		}
		return n, nil
	default:
		return nil, errors.Errorf("rsacrack: integer field has unsupported type %T", val)
	}
}
