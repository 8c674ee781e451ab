package cache

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentic-research/skim/internal/safety"
)

// decodeEntry parses data as an Entry, first walking it token-by-token to
// enforce spec.md §6's deserialization bounds on an incoming cache file
// (nesting depth capped at safety.MaxDepth, key count capped at
// safety.MaxDeclarations) before handing it to json.Unmarshal. This guards
// against a hand-crafted or corrupted cache file driving the decoder with
// pathological nesting or an unbounded number of object keys.
func decodeEntry(data []byte) (Entry, error) {
	if err := checkJSONBounds(data); err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// frame tracks one open container on the walk: whether it's an object
// (where keys are counted) and, if so, whether the next token seen
// directly inside it is a key or a value (object tokens alternate
// key, value, key, value, ...; array elements are always values).
type frame struct {
	isObject  bool
	expectKey bool
}

// consumeSlot records that one token (scalar, or a whole nested
// object/array) was just produced directly inside the current top frame,
// counting it as a key when that frame is an object expecting one.
func consumeSlot(stack []frame, keys *int) error {
	if len(stack) == 0 {
		return nil
	}
	top := &stack[len(stack)-1]
	if !top.isObject {
		return nil
	}
	if top.expectKey {
		*keys++
		top.expectKey = false
		if *keys > safety.MaxDeclarations {
			return fmt.Errorf("cache entry JSON key count exceeds %d limit", safety.MaxDeclarations)
		}
		return nil
	}
	top.expectKey = true // that was the value half; next is a key again
	return nil
}

// checkJSONBounds walks data's JSON token stream, rejecting it once nesting
// depth exceeds safety.MaxDepth or the total object-key count exceeds
// safety.MaxDeclarations.
func checkJSONBounds(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	depth := 0
	keys := 0
	var stack []frame

	for {
		tok, err := dec.Token()
		if err != nil {
			break // end of stream, or malformed JSON left for json.Unmarshal to report
		}

		d, isDelim := tok.(json.Delim)
		if !isDelim {
			if err := consumeSlot(stack, &keys); err != nil {
				return err
			}
			continue
		}

		switch d {
		case '{', '[':
			if err := consumeSlot(stack, &keys); err != nil {
				return err
			}
			depth++
			if depth > safety.MaxDepth {
				return fmt.Errorf("cache entry JSON nesting depth exceeds %d limit", safety.MaxDepth)
			}
			stack = append(stack, frame{isObject: d == '{', expectKey: d == '{'})
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			depth--
		}
	}
	return nil
}
