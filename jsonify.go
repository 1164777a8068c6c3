// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ndtree

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalJSON encodes the tree as nested JSON objects, branches are
// objects and leaves are the JSON encoding of V. The members of every
// object are written in sibling order, not sorted like a Go map.
//
// Tokens are encoded with their MarshalText method if K implements
// [encoding.TextMarshaler], with fmt otherwise.
func (t *Tree[K, V]) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer

	// the stack holds the open objects with the index of the next kid
	type frame struct {
		n *node[K, V]
		i int
	}
	stack := []frame{{n: &t.root}}
	buf.WriteByte('{')

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// all kids written, close the object
		if top.i == len(top.n.keys) {
			buf.WriteByte('}')
			stack = stack[:len(stack)-1]
			continue
		}

		k := top.n.keys[top.i]
		if top.i > 0 {
			buf.WriteByte(',')
		}
		top.i++

		name, err := tokenText(k)
		if err != nil {
			return nil, err
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		e := top.n.items[k]
		if !e.isLeaf() {
			buf.WriteByte('{')
			stack = append(stack, frame{n: e.kids})
			continue
		}

		val, err := json.Marshal(e.val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of t with the decoded JSON object.
// Nested objects become branches, every other JSON value is decoded
// into a leaf of type V. The siblings keep the member order of the
// input. Empty objects are dropped, they have no leaves. A null leaf
// is rejected with ErrInvalidValue.
//
// Tokens are decoded with UnmarshalText if *K implements
// [encoding.TextUnmarshaler], otherwise K must be string.
func (t *Tree[K, V]) UnmarshalJSON(data []byte) error {
	type item struct {
		path []K
		raw  json.RawMessage
	}

	if !isObject(data) {
		return fmt.Errorf("%w: top level must be a JSON object", ErrInvalidValue)
	}

	out := new(Tree[K, V])
	stack := []item{{raw: data}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !isObject(it.raw) {
			if isNull(it.raw) {
				return fmt.Errorf("%w: %v: null leaf", ErrInvalidValue, Path[K](it.path))
			}
			var val V
			if err := json.Unmarshal(it.raw, &val); err != nil {
				return fmt.Errorf("%w: %v: %w", ErrInvalidValue, Path[K](it.path), err)
			}
			out.Set(val, it.path...)
			continue
		}

		members, err := objectMembers(it.raw)
		if err != nil {
			return err
		}

		// push reversed, the pops are in member order then
		for i := len(members) - 1; i >= 0; i-- {
			k, err := parseToken[K](members[i].name)
			if err != nil {
				return err
			}
			stack = append(stack, item{path: appendKey(it.path, k), raw: members[i].raw})
		}
	}

	t.root = out.root
	return nil
}

type member struct {
	name string
	raw  json.RawMessage
}

// objectMembers returns the members of a JSON object in input order.
func objectMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	// opening brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrInvalidValue, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		members = append(members, member{name: name, raw: raw})
	}

	return members, nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// tokenText returns the text form of a token.
func tokenText[K comparable](k K) (string, error) {
	if tm, ok := any(k).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		return string(text), err
	}
	return fmt.Sprint(k), nil
}

var errTokenType = errors.New("ndtree: token type not decodable from text")

// parseToken is the inverse of tokenText.
func parseToken[K comparable](s string) (K, error) {
	var k K
	switch p := any(&k).(type) {
	case encoding.TextUnmarshaler:
		err := p.UnmarshalText([]byte(s))
		return k, err
	case *string:
		*p = s
		return k, nil
	}
	return k, fmt.Errorf("%w: %T", errTokenType, k)
}
