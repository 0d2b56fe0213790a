// Package codec encodes the enumtour unions as tagged YAML documents.
//
// Every union value becomes an envelope naming its variant, with the
// variant's payload alongside when it has one:
//
//	variant: Move
//	payload:
//	  x: 1
//	  y: 2
//
// Decoding never yields a partially built value: the variant must be one
// of the declared names and the payload must have exactly its shape.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/comalice/enumtour"
	"gopkg.in/yaml.v3"
)

// ErrPayloadShape is returned when a payload does not fit its variant.
var ErrPayloadShape = errors.New("payload does not match variant")

type envelope struct {
	Variant string `yaml:"variant"`
	Payload any    `yaml:"payload,omitempty"`
}

type rawEnvelope struct {
	Variant string    `yaml:"variant"`
	Payload yaml.Node `yaml:"payload"`
}

type movePayload struct {
	X *int32 `yaml:"x"`
	Y *int32 `yaml:"y"`
}

// MarshalIPAddr encodes an address envelope.
func MarshalIPAddr(a enumtour.IPAddr) ([]byte, error) {
	env, err := ipAddrEnvelope(a)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(env)
}

// UnmarshalIPAddr decodes an address envelope.
func UnmarshalIPAddr(data []byte) (enumtour.IPAddr, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}
	return decodeIPAddr(raw)
}

// MarshalMessage encodes a message envelope.
func MarshalMessage(m enumtour.Message) ([]byte, error) {
	env, err := messageEnvelope(m)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(env)
}

// UnmarshalMessage decodes a message envelope.
func UnmarshalMessage(data []byte) (enumtour.Message, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}
	return decodeMessage(raw)
}

// MarshalCoin encodes a coin envelope.
func MarshalCoin(c enumtour.Coin) ([]byte, error) {
	env, err := coinEnvelope(c)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(env)
}

// UnmarshalCoin decodes a coin envelope.
func UnmarshalCoin(data []byte) (enumtour.Coin, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}
	return decodeCoin(raw)
}

// parse rejects keys other than variant and payload. An empty document
// yields an envelope with no variant.
func parse(data []byte) (rawEnvelope, error) {
	var raw rawEnvelope
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return rawEnvelope{}, fmt.Errorf("yaml decode: %w", err)
	}
	return raw, nil
}

func ipAddrEnvelope(a enumtour.IPAddr) (envelope, error) {
	switch a := a.(type) {
	case enumtour.V4:
		o1, o2, o3, o4 := a.Octets()
		return envelope{Variant: a.Variant(), Payload: []int{int(o1), int(o2), int(o3), int(o4)}}, nil
	case enumtour.V6:
		return envelope{Variant: a.Variant(), Payload: a.Addr()}, nil
	case nil:
		return envelope{}, fmt.Errorf("ip addr: nil: %w", enumtour.ErrUnknownVariant)
	default:
		panic(fmt.Sprintf("codec: unhandled ip addr variant %T", a))
	}
}

func decodeIPAddr(raw rawEnvelope) (enumtour.IPAddr, error) {
	switch raw.Variant {
	case "V4":
		var octets []int
		if err := decodeSeq(&raw.Payload, &octets, 4); err != nil {
			return nil, fmt.Errorf("V4: %w", err)
		}
		for _, o := range octets {
			if o < 0 || o > 255 {
				return nil, fmt.Errorf("V4: octet %d out of range: %w", o, ErrPayloadShape)
			}
		}
		return enumtour.NewV4(uint8(octets[0]), uint8(octets[1]), uint8(octets[2]), uint8(octets[3])), nil
	case "V6":
		addr, err := decodeString(&raw.Payload)
		if err != nil {
			return nil, fmt.Errorf("V6: %w", err)
		}
		return enumtour.NewV6(addr), nil
	}
	return nil, fmt.Errorf("ip addr %q: %w", raw.Variant, enumtour.ErrUnknownVariant)
}

func messageEnvelope(m enumtour.Message) (envelope, error) {
	switch m := m.(type) {
	case enumtour.Quit:
		return envelope{Variant: m.Variant()}, nil
	case enumtour.Move:
		return envelope{Variant: m.Variant(), Payload: movePayload{X: &m.X, Y: &m.Y}}, nil
	case enumtour.Write:
		return envelope{Variant: m.Variant(), Payload: m.Text}, nil
	case enumtour.ChangeColor:
		return envelope{Variant: m.Variant(), Payload: []int32{m.R, m.G, m.B}}, nil
	case nil:
		return envelope{}, fmt.Errorf("message: nil: %w", enumtour.ErrUnknownVariant)
	default:
		panic(fmt.Sprintf("codec: unhandled message variant %T", m))
	}
}

func decodeMessage(raw rawEnvelope) (enumtour.Message, error) {
	switch raw.Variant {
	case "Quit":
		if err := decodeUnit(&raw.Payload); err != nil {
			return nil, fmt.Errorf("Quit: %w", err)
		}
		return enumtour.Quit{}, nil
	case "Move":
		if raw.Payload.Kind != yaml.MappingNode || len(raw.Payload.Content) != 4 {
			return nil, fmt.Errorf("Move: want mapping with x and y: %w", ErrPayloadShape)
		}
		var p movePayload
		if err := raw.Payload.Decode(&p); err != nil {
			return nil, fmt.Errorf("Move: %v: %w", err, ErrPayloadShape)
		}
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("Move: want mapping with x and y: %w", ErrPayloadShape)
		}
		return enumtour.Move{X: *p.X, Y: *p.Y}, nil
	case "Write":
		text, err := decodeString(&raw.Payload)
		if err != nil {
			return nil, fmt.Errorf("Write: %w", err)
		}
		return enumtour.Write{Text: text}, nil
	case "ChangeColor":
		var rgb []int32
		if err := decodeSeq(&raw.Payload, &rgb, 3); err != nil {
			return nil, fmt.Errorf("ChangeColor: %w", err)
		}
		return enumtour.ChangeColor{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}
	return nil, fmt.Errorf("message %q: %w", raw.Variant, enumtour.ErrUnknownVariant)
}

func coinEnvelope(c enumtour.Coin) (envelope, error) {
	switch c := c.(type) {
	case enumtour.Penny, enumtour.Nickel, enumtour.Dime:
		return envelope{Variant: c.Variant()}, nil
	case enumtour.Quarter:
		if err := c.State.Validate(); err != nil {
			return envelope{}, fmt.Errorf("Quarter: %w", err)
		}
		return envelope{Variant: c.Variant(), Payload: c.State}, nil
	case nil:
		return envelope{}, fmt.Errorf("coin: nil: %w", enumtour.ErrUnknownVariant)
	default:
		panic(fmt.Sprintf("codec: unhandled coin variant %T", c))
	}
}

func decodeCoin(raw rawEnvelope) (enumtour.Coin, error) {
	var coin enumtour.Coin
	switch raw.Variant {
	case "Penny":
		coin = enumtour.Penny{}
	case "Nickel":
		coin = enumtour.Nickel{}
	case "Dime":
		coin = enumtour.Dime{}
	case "Quarter":
		if _, err := decodeString(&raw.Payload); err != nil {
			return nil, fmt.Errorf("Quarter: %w", err)
		}
		var state enumtour.UsState
		if err := raw.Payload.Decode(&state); err != nil {
			return nil, fmt.Errorf("Quarter: %w", err)
		}
		return enumtour.Quarter{State: state}, nil
	default:
		return nil, fmt.Errorf("coin %q: %w", raw.Variant, enumtour.ErrUnknownVariant)
	}
	if err := decodeUnit(&raw.Payload); err != nil {
		return nil, fmt.Errorf("%s: %w", raw.Variant, err)
	}
	return coin, nil
}

// decodeUnit accepts only an absent or null payload.
func decodeUnit(n *yaml.Node) error {
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null") {
		return nil
	}
	return fmt.Errorf("unexpected payload: %w", ErrPayloadShape)
}

// decodeString accepts a !!str scalar, or !!binary for text that is not
// valid UTF-8.
func decodeString(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("want a string: %w", ErrPayloadShape)
	}
	switch n.ShortTag() {
	case "!!str", "!!binary":
	default:
		return "", fmt.Errorf("want a string, got %s: %w", n.ShortTag(), ErrPayloadShape)
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrPayloadShape)
	}
	return s, nil
}

func decodeSeq[T any](n *yaml.Node, out *[]T, arity int) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != arity {
		return fmt.Errorf("want %d elements: %w", arity, ErrPayloadShape)
	}
	if err := n.Decode(out); err != nil {
		return fmt.Errorf("%v: %w", err, ErrPayloadShape)
	}
	return nil
}
