package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/comalice/enumtour"
)

func TestIPAddrRoundTrip(t *testing.T) {
	addrs := []enumtour.IPAddr{
		enumtour.NewV4(127, 0, 0, 1),
		enumtour.NewV6("::1"),
		enumtour.NewV6("true"),
		enumtour.NewV6("\x80"),
	}
	for _, want := range addrs {
		t.Run(want.String(), func(t *testing.T) {
			data, err := MarshalIPAddr(want)
			if err != nil {
				t.Fatalf("MarshalIPAddr: %v", err)
			}
			got, err := UnmarshalIPAddr(data)
			if err != nil {
				t.Fatalf("UnmarshalIPAddr(%s): %v", data, err)
			}
			if got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msgs := append(enumtour.Messages(),
		enumtour.Move{X: -2147483648, Y: 2147483647},
		enumtour.Write{Text: "\xff\xfe"},
		enumtour.Write{Text: "0x10"},
	)
	for _, want := range msgs {
		t.Run(want.String(), func(t *testing.T) {
			data, err := MarshalMessage(want)
			if err != nil {
				t.Fatalf("MarshalMessage: %v", err)
			}
			got, err := UnmarshalMessage(data)
			if err != nil {
				t.Fatalf("UnmarshalMessage(%s): %v", data, err)
			}
			if got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestCoinRoundTrip(t *testing.T) {
	coins := enumtour.Coins()
	for _, s := range enumtour.UsStates() {
		coins = append(coins, enumtour.Quarter{State: s})
	}
	for _, want := range coins {
		t.Run(want.String(), func(t *testing.T) {
			data, err := MarshalCoin(want)
			if err != nil {
				t.Fatalf("MarshalCoin: %v", err)
			}
			got, err := UnmarshalCoin(data)
			if err != nil {
				t.Fatalf("UnmarshalCoin(%s): %v", data, err)
			}
			if got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestMarshalUnitVariantHasNoPayload(t *testing.T) {
	data, err := MarshalCoin(enumtour.Penny{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "payload") {
		t.Errorf("got %q, want no payload key", data)
	}
}

func TestMarshalNil(t *testing.T) {
	if _, err := MarshalCoin(nil); !errors.Is(err, enumtour.ErrUnknownVariant) {
		t.Errorf("MarshalCoin(nil) = %v", err)
	}
	if _, err := MarshalMessage(nil); !errors.Is(err, enumtour.ErrUnknownVariant) {
		t.Errorf("MarshalMessage(nil) = %v", err)
	}
	if _, err := MarshalIPAddr(nil); !errors.Is(err, enumtour.ErrUnknownVariant) {
		t.Errorf("MarshalIPAddr(nil) = %v", err)
	}
}

func TestMarshalQuarterWithoutState(t *testing.T) {
	_, err := MarshalCoin(enumtour.Quarter{})
	if !errors.Is(err, enumtour.ErrUnknownVariant) {
		t.Errorf("got %v, want ErrUnknownVariant", err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) error
		input  string
		want   error
	}{
		{"missing variant", decodeCoinErr, "payload: Alaska\n", enumtour.ErrUnknownVariant},
		{"empty document", decodeCoinErr, "", enumtour.ErrUnknownVariant},
		{"unknown coin", decodeCoinErr, "variant: HalfDollar\n", enumtour.ErrUnknownVariant},
		{"unknown state", decodeCoinErr, "variant: Quarter\npayload: Texas\n", enumtour.ErrUnknownVariant},
		{"quarter without state", decodeCoinErr, "variant: Quarter\n", ErrPayloadShape},
		{"penny with payload", decodeCoinErr, "variant: Penny\npayload: 3\n", ErrPayloadShape},
		{"unknown message", decodeMessageErr, "variant: Jump\n", enumtour.ErrUnknownVariant},
		{"quit with payload", decodeMessageErr, "variant: Quit\npayload: [1]\n", ErrPayloadShape},
		{"move missing y", decodeMessageErr, "variant: Move\npayload: {x: 1}\n", ErrPayloadShape},
		{"move wrong key", decodeMessageErr, "variant: Move\npayload: {x: 1, z: 2}\n", ErrPayloadShape},
		{"move overflow", decodeMessageErr, "variant: Move\npayload: {x: 1, y: 4294967296}\n", ErrPayloadShape},
		{"move as sequence", decodeMessageErr, "variant: Move\npayload: [1, 2]\n", ErrPayloadShape},
		{"write as int", decodeMessageErr, "variant: Write\npayload: 0x10\n", ErrPayloadShape},
		{"write as null", decodeMessageErr, "variant: Write\npayload: ~\n", ErrPayloadShape},
		{"v6 as bool", decodeIPAddrErr, "variant: V6\npayload: true\n", ErrPayloadShape},
		{"quarter as int", decodeCoinErr, "variant: Quarter\npayload: 7\n", ErrPayloadShape},
		{"write as mapping", decodeMessageErr, "variant: Write\npayload: {text: hi}\n", ErrPayloadShape},
		{"color arity", decodeMessageErr, "variant: ChangeColor\npayload: [1, 2]\n", ErrPayloadShape},
		{"color not numbers", decodeMessageErr, "variant: ChangeColor\npayload: [a, b, c]\n", ErrPayloadShape},
		{"v4 arity", decodeIPAddrErr, "variant: V4\npayload: [127, 0, 1]\n", ErrPayloadShape},
		{"v4 octet range", decodeIPAddrErr, "variant: V4\npayload: [127, 0, 0, 256]\n", ErrPayloadShape},
		{"v4 negative octet", decodeIPAddrErr, "variant: V4\npayload: [-1, 0, 0, 1]\n", ErrPayloadShape},
		{"v6 missing", decodeIPAddrErr, "variant: V6\n", ErrPayloadShape},
		{"unknown addr", decodeIPAddrErr, "variant: V5\n", enumtour.ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnmarshalBinaryText(t *testing.T) {
	got, err := UnmarshalMessage([]byte("variant: Write\npayload: !!binary //4=\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (enumtour.Write{Text: "\xff\xfe"}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUnmarshalUnknownKey(t *testing.T) {
	_, err := UnmarshalMessage([]byte("variant: Write\npayload: x\nbogus: 1\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestUnmarshalMalformedYAML(t *testing.T) {
	if _, err := UnmarshalCoin([]byte("variant: [unclosed")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func decodeCoinErr(data []byte) error {
	_, err := UnmarshalCoin(data)
	return err
}

func decodeMessageErr(data []byte) error {
	_, err := UnmarshalMessage(data)
	return err
}

func decodeIPAddrErr(data []byte) error {
	_, err := UnmarshalIPAddr(data)
	return err
}
