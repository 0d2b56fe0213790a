package enumtour

import (
	"fmt"
	"io"
)

// Message is one of Quit, Move, Write or ChangeColor.
type Message interface {
	fmt.Stringer
	Variant() string
	isMessage()
}

type (
	// Quit carries no data.
	Quit struct{}

	// Move carries a target position.
	Move struct {
		X, Y int32
	}

	// Write carries a line of text.
	Write struct {
		Text string
	}

	// ChangeColor carries red, green and blue components.
	ChangeColor struct {
		R, G, B int32
	}
)

func (Quit) Variant() string        { return "Quit" }
func (Move) Variant() string        { return "Move" }
func (Write) Variant() string       { return "Write" }
func (ChangeColor) Variant() string { return "ChangeColor" }

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

func (Quit) String() string { return "Quit" }

func (m Move) String() string { return fmt.Sprintf("Move { x: %d, y: %d }", m.X, m.Y) }

func (m Write) String() string { return fmt.Sprintf("Write(%q)", m.Text) }

func (m ChangeColor) String() string {
	return fmt.Sprintf("ChangeColor(%d, %d, %d)", m.R, m.G, m.B)
}

// Messages returns one message of every variant in declaration order.
func Messages() []Message {
	return []Message{Quit{}, Move{X: 1, Y: 2}, Write{Text: "hello"}, ChangeColor{R: 0, G: 160, B: 255}}
}

// Call writes the debug rendering of m on its own line.
func Call(w io.Writer, m Message) error {
	if m == nil {
		return fmt.Errorf("call: nil message: %w", ErrUnknownVariant)
	}
	_, err := fmt.Fprintln(w, m.String())
	return err
}
