package enumtour

import (
	"fmt"
	"io"
)

// Coin is one of Penny, Nickel, Dime or Quarter.
type Coin interface {
	fmt.Stringer
	Variant() string
	isCoin()
}

type (
	// Penny is worth one cent.
	Penny struct{}

	// Nickel is worth five cents.
	Nickel struct{}

	// Dime is worth ten cents.
	Dime struct{}

	// Quarter carries the state printed on its back. A quarter whose state
	// fails Validate cannot be valued.
	Quarter struct {
		State UsState
	}
)

func (Penny) Variant() string   { return "Penny" }
func (Nickel) Variant() string  { return "Nickel" }
func (Dime) Variant() string    { return "Dime" }
func (Quarter) Variant() string { return "Quarter" }

func (Penny) isCoin()   {}
func (Nickel) isCoin()  {}
func (Dime) isCoin()    {}
func (Quarter) isCoin() {}

func (Penny) String() string     { return "Penny" }
func (Nickel) String() string    { return "Nickel" }
func (Dime) String() string      { return "Dime" }
func (q Quarter) String() string { return fmt.Sprintf("Quarter(%s)", q.State) }

// Coins returns one coin of every variant in declaration order.
func Coins() []Coin {
	return []Coin{Penny{}, Nickel{}, Dime{}, Quarter{State: Alabama}}
}

// ValueInCents returns the face value of c. A quarter also announces its
// state on w. It panics on a nil coin, a quarter without a valid state, or
// a variant with no case below.
func ValueInCents(w io.Writer, c Coin) uint8 {
	switch c := c.(type) {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		if err := c.State.Validate(); err != nil {
			panic(fmt.Sprintf("enumtour: quarter: %v", err))
		}
		fmt.Fprintf(w, "State quarter from %s.\n", c.State)
		return 25
	default:
		panic(fmt.Sprintf("enumtour: unhandled coin variant %T", c))
	}
}
