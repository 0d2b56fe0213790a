// Package enumtour models a few closed sets of variants as sealed Go
// interfaces and dispatches over them with exhaustive type switches.
//
// # Unions
//
// Each union is an interface with an unexported marker method, so only the
// variant types declared here can satisfy it:
//
//	IPAddr  = V4 | V6
//	Message = Quit | Move | Write | ChangeColor
//	Coin    = Penny | Nickel | Dime | Quarter
//
// UsState is a plain string enumeration; its zero value is not a state.
//
// # Dispatch
//
// Switches over a union name every variant and panic in the default branch.
// A variant added later without a matching case fails loudly on first use
// instead of falling through to a wrong answer.
//
// Example:
//
//	cents := enumtour.ValueInCents(os.Stdout, enumtour.Quarter{State: enumtour.Alaska})
//	// prints "State quarter from Alaska." and returns 25
package enumtour
