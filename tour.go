package enumtour

import (
	"fmt"
	"io"
	"os"
)

// Tour constructs the sample values and prints them.
type Tour struct {
	out     io.Writer
	home    IPAddr
	work    IPAddr
	message Message
	coin    Coin
}

// Option configures a Tour.
type Option func(*Tour)

// WithOutput sets where the tour writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Tour) {
		t.out = w
	}
}

// WithAddresses replaces the sample home and work addresses.
func WithAddresses(home, work IPAddr) Option {
	return func(t *Tour) {
		t.home = home
		t.work = work
	}
}

// WithMessage replaces the message that is called.
func WithMessage(m Message) Option {
	return func(t *Tour) {
		t.message = m
	}
}

// WithCoin replaces the coin that is valued.
func WithCoin(c Coin) Option {
	return func(t *Tour) {
		t.coin = c
	}
}

// NewTour returns a tour over V4(127, 0, 0, 1), V6("::1"), Write("hello")
// and Quarter(Alaska) unless options say otherwise.
func NewTour(opts ...Option) *Tour {
	t := &Tour{
		out:     os.Stdout,
		home:    NewV4(127, 0, 0, 1),
		work:    NewV6("::1"),
		message: Write{Text: "hello"},
		coin:    Quarter{State: Alaska},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Home returns the sample home address.
func (t *Tour) Home() IPAddr { return t.home }

// Work returns the sample work address.
func (t *Tour) Work() IPAddr { return t.work }

// Message returns the sample message.
func (t *Tour) Message() Message { return t.message }

// Coin returns the sample coin.
func (t *Tour) Coin() Coin { return t.coin }

// Run calls the message, values the coin and reports the value.
func (t *Tour) Run() error {
	ew := &errWriter{w: t.out}
	if err := Call(ew, t.message); err != nil {
		return fmt.Errorf("tour: %w", err)
	}
	cents := ValueInCents(ew, t.coin)
	fmt.Fprintf(ew, "coin_value is %d cents.\n", cents)
	if ew.err != nil {
		return fmt.Errorf("tour: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error and drops every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
