package enumtour

import "fmt"

// IPAddr is either a V4 or a V6 address.
type IPAddr interface {
	fmt.Stringer
	Variant() string
	isIPAddr()
}

// V4 holds the four octets of an IPv4 address.
type V4 struct {
	octets [4]uint8
}

// NewV4 builds a V4 address from its octets.
func NewV4(a, b, c, d uint8) V4 {
	return V4{octets: [4]uint8{a, b, c, d}}
}

// Octets returns the four components in order.
func (v V4) Octets() (a, b, c, d uint8) {
	return v.octets[0], v.octets[1], v.octets[2], v.octets[3]
}

// Variant reports "V4".
func (V4) Variant() string { return "V4" }
func (V4) isIPAddr()       {}

func (v V4) String() string {
	return fmt.Sprintf("V4(%d, %d, %d, %d)", v.octets[0], v.octets[1], v.octets[2], v.octets[3])
}

// V6 holds an IPv6 address in its textual form. The text is not parsed.
type V6 struct {
	addr string
}

// NewV6 builds a V6 address from its text.
func NewV6(addr string) V6 {
	return V6{addr: addr}
}

// Addr returns the address text unchanged.
func (v V6) Addr() string { return v.addr }

// Variant reports "V6".
func (V6) Variant() string { return "V6" }
func (V6) isIPAddr()       {}

func (v V6) String() string { return fmt.Sprintf("V6(%q)", v.addr) }
