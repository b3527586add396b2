package feistel

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects a chaining mode. The numeric values are the wire codes 0..4.
type Mode int

const (
	ECB Mode = iota
	CBC
	PCBC
	CFB
	OFB
)

var modeNames = [...]string{
	ECB:  "ECB",
	CBC:  "CBC",
	PCBC: "PCBC",
	CFB:  "CFB",
	OFB:  "OFB",
}

// Modes lists every supported mode in code order.
func Modes() []Mode {
	return []Mode{ECB, CBC, PCBC, CFB, OFB}
}

// Valid reports whether m is one of the five modes.
func (m Mode) Valid() bool {
	return m >= ECB && m <= OFB
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode accepts a mode name in any case or its numeric code.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	if code, err := strconv.Atoi(s); err == nil && Mode(code).Valid() {
		return Mode(code), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
