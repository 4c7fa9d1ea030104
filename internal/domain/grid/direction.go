package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is wrapped by DirectionError.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the eight scan directions over the grid.
type Direction uint8

// Catalog order. Search visits directions in this order.
const (
	Up Direction = iota
	Down
	Left
	Right
	UpRight
	UpLeft
	DownRight
	DownLeft
)

// Stride is the per-step movement of a direction.
type Stride struct {
	DRow, DCol int
}

type directionInfo struct {
	code   byte
	name   string
	stride Stride
}

var catalog = [...]directionInfo{
	Up:        {'u', "up", Stride{-1, 0}},
	Down:      {'d', "down", Stride{1, 0}},
	Left:      {'l', "left", Stride{0, -1}},
	Right:     {'r', "right", Stride{0, 1}},
	UpRight:   {'w', "up-right", Stride{-1, 1}},
	UpLeft:    {'x', "up-left", Stride{-1, -1}},
	DownRight: {'y', "down-right", Stride{1, 1}},
	DownLeft:  {'z', "down-left", Stride{1, -1}},
}

// Directions lists the catalog in order.
var Directions = []Direction{Up, Down, Left, Right, UpRight, UpLeft, DownRight, DownLeft}

// Codes is the direction alphabet in catalog order.
const Codes = "udlrwxyz"

// Code returns the single-letter code ('u', 'd', ...).
func (d Direction) Code() byte { return catalog[d].code }

// Stride returns the (row, col) step for d.
func (d Direction) Stride() Stride { return catalog[d].stride }

func (d Direction) String() string {
	if int(d) >= len(catalog) {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return catalog[d].name
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	s := d.Stride()
	for _, o := range Directions {
		if r := o.Stride(); r.DRow == -s.DRow && r.DCol == -s.DCol {
			return o
		}
	}
	return d
}

// DirectionFromCode maps a code letter to its Direction.
func DirectionFromCode(c rune) (Direction, bool) {
	i := strings.IndexRune(Codes, c)
	if i < 0 {
		return 0, false
	}
	return Direction(i), true
}

// DirectionError reports an unrecognized character in a direction string.
type DirectionError struct {
	Code rune
	Pos  int
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("unknown direction %q at position %d (want one of %q)", e.Code, e.Pos, Codes)
}

func (e *DirectionError) Unwrap() error { return ErrUnknownDirection }

// DirectionSet is a bitmask over the catalog.
type DirectionSet uint8

// AllDirections enables every catalog direction.
const AllDirections DirectionSet = 1<<len(catalog) - 1

// NewDirectionSet builds a set from explicit directions.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// ParseDirections validates a direction string such as "udy".
// Repeated codes are allowed. The empty string is the empty set.
func ParseDirections(s string) (DirectionSet, error) {
	var set DirectionSet
	for pos, c := range s {
		d, ok := DirectionFromCode(c)
		if !ok {
			return 0, &DirectionError{Code: c, Pos: pos}
		}
		set |= 1 << d
	}
	return set, nil
}

// Has reports whether d is enabled.
func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// Len returns the number of enabled directions.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the enabled directions in catalog order.
func (s DirectionSet) Directions() []Direction {
	var out []Direction
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as codes in catalog order.
func (s DirectionSet) String() string {
	var sb strings.Builder
	for _, d := range s.Directions() {
		sb.WriteByte(d.Code())
	}
	return sb.String()
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(catalog) {
		return nil, fmt.Errorf("invalid direction %d", d)
	}
	return []byte(catalog[d].name), nil
}

// UnmarshalText accepts a direction name or code.
func (d *Direction) UnmarshalText(b []byte) error {
	s := string(b)
	for _, o := range Directions {
		if s == catalog[o].name || s == string(catalog[o].code) {
			*d = o
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
