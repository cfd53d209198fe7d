package contour

import (
	"errors"
	"fmt"
	"strconv"
)

// Verb identifies a drawing command. The numeric values match Skia's path
// verbs, so flat command streams can be exchanged with Skia-based renderers.
type Verb int

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbConic
	VerbCubic
	VerbClose
)

func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbConic:
		return "Conic"
	case VerbCubic:
		return "Cubic"
	case VerbClose:
		return "Close"
	default:
		return "Verb(" + strconv.Itoa(int(v)) + ")"
	}
}

// Arity returns the number of arguments the verb takes, or -1 for unknown
// verbs.
func (v Verb) Arity() int {
	switch v {
	case VerbMove, VerbLine:
		return 2
	case VerbQuad:
		return 4
	case VerbConic:
		return 5
	case VerbCubic:
		return 6
	case VerbClose:
		return 0
	default:
		return -1
	}
}

// Command is a single drawing command. Args holds the command's points as
// flat x, y pairs, followed by the weight for conics.
type Command struct {
	Verb Verb
	Args []float64
}

func (cmd Command) String() string {
	b := []byte(cmd.Verb.String())
	for i, a := range cmd.Args {
		if i == 0 {
			b = append(b, '(')
		} else {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, a, 'g', -1, 64)
	}
	if len(cmd.Args) > 0 {
		b = append(b, ')')
	}
	return string(b)
}

// Point returns the i-th point of the command's arguments.
func (cmd Command) Point(i int) Point {
	return Point{cmd.Args[2*i], cmd.Args[2*i+1]}
}

var (
	ErrUnknownVerb  = errors.New("unknown verb")
	ErrShortCommand = errors.New("command has too few arguments")
)

// EncodeCommands flattens cmds into a single slice of numbers, each verb
// followed by its arguments.
func EncodeCommands(cmds []Command) []float64 {
	n := 0
	for _, cmd := range cmds {
		n += 1 + len(cmd.Args)
	}
	out := make([]float64, 0, n)
	for _, cmd := range cmds {
		out = append(out, float64(cmd.Verb))
		out = append(out, cmd.Args...)
	}
	return out
}

// DecodeCommands is the inverse of [EncodeCommands]. It returns an error
// wrapping [ErrUnknownVerb] or [ErrShortCommand] if data is malformed.
func DecodeCommands(data []float64) ([]Command, error) {
	var out []Command
	for i := 0; i < len(data); {
		v := Verb(data[i])
		if float64(v) != data[i] || v.Arity() < 0 {
			return nil, fmt.Errorf("decoding command at offset %d: %w: %v", i, ErrUnknownVerb, data[i])
		}
		i++
		n := v.Arity()
		if len(data)-i < n {
			return nil, fmt.Errorf("decoding %s at offset %d: %w: have %d, want %d", v, i-1, ErrShortCommand, len(data)-i, n)
		}
		var args []float64
		if n > 0 {
			args = append([]float64(nil), data[i:i+n]...)
		}
		out = append(out, Command{Verb: v, Args: args})
		i += n
	}
	return out, nil
}

// validate checks that cmd has a known verb and enough arguments.
func (cmd Command) validate() error {
	n := cmd.Verb.Arity()
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownVerb, int(cmd.Verb))
	}
	if len(cmd.Args) < n {
		return fmt.Errorf("%s: %w: have %d, want %d", cmd.Verb, ErrShortCommand, len(cmd.Args), n)
	}
	return nil
}
