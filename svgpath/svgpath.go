// Package svgpath splits SVG path data into commands.
//
// The parser is lenient. Characters that are neither command letters nor
// part of a number are skipped, and commands with fewer arguments than
// their letter requires are returned as they are. Coordinates are not
// resolved: relative commands stay relative, and H, V, S, T and A keep their
// own arguments. Resolving them into geometry is left to the caller.
package svgpath

import (
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Command is a single path command: its letter, in the case it appeared in,
// and its arguments.
type Command struct {
	Letter byte
	Args   []float64
}

func (cmd Command) String() string {
	b := []byte{cmd.Letter}
	for i, a := range cmd.Args {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, a, 'f', -1, 64)
	}
	return string(b)
}

// Relative reports whether the command's coordinates are relative to the
// current point.
func (cmd Command) Relative() bool {
	return 'a' <= cmd.Letter && cmd.Letter <= 'z'
}

// Arity returns the number of arguments the command letter takes, or -1 if
// letter is not a path command.
func Arity(letter byte) int {
	switch letter | 0x20 {
	case 'a':
		return 7
	case 'c':
		return 6
	case 'q', 's':
		return 4
	case 'l', 'm', 't':
		return 2
	case 'h', 'v':
		return 1
	case 'z':
		return 0
	default:
		return -1
	}
}

func isCommand(c byte) bool {
	return Arity(c) >= 0
}

// Parse splits path data into commands.
//
// Each command letter takes the numbers that follow it, up to the next
// letter. If there are more numbers than the letter's arity, the remainder
// forms implicit repetitions of the same command; after a moveto the
// repetitions are linetos of the same case. A letter followed by no numbers
// yields no command, except closepath, which never takes arguments.
func Parse(d string) []Command {
	var cmds []Command
	b := []byte(d)
	i := 0
	for i < len(b) && !isCommand(b[i]) {
		i++
	}
	for i < len(b) {
		letter := b[i]
		i++
		var args []float64
		args, i = scanNumbers(b, i, letter|0x20 == 'a')
		cmds = stack(cmds, letter, args)
	}
	return cmds
}

// scanNumbers reads the numbers in b starting at i, up to the next command
// letter, and returns them along with the index of that letter. If arc is
// set, the flag positions of each argument group may be written as single
// digits without separators, as in "a1 1 0 00 1 1".
func scanNumbers(b []byte, i int, arc bool) ([]float64, int) {
	var nums []float64
	for i < len(b) && !isCommand(b[i]) {
		if arc {
			if k := len(nums) % 7; (k == 3 || k == 4) && (b[i] == '0' || b[i] == '1') {
				nums = append(nums, float64(b[i]-'0'))
				i++
				continue
			}
		}
		f, n := pstrconv.ParseFloat(b[i:])
		if n == 0 {
			i++
			continue
		}
		nums = append(nums, f)
		i += n
	}
	return nums, i
}

// stack appends the commands for one letter and its numbers to cmds.
func stack(cmds []Command, letter byte, nums []float64) []Command {
	switch letter {
	case 'z', 'Z':
		return append(cmds, Command{Letter: letter})
	case 'm', 'M':
		if len(nums) > 2 {
			cmds = append(cmds, Command{Letter: letter, Args: nums[:2:2]})
			lineTo := byte('L')
			if letter == 'm' {
				lineTo = 'l'
			}
			return chunk(cmds, lineTo, nums[2:])
		}
	}
	return chunk(cmds, letter, nums)
}

// chunk slices nums into groups of the letter's arity. The last group may
// be short.
func chunk(cmds []Command, letter byte, nums []float64) []Command {
	size := Arity(letter)
	for len(nums) > 0 {
		n := min(size, len(nums))
		cmds = append(cmds, Command{Letter: letter, Args: nums[:n:n]})
		nums = nums[n:]
	}
	return cmds
}
