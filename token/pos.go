package token

import "fmt"

// Pos is a position in the input. Line and Col count from 1; Col counts
// bytes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}

func (p *Pos) advance(c byte) {
	p.Offset++
	if c == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}
