package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubesolver/internal/perm"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Front face when solved
	Orange Color = 3 // Back face when solved
	Blue   Color = 4 // Right face when solved
	Green  Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

func colorFromLetter(b byte) Color {
	switch b {
	case 'W':
		return White
	case 'Y':
		return Yellow
	case 'R':
		return Red
	case 'O':
		return Orange
	case 'B':
		return Blue
	case 'G':
		return Green
	}
	return Color(0xff)
}

// Sticker returns the color of sticker i of piece p, counting from the
// white or yellow sticker.
func Sticker(p perm.Piece, i int) Color {
	name := p.Name()
	return colorFromLetter(name[(i+p.Orientation())%len(name)])
}

// NetFace identifies a face of the unfolded net.
type NetFace int

const (
	NetLeft  NetFace = 0 // Green
	NetUp    NetFace = 1 // White
	NetBack  NetFace = 2 // Orange, drawn above Up
	NetFront NetFace = 3 // Red, drawn below Up
	NetRight NetFace = 4 // Blue
	NetDown  NetFace = 5 // Yellow, drawn right of Right
)

// Net is an unfolded cube: Back on top, then Left, Up, Right and Down side
// by side, then Front. Each face is read row by row.
type Net struct {
	Width    int // stickers per row, 2 or 3
	Facelets [6][]Color
}

// facelet names the slot and sticker drawn at one net position. A slot of
// -1 marks a fixed center.
type facelet struct {
	slot, sticker int
}

var centerColors = [6]Color{Green, White, Orange, Red, Blue, Yellow}

var standardNet = [6][9]facelet{
	NetLeft: {
		{YOG, 2}, {OG, 1}, {WGO, 1},
		{YG, 1}, {-1, 0}, {WG, 1},
		{YGR, 1}, {RG, 1}, {WRG, 2},
	},
	NetUp: {
		{WGO, 0}, {WO, 0}, {WOB, 0},
		{WG, 0}, {-1, 0}, {WB, 0},
		{WRG, 0}, {WR, 0}, {WBR, 0},
	},
	NetBack: {
		{YOG, 1}, {YO, 1}, {YBO, 2},
		{OG, 0}, {-1, 0}, {OB, 0},
		{WGO, 2}, {WO, 1}, {WOB, 1},
	},
	NetFront: {
		{WRG, 1}, {WR, 1}, {WBR, 2},
		{RG, 0}, {-1, 0}, {RB, 0},
		{YGR, 2}, {YR, 1}, {YRB, 1},
	},
	NetRight: {
		{WOB, 2}, {OB, 1}, {YBO, 1},
		{WB, 1}, {-1, 0}, {YB, 1},
		{WBR, 1}, {RB, 1}, {YRB, 2},
	},
	NetDown: {
		{YBO, 0}, {YO, 0}, {YOG, 0},
		{YB, 0}, {-1, 0}, {YG, 0},
		{YRB, 0}, {YR, 0}, {YGR, 0},
	},
}

// The 2x2x2 net is the 3x3x3 net without edges and centers.
var pocketCells = [4]int{0, 2, 6, 8}

func buildNet(m perm.Matrix, width int) Net {
	n := Net{Width: width}
	for f := range standardNet {
		var cells []int
		if width == 2 {
			cells = pocketCells[:]
		} else {
			cells = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
		}
		n.Facelets[f] = make([]Color, len(cells))
		for i, cell := range cells {
			fl := standardNet[f][cell]
			if fl.slot < 0 {
				n.Facelets[f][i] = centerColors[f]
				continue
			}
			n.Facelets[f][i] = Sticker(m.ColumnValue(fl.slot), fl.sticker)
		}
	}
	return n
}

// Net unfolds the 2x2x2 cube.
func (c Cube2) Net() Net {
	return buildNet(c.m, 2)
}

// Net unfolds the 3x3x3 cube.
func (c Cube3) Net() Net {
	return buildNet(c.m, 3)
}

// Row returns row r of face f.
func (n Net) Row(f NetFace, r int) []Color {
	return n.Facelets[f][r*n.Width : (r+1)*n.Width]
}

// String returns a text representation of the net.
func (n Net) String() string {
	var sb strings.Builder
	indent := strings.Repeat("  ", n.Width)

	writeRow := func(colors []Color) {
		for _, c := range colors {
			sb.WriteString(c.String())
			sb.WriteByte(' ')
		}
	}

	for r := 0; r < n.Width; r++ {
		sb.WriteString(indent)
		writeRow(n.Row(NetBack, r))
		sb.WriteByte('\n')
	}
	for r := 0; r < n.Width; r++ {
		for _, f := range []NetFace{NetLeft, NetUp, NetRight, NetDown} {
			writeRow(n.Row(f, r))
		}
		sb.WriteByte('\n')
	}
	for r := 0; r < n.Width; r++ {
		sb.WriteString(indent)
		writeRow(n.Row(NetFront, r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
