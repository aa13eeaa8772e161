package game

import "fmt"

// Color identifies both a piece and a square of the board.
type Color int8

const (
	Brown Color = iota
	Green
	Red
	Yellow
	Pink
	Purple
	Blue
	Orange
)

const NumColors = 8

var colorNames = [NumColors]string{"Brown", "Green", "Red", "Yellow", "Pink", "Purple", "Blue", "Orange"}

func (c Color) String() string {
	if c < 0 || c >= NumColors {
		return fmt.Sprintf("Color(%d)", int8(c))
	}
	return colorNames[c]
}

const (
	Rows = 8
	Cols = 8

	Empty int8 = -1

	NumPlayers  = 2
	ownerOffset = 10
)

// token encodes a piece as owner*10 + color.
func token(player int, c Color) int8 {
	return int8(player*ownerOffset) + int8(c)
}

func owner(t int8) int {
	return int(t) / ownerOffset
}

func colorOf(t int8) Color {
	return Color(t % ownerOffset)
}

func isPiece(t int8) bool {
	return (t >= 0 && t < NumColors) || (t >= ownerOffset && t < ownerOffset+NumColors)
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// boardColors is the fixed coloring of the squares. Row 7 is player 0's home
// row, row 0 is player 1's. The layout is invariant under a 180° rotation.
var boardColors = [Rows][Cols]Color{
	{Orange, Blue, Purple, Pink, Yellow, Red, Green, Brown},
	{Red, Orange, Pink, Green, Blue, Yellow, Brown, Purple},
	{Green, Pink, Orange, Red, Purple, Brown, Yellow, Blue},
	{Pink, Purple, Blue, Orange, Brown, Green, Red, Yellow},
	{Yellow, Red, Green, Brown, Orange, Blue, Purple, Pink},
	{Blue, Yellow, Brown, Purple, Red, Orange, Pink, Green},
	{Purple, Brown, Yellow, Blue, Green, Pink, Orange, Red},
	{Brown, Green, Red, Yellow, Pink, Purple, Blue, Orange},
}

// SquareColor returns the color painted on a square.
func SquareColor(row, col int) Color {
	return boardColors[row][col]
}

// startLayouts are the home-row arrangements a game can be dealt. Player 0
// reads its layout left to right on row 7, player 1 right to left on row 0.
// Layout 0 puts every piece on the square of its own color.
var startLayouts = [...][Cols]Color{
	{Brown, Green, Red, Yellow, Pink, Purple, Blue, Orange},
	{Orange, Blue, Purple, Pink, Yellow, Red, Green, Brown},
	{Green, Brown, Yellow, Red, Purple, Pink, Orange, Blue},
	{Red, Yellow, Brown, Green, Blue, Orange, Pink, Purple},
	{Pink, Purple, Blue, Orange, Brown, Green, Red, Yellow},
	{Yellow, Red, Green, Brown, Orange, Blue, Purple, Pink},
	{Blue, Orange, Pink, Purple, Red, Yellow, Brown, Green},
	{Purple, Pink, Orange, Blue, Green, Brown, Yellow, Red},
	{Brown, Red, Pink, Blue, Green, Yellow, Purple, Orange},
	{Orange, Purple, Yellow, Green, Blue, Pink, Red, Brown},
	{Green, Yellow, Purple, Orange, Brown, Red, Pink, Blue},
	{Blue, Pink, Red, Brown, Orange, Purple, Yellow, Green},
}

// NumLayouts is the number of start layouts a game can be dealt from.
const NumLayouts = len(startLayouts)
