package game

import (
	"encoding/binary"
	"hash/fnv"
)

// reprSize is the length of the string representation: 64 cells followed by
// an 8 byte metadata row.
const reprSize = Rows*Cols + Cols

// StringRepresentation serializes the full state byte for byte. Unlike the
// observation it never saturates the move counter.
func (gs *GameState) StringRepresentation() string {
	buf := make([]byte, 0, reprSize)
	for r := range gs.cells {
		for _, t := range gs.cells[r] {
			buf = append(buf, byte(t))
		}
	}
	active := byte(0xff)
	if c, ok := gs.active.Color(); ok {
		active = byte(c)
	}
	buf = append(buf, active)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(gs.moveCounter))
	streak := gs.passStreak
	if streak > 0xff {
		streak = 0xff
	}
	buf = append(buf, byte(streak), 0, 0, 0, 0)
	return string(buf)
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(gs.StringRepresentation()))
	return StateHash(hasher.Sum64())
}
