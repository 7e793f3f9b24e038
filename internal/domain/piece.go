package domain

type PieceType string

const (
	PieceI PieceType = "I"
	PieceJ PieceType = "J"
	PieceL PieceType = "L"
	PieceO PieceType = "O"
	PieceS PieceType = "S"
	PieceT PieceType = "T"
	PieceZ PieceType = "Z"
)

// PieceTypes lists every piece type in draw order. Factories index into it.
var PieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

func (t PieceType) Valid() bool {
	switch t {
	case PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ:
		return true
	default:
		return false
	}
}

type Piece struct {
	Type PieceType `json:"type"`
	ID   int       `json:"id"`
}
