package main

import (
	"fmt"
	"strings"

	"github.com/turox/turox/internal/board"
)

// applyEdits empties the squares in clearList, then places the pieces in
// putList. clearList is comma-separated squares ("e2,d7"); putList is
// comma-separated square=piece pairs using FEN letters ("e4=P,d5=p").
func applyEdits(b *board.Board, clearList, putList string) error {
	for _, field := range splitList(clearList) {
		sq, err := board.ParseSquare(field)
		if err != nil {
			return err
		}
		b.ClearSquare(sq)
	}

	for _, field := range splitList(putList) {
		sqStr, pieceStr, ok := strings.Cut(field, "=")
		if !ok || len(pieceStr) != 1 {
			return fmt.Errorf("invalid placement %q, want square=piece", field)
		}
		sq, err := board.ParseSquare(sqStr)
		if err != nil {
			return err
		}
		p := board.PieceFromChar(pieceStr[0])
		if p == board.NoPiece {
			return fmt.Errorf("invalid piece %q in %q", pieceStr, field)
		}
		b.Put(sq, p)
	}

	return nil
}

func splitList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
