package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout constants. Each board cell is drawn two characters wide so the
// well looks square in a terminal.
const (
	cellWidth   = 2
	wellWidth   = BoardWidth*cellWidth + 2 // including borders
	wellHeight  = BoardHeight + 2
	panelWidth  = 18
	panelGap    = 2
	MinScreenW  = wellWidth + panelGap + panelWidth
	MinScreenH  = wellHeight
	filledBlock = "[]"
	emptyBlock  = " ."
)

// Render draws a snapshot into the screen buffer.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	originX := (dst.Width() - MinScreenW) / 2
	originY := (dst.Height() - MinScreenH) / 2

	renderWell(s, dst, originX, originY)
	renderPanel(s, dst, originX+wellWidth+panelGap, originY)

	switch {
	case s.IsGameOver:
		renderOverlay(dst, originX, originY, "GAME OVER", fmt.Sprintf("Score %d", s.Score), "Enter: play again")
	case s.Paused:
		renderOverlay(dst, originX, originY, "PAUSED", "", "P: resume")
	case s.Status == StatusIdle:
		renderOverlay(dst, originX, originY, "BLOCKFALL", "", "Enter: start")
	}
}

// renderWell draws the border, locked cells and the falling piece.
func renderWell(s Snapshot, dst *core.Screen, ox, oy int) {
	dst.DrawBox(ox, oy, wellWidth, wellHeight, core.ColorGray)

	board := s.Overlay()
	for y := range BoardHeight {
		for x := range BoardWidth {
			cell := board[y][x]
			sx := ox + 1 + x*cellWidth
			sy := oy + 1 + y
			if cell.Filled {
				dst.DrawColorText(sx, sy, filledBlock, cell.Color)
			} else {
				dst.DrawColorText(sx, sy, emptyBlock, core.ColorGray)
			}
		}
	}
}

// renderPanel draws the score side panel.
func renderPanel(s Snapshot, dst *core.Screen, px, py int) {
	dst.DrawColorText(px, py, "BLOCKFALL", core.ColorBrightCyan)
	dst.DrawHLine(px, py+1, panelWidth, '─')

	rows := []string{
		fmt.Sprintf("Score  %d", s.Score),
		fmt.Sprintf("Lines  %d", s.Lines),
		fmt.Sprintf("Level  %d", s.Level),
		fmt.Sprintf("Speed  %dms", s.DropInterval.Milliseconds()),
		fmt.Sprintf("Pieces %d", s.Locks),
	}
	for i, row := range rows {
		dst.DrawText(px, py+2+i, row)
	}

	if s.HasPiece {
		dst.DrawText(px, py+8, "Piece")
		for _, c := range s.Piece.Cells() {
			dst.DrawColorText(px+7+c.X*cellWidth, py+8+c.Y, filledBlock, s.Piece.Color())
		}
	}

	help := []string{
		"←/→ A/D  move",
		"↓ S      drop",
		"↑ W Spc  rotate",
		"P        pause",
		"R        reset",
		"Esc      menu",
		"Q        quit",
	}
	for i, line := range help {
		dst.DrawColorText(px, py+13+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered message box over the well.
func renderOverlay(dst *core.Screen, ox, oy int, title, line, hint string) {
	boxW := wellWidth - 4
	boxH := 5
	bx := ox + 2
	by := oy + (wellHeight-boxH)/2

	dst.FillRect(bx, by, boxW, boxH, ' ')
	dst.DrawBox(bx, by, boxW, boxH, core.ColorWhite)

	center := func(y int, text string, c core.Color) {
		x := bx + (boxW-len([]rune(text)))/2
		dst.DrawColorText(x, y, text, c)
	}
	center(by+1, title, core.ColorBrightYellow)
	if line != "" {
		center(by+2, line, core.ColorDefault)
	}
	center(by+3, hint, core.ColorGray)
}
