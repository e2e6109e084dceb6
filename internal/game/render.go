package game

import "github.com/vovakirdan/going-mental/internal/core"

// Render draws the current phase to dst.
func (s *Session) Render(dst core.Surface) {
	switch s.phase {
	case PhasePlaying:
		s.renderPlaying(dst)
	case PhaseEndScreen:
		renderEndScreen(dst)
	}
}

func (s *Session) renderPlaying(dst core.Surface) {
	current := s.catalog.At(s.index)
	current.Draw(dst)
	s.player.Draw(dst)

	// Advancing moves past a completed level in the same tick, so this only
	// shows when a level was completed from outside the session.
	if current.Completed() && s.index < s.catalog.LastIndex() {
		w, h := dst.Size()
		dst.DrawText(PromptText, w/4, h-promptBottomOffset, core.ColorRed, core.TextBody)
	}
}

func renderEndScreen(dst core.Surface) {
	w, h := dst.Size()
	dst.Fill(core.ColorBlack)

	lines := []struct {
		text string
		c    core.Color
		y    int
		size core.TextSize
	}{
		{EndTitle, core.ColorYellow, h / 3, core.TextTitle},
		{EndTagline, core.ColorWhite, h / 2, core.TextBody},
		{EndInstruction, core.ColorWhite, h * 2 / 3, core.TextBody},
	}
	for _, l := range lines {
		x := (w - dst.TextWidth(l.text, l.size)) / 2
		dst.DrawText(l.text, x, l.y, l.c, l.size)
	}
}
