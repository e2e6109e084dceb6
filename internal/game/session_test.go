package game

import (
	"testing"

	"github.com/vovakirdan/going-mental/internal/actor"
	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/core"
	"github.com/vovakirdan/going-mental/internal/core/coretest"
	"github.com/vovakirdan/going-mental/internal/level"
)

// recordingSounds remembers every cue in order.
type recordingSounds struct {
	cues []Cue
}

func (r *recordingSounds) Play(c Cue) {
	r.cues = append(r.cues, c)
}

// newTestSession builds a session over the default levels without obstacles.
func newTestSession(t *testing.T) (*Session, *recordingSounds) {
	t.Helper()
	cfg := config.Default()

	levels := make([]*level.Level, len(cfg.Levels))
	for i, def := range cfg.Levels {
		levels[i] = level.NewWithObstacles(def, nil)
	}
	catalog, err := level.NewCatalogOf(levels...)
	if err != nil {
		t.Fatalf("NewCatalogOf() failed: %v", err)
	}

	sounds := &recordingSounds{}
	player := actor.New(cfg.Actor, cfg.Display.Width, cfg.Display.Height)
	return NewSession(cfg, catalog, player, sounds, nil), sounds
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func pressed(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Press(a)
	in.Hold(a)
	return in
}

func released() core.InputFrame {
	in := core.NewInputFrame()
	in.Release()
	return in
}

func TestAdvanceFirstLevel(t *testing.T) {
	s, sounds := newTestSession(t)
	s.Player().SetPosition(10, 10)

	res := s.Step(pressed(core.ActionAdvance))

	if !res.Advanced {
		t.Error("Step should report the advance")
	}
	if res.State.LevelIndex != 1 || res.State.LevelName != "Museum" {
		t.Errorf("level = %d (%s), expected 1 (Museum)", res.State.LevelIndex, res.State.LevelName)
	}
	if !s.catalog.At(0).Completed() {
		t.Error("level 0 should be completed")
	}
	if len(sounds.cues) != 2 || sounds.cues[0] != CueMissionComplete || sounds.cues[1] != CueLevelChange {
		t.Errorf("cues = %v, expected [mission_complete level_change]", sounds.cues)
	}
	if b := s.Player().Bounds(); b.X != 380 || b.Y != 265 {
		t.Errorf("actor at (%d, %d), expected recentered (380, 265)", b.X, b.Y)
	}
	if res.State.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", res.State.Phase)
	}
}

func TestAdvanceLastLevel(t *testing.T) {
	s, sounds := newTestSession(t)
	for i := 0; i < 7; i++ {
		s.Step(pressed(core.ActionAdvance))
	}
	if s.State().LevelIndex != 7 {
		t.Fatalf("index = %d, expected 7", s.State().LevelIndex)
	}
	sounds.cues = nil

	res := s.Step(pressed(core.ActionAdvance))

	if res.State.Phase != PhaseEndScreen {
		t.Errorf("phase = %v, expected end_screen", res.State.Phase)
	}
	if res.State.LevelIndex != 7 {
		t.Errorf("index = %d, expected to stay at 7", res.State.LevelIndex)
	}
	if res.State.Completed != 8 {
		t.Errorf("completed = %d, expected 8", res.State.Completed)
	}
	if len(sounds.cues) != 1 || sounds.cues[0] != CueMissionComplete {
		t.Errorf("cues = %v, expected only mission_complete", sounds.cues)
	}
}

func TestAdvanceIsEdgeTriggered(t *testing.T) {
	s, _ := newTestSession(t)

	// Holding the advance key without a new press does nothing.
	in := core.NewInputFrame()
	in.Hold(core.ActionAdvance)
	for i := 0; i < 10; i++ {
		s.Step(in)
	}
	if s.State().LevelIndex != 0 {
		t.Errorf("index = %d after holding advance, expected 0", s.State().LevelIndex)
	}

	s.Step(pressed(core.ActionAdvance))
	s.Step(in)
	if s.State().LevelIndex != 1 {
		t.Errorf("index = %d, expected exactly one advance", s.State().LevelIndex)
	}
}

func TestIndexMonotonicAndBounded(t *testing.T) {
	s, _ := newTestSession(t)
	prev := 0
	for i := 0; i < 40 && !s.Done(); i++ {
		var in core.InputFrame
		if i%3 == 0 {
			in = pressed(core.ActionAdvance)
		} else {
			in = idle()
		}
		st := s.Step(in).State
		if st.LevelIndex < prev {
			t.Fatalf("tick %d: index went back from %d to %d", i, prev, st.LevelIndex)
		}
		if st.LevelIndex > st.LevelCount-1 {
			t.Fatalf("tick %d: index %d past last level", i, st.LevelIndex)
		}
		prev = st.LevelIndex
	}
}

func TestQuitWhilePlaying(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step(pressed(core.ActionAdvance))

	res := s.Step(pressed(core.ActionQuit))

	if !s.Done() || res.State.Exit != ExitQuit {
		t.Errorf("phase = %v exit = %v, expected terminated by quit", res.State.Phase, res.State.Exit)
	}
	sum := s.Summary()
	if sum.Finished || sum.LevelsDone != 1 || sum.LastLevel != "Museum" {
		t.Errorf("summary = %+v", sum)
	}

	// Terminated ignores everything.
	before := s.State()
	s.Step(pressed(core.ActionAdvance))
	if s.State() != before {
		t.Error("terminated session should not change")
	}
}

func finishRun(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 8; i++ {
		s.Step(pressed(core.ActionAdvance))
	}
	if s.State().Phase != PhaseEndScreen {
		t.Fatalf("phase = %v, expected end_screen", s.State().Phase)
	}
}

func TestEndScreenExits(t *testing.T) {
	tests := []struct {
		name     string
		wait     int
		in       core.InputFrame
		wantExit ExitReason
	}{
		{"quit right away", 0, pressed(core.ActionQuit), ExitQuitAtEnd},
		{"release inside grace window", 0, released(), ExitNone},
		{"release after grace window", 30, released(), ExitDismissed},
		{"idle after grace window", 30, idle(), ExitNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			finishRun(t, s)
			for i := 0; i < tc.wait; i++ {
				s.Step(idle())
			}

			res := s.Step(tc.in)

			if res.State.Exit != tc.wantExit {
				t.Errorf("exit = %v, expected %v", res.State.Exit, tc.wantExit)
			}
			if tc.wantExit == ExitNone && res.State.Phase != PhaseEndScreen {
				t.Errorf("phase = %v, expected to stay on end_screen", res.State.Phase)
			}
			if tc.wantExit != ExitNone && !s.Summary().Finished {
				t.Error("summary should mark the run finished")
			}
		})
	}
}

func TestEndScreenWithoutGrace(t *testing.T) {
	s, _ := newTestSession(t)
	s.cfg.EndScreen.GraceTicks = 0
	finishRun(t, s)

	res := s.Step(released())

	if res.State.Exit != ExitDismissed || res.State.Phase != PhaseTerminated {
		t.Errorf("state = %+v, expected the first release to dismiss", res.State)
	}
}

func TestCollisionPushBack(t *testing.T) {
	cfg := config.Default()
	wall := level.Obstacle{Rect: core.NewRect(200, 100, 50, 100), Color: core.RGB(100, 100, 100)}
	catalog, err := level.NewCatalogOf(level.NewWithObstacles(cfg.Levels[0], []level.Obstacle{wall}))
	if err != nil {
		t.Fatal(err)
	}
	player := actor.New(cfg.Actor, cfg.Display.Width, cfg.Display.Height)
	s := NewSession(cfg, catalog, player, nil, nil)

	// Right edge of the actor sits one step inside the wall's right side.
	player.SetPosition(250-cfg.Actor.Width+3, 120)
	start := player.Bounds()

	in := core.NewInputFrame()
	in.Hold(core.ActionLeft)
	s.Step(in)

	if got := player.Bounds(); got.X != start.X || got.Y != start.Y {
		t.Errorf("actor at (%d, %d), expected pushed back to (%d, %d)", got.X, got.Y, start.X, start.Y)
	}
}

func TestRenderPlaying(t *testing.T) {
	s, _ := newTestSession(t)
	dst := coretest.NewSurface(800, 600)

	s.Render(dst)

	if dst.Ops[0].Kind != coretest.OpFill || dst.Ops[0].Color != core.RGB(200, 200, 255) {
		t.Errorf("first op = %+v, expected Theater background", dst.Ops[0])
	}
	if !dst.HasText("Level: Theater") || !dst.HasText("Mission: Run around the stage doing crazy poses!") {
		t.Error("level labels missing")
	}
	if dst.HasText(PromptText) {
		t.Error("prompt should not show on an open level")
	}
	last := dst.Ops[len(dst.Ops)-1]
	if last.Kind != coretest.OpImage {
		t.Errorf("last op = %v, expected actor image on top", last.Kind)
	}
}

func TestRenderPrompt(t *testing.T) {
	s, _ := newTestSession(t)
	s.Level().Complete()
	dst := coretest.NewSurface(800, 600)

	s.Render(dst)

	var found bool
	for _, op := range dst.Texts() {
		if op.Text == PromptText {
			found = true
			if op.Rect.X != 200 || op.Rect.Y != 550 || op.Color != core.ColorRed {
				t.Errorf("prompt op = %+v, expected red at (200, 550)", op)
			}
		}
	}
	if !found {
		t.Error("prompt missing for a completed, non-final level")
	}
}

func TestRenderEndScreen(t *testing.T) {
	s, _ := newTestSession(t)
	finishRun(t, s)
	dst := coretest.NewSurface(800, 600)

	s.Render(dst)

	if dst.Ops[0].Kind != coretest.OpFill || dst.Ops[0].Color != core.ColorBlack {
		t.Errorf("first op = %+v, expected black fill", dst.Ops[0])
	}

	want := []struct {
		text string
		y    int
		c    core.Color
		size core.TextSize
	}{
		{EndTitle, 200, core.ColorYellow, core.TextTitle},
		{EndTagline, 300, core.ColorWhite, core.TextBody},
		{EndInstruction, 400, core.ColorWhite, core.TextBody},
	}
	texts := dst.Texts()
	if len(texts) != len(want) {
		t.Fatalf("drew %d lines, expected %d", len(texts), len(want))
	}
	for i, w := range want {
		got := texts[i]
		if got.Text != w.text || got.Rect.Y != w.y || got.Color != w.c || got.Size != w.size {
			t.Errorf("line %d = %+v, expected %q at y=%d", i, got, w.text, w.y)
		}
		if center := got.Rect.X + got.Rect.W/2; center < 399 || center > 401 {
			t.Errorf("line %q centered at x=%d, expected 400", got.Text, center)
		}
	}

	s.Step(pressed(core.ActionQuit))
	dst.Reset()
	s.Render(dst)
	if len(dst.Ops) != 0 {
		t.Errorf("terminated session drew %d ops", len(dst.Ops))
	}
}

func TestStartDeterministic(t *testing.T) {
	cfg := config.Default()

	s1, err := Start(cfg, 1234, nil, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	s2, err := Start(cfg, 1234, nil, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	for i := 0; i < s1.catalog.Len(); i++ {
		o1, o2 := s1.catalog.At(i).Obstacles(), s2.catalog.At(i).Obstacles()
		if len(o1) != len(o2) {
			t.Fatalf("level %d: %d vs %d obstacles for the same seed", i, len(o1), len(o2))
		}
		for j := range o1 {
			if o1[j] != o2[j] {
				t.Errorf("level %d obstacle %d differs: %+v vs %+v", i, j, o1[j], o2[j])
			}
		}
	}

	// Scripted input gives the same outcome on both sessions.
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		in.Hold(core.MovementActions[i/40%4])
		if i%50 == 0 {
			in.Press(core.ActionAdvance)
		}
		s1.Step(in)
		s2.Step(in)
	}
	if s1.State() != s2.State() || s1.Player().Bounds() != s2.Player().Bounds() {
		t.Errorf("sessions diverged: %+v vs %+v", s1.State(), s2.State())
	}
}
