package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/arena"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

var (
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHero       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

var tuiBuffs = map[rune]combat.SupportEffect{
	'1': combat.EffectBuffDamage,
	'2': combat.EffectBuffDefense,
	'3': combat.EffectBuffResistance,
	'4': combat.EffectRepulse,
	'5': combat.EffectInvulnerable,
}

type terminal struct {
	screen  tcell.Screen
	arena   *arena.Arena
	healing bool
}

func runTUI(a *arena.Arena, dt float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	t := &terminal{screen: screen, arena: a}
	if dt <= 0 {
		dt = 1.0 / 60
	}
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			quit, err := t.handle(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			a.Step(dt)
			t.draw()
		}
	}
}

func (t *terminal) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		switch r := ev.Rune(); r {
		case 'r':
			t.healing = false
			return false, t.arena.Reset()
		case 'h':
			action := component.ActionHealStart
			if t.healing {
				action = component.ActionHealStop
			}
			t.healing = !t.healing
			return false, t.arena.Request(component.SupportRequest{Action: action})
		default:
			if effect, ok := tuiBuffs[r]; ok {
				return false, t.arena.Request(component.SupportRequest{Action: component.ActionBuff, Effect: effect})
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false, nil
}

func (t *terminal) draw() {
	s := t.screen
	s.Clear()
	width, height := s.Size()
	if width < 10 || height < 4 {
		s.Show()
		return
	}

	a := t.arena
	bounds := a.Spec.Bounds.Rect()
	// Row 0 is the HUD; the arena fills the rest.
	rows := height - 1
	toCell := func(p cp.Vector) (int, int, bool) {
		x := int((p.X - bounds.X) / bounds.Width * float64(width))
		y := 1 + int((p.Y-bounds.Y)/bounds.Height*float64(rows))
		return x, y, x >= 0 && x < width && y >= 1 && y < height
	}

	for x := 0; x < width; x++ {
		s.SetContent(x, 1, '-', nil, styleWall)
		s.SetContent(x, height-1, '-', nil, styleWall)
	}
	for y := 1; y < height; y++ {
		s.SetContent(0, y, '|', nil, styleWall)
		s.SetContent(width-1, y, '|', nil, styleWall)
	}
	for _, r := range a.Spec.Obstacles {
		rect := r.Rect()
		x0, y0, _ := toCell(rect.Min())
		x1, y1, _ := toCell(rect.Max())
		for y := max(y0, 1); y <= min(y1, height-1); y++ {
			for x := max(x0, 0); x <= min(x1, width-1); x++ {
				s.SetContent(x, y, '#', nil, styleWall)
			}
		}
	}

	w := a.World
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TagsComponent.Kind(), func(_ ecs.Entity, tr *component.Transform, tags *component.Tags) {
		x, y, ok := toCell(tr.Position)
		if !ok {
			return
		}
		switch {
		case tags.Mask&combat.TagProjectile != 0:
			s.SetContent(x, y, '*', nil, styleProjectile)
		case tags.Mask&combat.TagEnemy != 0:
			s.SetContent(x, y, 'e', nil, styleEnemy)
		case tags.Mask&combat.TagPlayer != 0:
			s.SetContent(x, y, 'P', nil, stylePlayer)
		case tags.Mask&combat.TagHero != 0:
			s.SetContent(x, y, '@', nil, styleHero)
		}
	})

	hp := "-"
	if h, ok := ecs.Get(w, a.Hero, component.HealthComponent.Kind()); ok {
		hp = fmt.Sprintf("%d/%d", h.Current, h.Max)
	}
	status := fmt.Sprintf(" t=%.1f alive=%d waves=%d kills=%d hero=%s  [h]eal [1-5]buff [r]eset [esc]",
		a.Director.Elapsed, a.Director.CurrentAlive(), a.Stats.Waves, a.Stats.Kills, hp)
	if a.World.Paused() {
		status += "  TIME STOPPED"
	}
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		s.SetContent(i, 0, r, nil, styleHUD)
	}
	s.Show()
}
