package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/arena"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/ecs/system"
	"github.com/milk9111/vanguard/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tickRate   = 60
)

var (
	heroColor       = colornames.Gold
	enemyColor      = colornames.Crimson
	playerColor     = colornames.Deepskyblue
	projectileColor = colornames.Orange
	wallColor       = colornames.Slategray
	obstacleColor   = color.RGBA{0x2f, 0x4f, 0x4f, 0xff}
	boundsColor     = colornames.Dimgray
)

var buffKeys = map[ebiten.Key]combat.SupportEffect{
	ebiten.Key1: combat.EffectBuffDamage,
	ebiten.Key2: combat.EffectBuffDefense,
	ebiten.Key3: combat.EffectBuffResistance,
	ebiten.Key4: combat.EffectRepulse,
	ebiten.Key5: combat.EffectInvulnerable,
}

var abilityKeys = map[ebiten.Key]combat.Ability{
	ebiten.KeyQ: combat.AbilityAnnihilation,
	ebiten.KeyW: combat.AbilityInvulnerability,
	ebiten.KeyE: combat.AbilityTimeStop,
	ebiten.KeyR: combat.AbilityInvisibility,
	ebiten.KeyT: combat.AbilityEndGame,
}

// noteworthy events replace the HUD message line.
var noteworthy = []string{
	system.EventSupportDenied,
	system.EventAbilityUsed,
	system.EventAbilityUnlock,
	system.EventHeroDied,
	system.EventHealed,
}

type Game struct {
	frames int
	debug  bool
	paused bool

	arena   *arena.Arena
	watcher *prefabs.Watcher
	log     *slog.Logger
	pauseUI *ebitenui.UI

	clipboard   bool
	lastMessage string
}

func NewGame(a *arena.Arena, watcher *prefabs.Watcher, log *slog.Logger, debug bool) *Game {
	g := &Game{
		arena:   a,
		watcher: watcher,
		log:     log,
		debug:   debug,
	}
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboard = true
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		for _, c := range g.watcher.Drain() {
			if err := g.arena.Apply(c); err != nil {
				g.log.Error("hot reload failed", "prefab", c.Name, "err", err)
				g.lastMessage = "reload failed: " + c.Name
				continue
			}
			g.lastMessage = "reloaded " + c.Name
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.arena.Reset(); err != nil {
			return err
		}
		g.lastMessage = "reset"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.handleSupportKeys()

	events := g.arena.Step(1.0 / tickRate)
	for _, evt := range ecs.Filter(events, noteworthy...) {
		g.lastMessage = fmt.Sprintf("%.1fs %s %v", evt.Time, evt.Type, evt.Data)
	}
	return nil
}

func (g *Game) restart(difficulty string) {
	if err := g.arena.SetDifficulty(difficulty); err != nil {
		g.log.Error("restart failed", "difficulty", difficulty, "err", err)
		g.lastMessage = "restart failed: " + difficulty
		return
	}
	g.paused = false
	g.lastMessage = "restarted on " + difficulty
}

func (g *Game) summary() string {
	a := g.arena
	s := a.Stats
	return fmt.Sprintf("arena=%s difficulty=%s t=%.1fs waves=%d spawned=%d kills=%d heals=%d buffs=%d abilities=%d hero_deaths=%d",
		a.Spec.Name, a.Difficulty.Name, a.Director.Elapsed, s.Waves, s.Spawned, s.Kills, s.Heals, s.Buffs, s.Abilities, s.HeroDeaths)
}

func (g *Game) copySummary() {
	if !g.clipboard {
		g.lastMessage = "clipboard unavailable"
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.summary()))
	g.lastMessage = "summary copied"
}

func (g *Game) handleSupportKeys() {
	var requests []component.SupportRequest
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		requests = append(requests, component.SupportRequest{Action: component.ActionHealStart})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		requests = append(requests, component.SupportRequest{Action: component.ActionHealStop})
	}
	for key, effect := range buffKeys {
		if inpututil.IsKeyJustPressed(key) {
			requests = append(requests, component.SupportRequest{Action: component.ActionBuff, Effect: effect})
		}
	}
	for key, ability := range abilityKeys {
		if inpututil.IsKeyJustPressed(key) {
			requests = append(requests, component.SupportRequest{Action: component.ActionAbility, Ability: ability})
		}
	}
	for _, r := range requests {
		if err := g.arena.Request(r); err != nil {
			g.log.Warn("support request dropped", "err", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	camEntity, ok := ecs.First(g.arena.World, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(g.arena.World, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	v := newView(cam)

	b := g.arena.Spec.Bounds.Rect()
	lo, hi := v.toScreen(b.Min()), v.toScreen(b.Max())
	vector.StrokeRect(screen, lo.x, lo.y, hi.x-lo.x, hi.y-lo.y, 2, boundsColor, false)

	for _, r := range g.arena.Spec.Obstacles {
		rect := r.Rect()
		lo, hi := v.toScreen(rect.Min()), v.toScreen(rect.Max())
		vector.DrawFilledRect(screen, lo.x, lo.y, hi.x-lo.x, hi.y-lo.y, obstacleColor, false)
	}
	for _, ws := range g.arena.Spec.Walls {
		a := v.toScreen(cp.Vector{X: ws.A.X, Y: ws.A.Y})
		b := v.toScreen(cp.Vector{X: ws.B.X, Y: ws.B.Y})
		width := float32(ws.Radius*v.scale) * 2
		vector.StrokeLine(screen, a.x, a.y, b.x, b.y, max32(width, 2), wallColor, true)
	}

	w := g.arena.World
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TagsComponent.Kind(), func(e ecs.Entity, t *component.Transform, tags *component.Tags) {
		radius := 0.2
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			radius = body.Radius
		}
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			radius = p.Radius
		}
		p := v.toScreen(t.Position)
		r := float32(radius * v.scale)

		switch {
		case tags.Mask&combat.TagHero != 0:
			vector.DrawFilledCircle(screen, p.x, p.y, r, heroColor, true)
			if g.debug {
				g.drawDetection(screen, v, e, p)
			}
		case tags.Mask&combat.TagPlayer != 0:
			vector.StrokeCircle(screen, p.x, p.y, r, 2, playerColor, true)
		case tags.Mask&combat.TagEnemy != 0:
			vector.DrawFilledCircle(screen, p.x, p.y, r, enemyColor, true)
		case tags.Mask&combat.TagProjectile != 0:
			vector.DrawFilledCircle(screen, p.x, p.y, max32(r, 2), projectileColor, true)
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && tags.Mask&(combat.TagHero|combat.TagEnemy) != 0 {
			drawHealth(screen, p, r, h)
		}
	})

	g.drawHUD(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawDetection(screen *ebiten.Image, v view, e ecs.Entity, p point) {
	det, ok := ecs.Get(g.arena.World, e, component.DetectionComponent.Kind())
	if !ok {
		return
	}
	vector.StrokeCircle(screen, p.x, p.y, float32(det.Radius*v.scale), 1, colornames.Darkolivegreen, true)
	target := det.Targets.Current()
	if target == 0 {
		return
	}
	if t, ok := ecs.Get(g.arena.World, ecs.Entity(target), component.TransformComponent.Kind()); ok {
		q := v.toScreen(t.Position)
		vector.StrokeLine(screen, p.x, p.y, q.x, q.y, 1, colornames.Lightgrey, true)
	}
}

func drawHealth(screen *ebiten.Image, p point, r float32, h *combat.Health) {
	if h.Max <= 0 {
		return
	}
	width := max32(r*2, 12)
	x, y := p.x-width/2, p.y-r-6
	vector.DrawFilledRect(screen, x, y, width, 3, colornames.Darkred, false)
	vector.DrawFilledRect(screen, x, y, width*float32(h.Current)/float32(h.Max), 3, colornames.Limegreen, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	a := g.arena
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.1f  t=%.1fs  difficulty=%s\n", ebiten.ActualFPS(), a.Director.Elapsed, a.Difficulty.Name)
	fmt.Fprintf(&sb, "alive=%d  waves=%d  spawned=%d  kills=%d\n", a.Director.CurrentAlive(), a.Stats.Waves, a.Stats.Spawned, a.Stats.Kills)

	if hero, ok := ecs.Get(a.World, a.Hero, component.HeroComponent.Kind()); ok {
		hp := "?"
		if h, ok := ecs.Get(a.World, a.Hero, component.HealthComponent.Kind()); ok {
			hp = fmt.Sprintf("%d/%d", h.Current, h.Max)
		}
		fmt.Fprintf(&sb, "hero %s hp=%s next=%s\n", hero.State, hp, hero.NextAttack)
	}
	if p, ok := ecs.Get(a.World, a.Player, component.PlayerComponent.Kind()); ok {
		if p.HealBar.Active {
			fmt.Fprintf(&sb, "heal bar %.2f\n", p.HealBar.Position)
		}
		if p.Abilities != nil {
			fmt.Fprintf(&sb, "abilities %v\n", p.Abilities.Unlocked())
		}
	}
	if a.World.Paused() {
		sb.WriteString("TIME STOPPED\n")
	}
	if g.lastMessage != "" {
		sb.WriteString(g.lastMessage + "\n")
	}
	sb.WriteString("space heal  1-5 buffs  q-t abilities  backspace reset  f3 debug  esc menu")
	ebitenutil.DebugPrint(screen, sb.String())
}

type point struct{ x, y float32 }

// view maps world units onto the screen around the camera centre.
type view struct {
	center cp.Vector
	scale  float64
}

func newView(cam *component.Camera) view {
	scale := 32.0
	if cam.Width > 0 && cam.Height > 0 {
		scale = min(baseWidth/cam.Width, baseHeight/cam.Height)
	}
	return view{center: cam.Center, scale: scale}
}

func (v view) toScreen(p cp.Vector) point {
	return point{
		x: float32((p.X-v.center.X)*v.scale + baseWidth/2),
		y: float32((p.Y-v.center.Y)*v.scale + baseHeight/2),
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
