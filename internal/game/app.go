package game

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the lane.
const borderWidth = 24

const (
	arenaWidth  = 900
	arenaHeight = 400
)

// App is the ebiten shell around the engine. It is a pure snapshot consumer:
// every frame it drives Update, reads one Snapshot and draws it. It never
// touches live engine state.
type App struct {
	engine    *Engine
	battleLog *BattleLog

	width  int
	height int
	offX   int
	offY   int

	simSpeed float64 // 0 = paused, 0.5, 1, 2, 4
	prevKeys map[ebiten.Key]bool
	prevRMB  bool
}

// NewApp creates the playable app with the default balance.
func NewApp() *App {
	bl := NewBattleLog()
	return &App{
		engine:    New(arenaWidth, arenaHeight, WithEmitter(bl)),
		battleLog: bl,
		width:     borderWidth + arenaWidth + borderWidth + logPanelWidth,
		height:    borderWidth + arenaHeight + borderWidth,
		offX:      borderWidth,
		offY:      borderWidth,
		simSpeed:  1.0,
		prevKeys:  make(map[ebiten.Key]bool),
	}
}

// keyPressed is edge-triggered: true only on the frame the key went down.
func (a *App) keyPressed(k ebiten.Key) bool {
	now := ebiten.IsKeyPressed(k)
	was := a.prevKeys[k]
	a.prevKeys[k] = now
	return now && !was
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	// Spawn commands. Denials are normal outcomes; the engine logs them.
	if a.keyPressed(ebiten.Key1) {
		a.engine.SpawnUnit(TeamPlayer, UnitMelee)
	}
	if a.keyPressed(ebiten.Key2) {
		a.engine.SpawnUnit(TeamPlayer, UnitRanged)
	}

	// Order broadcast.
	if a.keyPressed(ebiten.KeyA) {
		a.engine.SetPlayerOrder(OrderAttack)
	}
	if a.keyPressed(ebiten.KeyD) {
		a.engine.SetPlayerOrder(OrderAdvance)
	}
	if a.keyPressed(ebiten.KeyR) {
		a.engine.SetPlayerOrder(OrderRetreat)
	}

	// Right click drops the flag at the cursor (lane coordinates).
	rmb := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if rmb && !a.prevRMB {
		mx, my := ebiten.CursorPosition()
		fx := float64(mx - a.offX)
		fy := float64(my - a.offY)
		if fx >= 0 && fx <= arenaWidth && fy >= 0 && fy <= arenaHeight {
			a.engine.PlaceFlag(fx, fy)
		}
	}
	a.prevRMB = rmb

	// Sim speed control.
	if a.keyPressed(ebiten.KeyP) {
		if a.simSpeed == 0 {
			a.simSpeed = 1.0
		} else {
			a.simSpeed = 0
		}
	}
	if a.keyPressed(ebiten.KeyEqual) && a.simSpeed < 4.0 {
		a.simSpeed *= 2
		if a.simSpeed == 0 {
			a.simSpeed = 0.5
		}
	}
	if a.keyPressed(ebiten.KeyMinus) && a.simSpeed > 0.5 {
		a.simSpeed /= 2
	}

	// Copy a debug report to the clipboard.
	if a.keyPressed(ebiten.KeyC) {
		report := BuildDebugReport(a.engine.Snapshot(), a.battleLog.Recent())
		_ = clipboard.WriteAll(report) // best effort; report is diagnostic only
	}

	if a.simSpeed > 0 {
		dt := a.simSpeed / float64(ebiten.TPS())
		a.battleLog.SetTime(a.engine.Time() + dt)
		a.engine.Update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 28, G: 36, B: 28, A: 255})

	snap := a.engine.Snapshot()
	ox, oy := float32(a.offX), float32(a.offY)

	// Lane ground and border.
	vector.FillRect(screen, ox, oy, arenaWidth, arenaHeight, color.RGBA{R: 44, G: 58, B: 40, A: 255}, false)
	vector.StrokeRect(screen, ox, oy, arenaWidth, arenaHeight, 1.0, color.RGBA{R: 90, G: 110, B: 90, A: 255}, false)

	for _, tw := range snap.Towers {
		a.drawTower(screen, tw)
	}
	for _, u := range snap.Units {
		a.drawUnit(screen, u)
	}
	if snap.Flag != nil {
		fx := ox + float32(snap.Flag.X)
		fy := oy + float32(snap.Flag.Y)
		vector.StrokeLine(screen, fx, fy, fx, fy-18, 1.5, color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)
		vector.FillRect(screen, fx, fy-18, 10, 6, color.RGBA{R: 240, G: 200, B: 60, A: 255}, false)
	}

	a.drawHUD(screen, snap)
	a.battleLog.Draw(screen, a.offX+arenaWidth+borderWidth, a.height)

	if snap.GameOver != nil {
		banner := fmt.Sprintf("%s WINS", snap.GameOver.Winner)
		text.Draw(screen, banner, basicfont.Face7x13,
			a.offX+arenaWidth/2-len(banner)*7/2, a.offY+arenaHeight/2,
			color.RGBA{R: 255, G: 220, B: 120, A: 255})
	}
}

func (a *App) drawTower(screen *ebiten.Image, tw TowerSnapshot) {
	const towerW, towerH = 26, 64
	x := float32(a.offX) + float32(tw.X) - towerW/2
	y := float32(a.offY) + float32(tw.Y) - towerH/2

	c := teamColor(tw.Team)
	if tw.HP <= 0 {
		c = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	}
	vector.FillRect(screen, x, y, towerW, towerH, c, false)
	vector.StrokeRect(screen, x, y, towerW, towerH, 1.0, color.RGBA{R: 20, G: 20, B: 20, A: 255}, false)
	a.drawHPBar(screen, x, y-8, towerW, tw.HP, tw.MaxHP)
}

func (a *App) drawUnit(screen *ebiten.Image, u UnitSnapshot) {
	cx := float32(a.offX) + float32(u.X)
	cy := float32(a.offY) + float32(u.Y)
	r := float32(u.Size) / 2

	vector.FillCircle(screen, cx, cy, r, teamColor(u.Team), true)
	if u.Type == UnitRanged {
		// Ranged units get a ring so the archetypes read at a glance.
		vector.StrokeCircle(screen, cx, cy, r+2, 1.0, color.RGBA{R: 255, G: 255, B: 255, A: 170}, true)
	}
	a.drawHPBar(screen, cx-r, cy-r-6, 2*r, u.HP, u.MaxHP)
}

func (a *App) drawHPBar(screen *ebiten.Image, x, y, w float32, hp, maxHP float64) {
	vector.FillRect(screen, x, y, w, 3, color.RGBA{R: 30, G: 30, B: 30, A: 220}, false)
	if maxHP <= 0 || hp <= 0 {
		return
	}
	frac := float32(hp / maxHP)
	vector.FillRect(screen, x, y, w*frac, 3, color.RGBA{R: 80, G: 220, B: 80, A: 255}, false)
}

func (a *App) drawHUD(screen *ebiten.Image, snap Snapshot) {
	line1 := fmt.Sprintf("t=%6.1fs  speed=%.1fx  order=%s", snap.Time, a.simSpeed, snap.CurrentOrder)
	line2 := fmt.Sprintf("player: energy=%3.0f  cd melee=%.1f ranged=%.1f  kills=%d",
		snap.Energy[TeamPlayer], snap.Cooldowns[TeamPlayer][UnitMelee], snap.Cooldowns[TeamPlayer][UnitRanged], snap.Kills[TeamPlayer])
	line3 := fmt.Sprintf("enemy:  energy=%3.0f  cd melee=%.1f ranged=%.1f  kills=%d",
		snap.Energy[TeamEnemy], snap.Cooldowns[TeamEnemy][UnitMelee], snap.Cooldowns[TeamEnemy][UnitRanged], snap.Kills[TeamEnemy])
	ebitenutil.DebugPrintAt(screen, line1, a.offX, 2)
	ebitenutil.DebugPrintAt(screen, line2, a.offX+280, 2)
	ebitenutil.DebugPrintAt(screen, line3, a.offX+620, 2)
	ebitenutil.DebugPrintAt(screen, "1/2 spawn  A/D/R orders  RMB flag  P pause  +/- speed  C report",
		a.offX, a.height-18)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func teamColor(t Team) color.RGBA {
	if t == TeamPlayer {
		return color.RGBA{R: 70, G: 110, B: 210, A: 255}
	}
	return color.RGBA{R: 210, G: 70, B: 70, A: 255}
}
