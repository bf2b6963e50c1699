package game

// Team distinguishes the two sides of a match. The player's base sits at the
// left edge of the lane, the enemy's at the right, so player units always
// advance in +x and enemy units in -x.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	return 1 - t
}

// direction is the sign of forward travel along the lane for this team.
func (t Team) direction() float64 {
	if t == TeamPlayer {
		return 1
	}
	return -1
}

// UnitType selects one of the two fixed stat archetypes.
type UnitType int

const (
	UnitMelee UnitType = iota
	UnitRanged
)

func (ut UnitType) String() string {
	if ut == UnitMelee {
		return "melee"
	}
	return "ranged"
}

// Order is the player-broadcast behaviour directive. Orders are carried on
// every unit and reported in snapshots; the current movement policy does not
// branch on them yet — they exist so a future policy extension has somewhere
// to hang.
type Order int

const (
	OrderAttack Order = iota
	OrderAdvance
	OrderRetreat
	OrderMoveToFlag
)

func (o Order) String() string {
	switch o {
	case OrderAttack:
		return "attack"
	case OrderAdvance:
		return "advance"
	case OrderRetreat:
		return "retreat"
	case OrderMoveToFlag:
		return "moveToFlag"
	default:
		return "unknown"
	}
}

// Point is a 2D lane coordinate.
type Point struct {
	X float64
	Y float64
}

// Unit is a single combatant on the lane. Only x ever changes once spawned;
// y is fixed at spawn height. All combat stats are copied from the tuning
// table at creation and never change.
type Unit struct {
	id   int
	typ  UnitType
	team Team

	x, y  float64
	size  float64 // collision/visual width
	speed float64 // px per second

	hp, maxHP      float64
	dmg            float64
	attackRange    float64
	attackCooldown float64 // seconds between attacks
	attackTimer    float64 // seconds since last attack, reset on attack

	order      Order
	flagTarget *Point // set only under OrderMoveToFlag

	alive bool

	// Reserved targeting-filter metadata. Carried through creation and
	// snapshots but not consulted by target acquisition yet; a future
	// filter chain slots in here.
	category     string
	distancePref string
	effectPref   string
}

// IDSource hands out process-lifetime-unique unit ids. It is owned by the
// engine and injectable so tests can assert on exact ids.
type IDSource struct {
	next int
}

// NewIDSource creates an id source starting at first.
func NewIDSource(first int) *IDSource {
	return &IDSource{next: first}
}

// Next returns a fresh id.
func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}

// newUnit builds a fully-initialised unit of the given archetype at (x,y).
// Stats come from the tuning table; the only side effect is consuming an id.
func newUnit(ids *IDSource, tuning *Tuning, typ UnitType, x, y float64, team Team) *Unit {
	st := tuning.Stats(typ)
	return &Unit{
		id:             ids.Next(),
		typ:            typ,
		team:           team,
		x:              x,
		y:              y,
		size:           st.Size,
		speed:          st.Speed,
		hp:             st.HP,
		maxHP:          st.HP,
		dmg:            st.Damage,
		attackRange:    st.Range,
		attackCooldown: st.AttackCooldown,
		order:          OrderAttack,
		alive:          true,
		category:       st.Category,
	}
}

// stepUnit advances a living unit along the lane by speed*delta in its team's
// direction and accrues attack readiness. It is pure with respect to shared
// state: it touches only the unit it is given. Whether it runs at all on a
// given tick is decided by the movement resolver.
func stepUnit(u *Unit, delta float64) {
	if !u.alive {
		return
	}
	u.x += u.speed * delta * u.team.direction()
	u.attackTimer += delta
}
