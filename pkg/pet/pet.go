// Package pet implements the companion engine: stat bounds and decay,
// leveling, sleep gating, and the death condition. All mutation goes through
// the action methods and Tick; a dead companion is terminal and read-only.
package pet

import (
	"fmt"
	"math/rand/v2"
)

// historyCap is the maximum number of retained history entries. Oldest
// entries are evicted first.
const historyCap = 50

// Stat clamp bounds for hunger, happiness, and energy.
const (
	statMin = 0
	statMax = 100
)

// Tunables for the care actions and the time step.
const (
	feedHungerDrop   = 30
	feedEnergyGain   = 5
	feedXP           = 10
	playHappinessUp  = 25
	playEnergyCost   = 15
	playHungerCost   = 10
	playXP           = 15
	wakeEnergyGain   = 40
	wakeHungerCost   = 20
	minPlayEnergy    = 20
	awakeDecay       = 2
	asleepDecay      = 0.5
	levelTraitBoost  = 5
	startingXPToNext = 100
)

// Picker selects an index in [0, n). It is injected so message selection is
// deterministic under test.
type Picker func(n int) int

// Inventory tracks the consumable items a companion owns.
type Inventory struct {
	Food   int `json:"food"`
	Treats int `json:"treats"`
	Toys   int `json:"toys"`
}

// Result is the outcome of a care action: whether it took effect, and a
// human-readable message either way. Expected failures (sleeping, no food,
// too tired) are results, not errors.
type Result struct {
	OK      bool
	Message string
}

// Pet is a companion's full mutable state.
//
// Hunger, Happiness, and Energy are clamped to [0,100] after every mutation.
// They are floats because the sleeping decay rate is fractional. The four
// trait stats grow without an upper bound.
type Pet struct {
	Name     string
	Kind     Kind
	Level    int
	XP       int
	XPToNext int

	Hunger    float64
	Happiness float64
	Energy    float64

	Strength     float64
	Intelligence float64
	Charisma     float64
	Speed        float64

	Inventory Inventory
	History   []string

	AgeTicks int
	Sleeping bool
	Alive    bool

	pick Picker
}

// Option configures a Pet at construction.
type Option func(*Pet)

// WithPicker replaces the message picker. Tests use this to pin the
// selected message.
func WithPicker(p Picker) Option {
	return func(pt *Pet) { pt.pick = p }
}

// WithRand seeds a deterministic picker from two uint64 seeds.
func WithRand(seed1, seed2 uint64) Option {
	return func(pt *Pet) {
		r := rand.New(rand.NewPCG(seed1, seed2))
		pt.pick = func(n int) int { return r.IntN(n) }
	}
}

// New creates a companion of the given kind with full constructor defaults.
// An empty name falls back to the kind's display name; an unknown kind falls
// back to crunch.
func New(name string, kind Kind, opts ...Option) *Pet {
	traits := Traits(kind)
	if !Known(kind) {
		kind = KindCrunch
	}
	if name == "" {
		name = DisplayName(kind)
	}

	p := &Pet{
		Name:         name,
		Kind:         kind,
		Level:        1,
		XP:           0,
		XPToNext:     startingXPToNext,
		Hunger:       50,
		Happiness:    50,
		Energy:       50,
		Strength:     traits.Strength,
		Intelligence: traits.Intelligence,
		Charisma:     traits.Charisma,
		Speed:        traits.Speed,
		Inventory:    Inventory{Food: 3, Treats: 1, Toys: 1},
		Alive:        true,
		pick:         defaultPicker,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.log(fmt.Sprintf("%s the %s was born!", p.Name, DisplayName(p.Kind)))
	return p
}

// defaultPicker is the production message picker.
func defaultPicker(n int) int { return rand.IntN(n) }

// Feed consumes one food item, reduces hunger, and grants XP. It fails
// without state change while sleeping, when the food supply is empty, or
// after death.
func (p *Pet) Feed() Result {
	if !p.Alive {
		return p.gone()
	}
	if p.Sleeping {
		return p.asleep()
	}
	if p.Inventory.Food == 0 {
		return Result{OK: false, Message: "No food left! Time to forage..."}
	}

	p.Inventory.Food--
	p.Hunger = clamp(p.Hunger - feedHungerDrop)
	p.Energy = clamp(p.Energy + feedEnergyGain)
	p.GrantXP(feedXP)
	p.log(fmt.Sprintf("Fed %s", p.Name))

	return Result{OK: true, Message: p.choose(feedMessages(p.Name))}
}

// Play boosts happiness at the cost of energy and hunger, grants XP, and
// grows charisma and speed. It fails without state change while sleeping,
// when energy is below the play threshold, or after death.
func (p *Pet) Play() Result {
	if !p.Alive {
		return p.gone()
	}
	if p.Sleeping {
		return p.asleep()
	}
	if p.Energy < minPlayEnergy {
		return Result{OK: false, Message: fmt.Sprintf("%s is too tired to play...", p.Name)}
	}

	p.Happiness = clamp(p.Happiness + playHappinessUp)
	p.Energy = clamp(p.Energy - playEnergyCost)
	p.Hunger = clamp(p.Hunger + playHungerCost)
	p.GrantXP(playXP)
	p.Charisma += 0.5
	p.Speed += 0.3
	p.log(fmt.Sprintf("Played with %s", p.Name))

	return Result{OK: true, Message: p.choose(playMessages(p.Name))}
}

// ToggleSleep puts an awake companion to sleep with no stat change, or wakes
// a sleeping one with the wake-up energy and hunger adjustments.
func (p *Pet) ToggleSleep() Result {
	if !p.Alive {
		return p.gone()
	}

	if p.Sleeping {
		p.Sleeping = false
		p.Energy = clamp(p.Energy + wakeEnergyGain)
		p.Hunger = clamp(p.Hunger + wakeHungerCost)
		return Result{OK: true, Message: fmt.Sprintf("%s wakes up refreshed!", p.Name)}
	}

	p.Sleeping = true
	return Result{OK: true, Message: fmt.Sprintf("%s curls up and falls asleep...", p.Name)}
}

// Rename changes the companion's name and logs the change. Empty names are
// rejected.
func (p *Pet) Rename(newName string) Result {
	if newName == "" {
		return Result{OK: false, Message: "A name can't be empty."}
	}

	old := p.Name
	p.Name = newName
	p.log(fmt.Sprintf("%s was renamed to %s", old, newName))
	return Result{OK: true, Message: fmt.Sprintf("%s is now called %s!", old, newName)}
}

// Tick applies one discrete time step: age advances, hunger and happiness
// decay (slower while sleeping), energy recovers while sleeping and drains
// while awake, and the death condition is checked. A dead companion is
// unaffected.
func (p *Pet) Tick() {
	if !p.Alive {
		return
	}

	p.AgeTicks++

	decay := float64(awakeDecay)
	if p.Sleeping {
		decay = asleepDecay
	}
	p.Hunger = clamp(p.Hunger + decay)
	p.Happiness = clamp(p.Happiness - decay*0.5)

	if p.Sleeping {
		p.Energy = clamp(p.Energy + 5)
	} else {
		p.Energy = clamp(p.Energy - 1)
	}

	if p.Hunger >= statMax || p.Happiness <= statMin {
		p.Alive = false
	}
}

// GrantXP adds experience and applies level-ups until the remaining XP is
// below the next threshold, so a single large grant can cross several
// levels. Each level-up raises the threshold by half and boosts all four
// traits.
func (p *Pet) GrantXP(amount int) {
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = p.XPToNext * 3 / 2
		p.Strength += levelTraitBoost
		p.Intelligence += levelTraitBoost
		p.Charisma += levelTraitBoost
		p.Speed += levelTraitBoost
	}
}

// Stage returns the display stage derived from the current level.
func (p *Pet) Stage() string {
	switch p.Level {
	case 1:
		return "egg"
	case 2:
		return "baby"
	case 3:
		return "child"
	case 4:
		return "teen"
	default:
		return "adult"
	}
}

// choose picks one message from the pool via the injected picker.
func (p *Pet) choose(pool []string) string {
	return pool[p.pick(len(pool))]
}

// log appends a history entry, evicting the oldest beyond the cap.
func (p *Pet) log(event string) {
	p.History = append(p.History, event)
	if len(p.History) > historyCap {
		p.History = p.History[len(p.History)-historyCap:]
	}
}

func (p *Pet) asleep() Result {
	return Result{OK: false, Message: fmt.Sprintf("Zzz... %s is sleeping!", p.Name)}
}

func (p *Pet) gone() Result {
	return Result{OK: false, Message: fmt.Sprintf("%s has passed away...", p.Name)}
}

func clamp(v float64) float64 {
	if v < statMin {
		return statMin
	}
	if v > statMax {
		return statMax
	}
	return v
}
