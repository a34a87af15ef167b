package music

// Articulation is the performance marking attached to a sound.
type Articulation int

const (
	None Articulation = iota
	Staccato
	Staccatissimo
	Marcato
	Accent
	Tenuto
	Gliscando
)

type performance struct {
	name     string
	velocity int // added to the base velocity
	gate     int // percent of the written duration that sounds
}

var performances = map[Articulation]performance{
	None:          {"none", 0, 90},
	Staccato:      {"staccato", 0, 50},
	Staccatissimo: {"staccatissimo", 0, 25},
	Marcato:       {"marcato", 20, 75},
	Accent:        {"accent", 15, 90},
	Tenuto:        {"tenuto", 5, 100},
	Gliscando:     {"gliscando", 0, 100},
}

func (a Articulation) perf() performance {
	if p, ok := performances[a]; ok {
		return p
	}
	return performances[None]
}

// VelocityOffset is added to the velocity a sound is struck with.
func (a Articulation) VelocityOffset() int { return a.perf().velocity }

// GatePercent is how much of the written duration actually sounds.
func (a Articulation) GatePercent() int { return a.perf().gate }

func (a Articulation) String() string { return a.perf().name }
