package entity

const (
	KindHuman    = "human"
	KindComputer = "computer"
)

type Player struct {
	Mark Cell   `json:"mark"`
	Kind string `json:"kind"`
}

func (that *Player) IsComputer() bool {
	return that.Kind == KindComputer
}
