package entity

const (
	HumanKind    = "human"
	ComputerKind = "computer"
)

type Player struct {
	Name   string `json:"name"`
	Mark   Marker `json:"mark"`
	Kind   string `json:"kind"`
	Points int    `json:"points"`
}

func NewHumanPlayer(name string, mark Marker) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Kind: HumanKind,
	}
}

func NewComputerPlayer(mark Marker) *Player {
	return &Player{
		Name: "Computer",
		Mark: mark,
		Kind: ComputerKind,
	}
}

func (that *Player) IsComputer() bool {
	return that.Kind == ComputerKind
}
