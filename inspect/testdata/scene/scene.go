package scene

//approx:generate
type Vec struct {
	X float64
	Y float64
}

//approx:generate epsilon_type=float32 default_epsilon=0.01
type Sprite struct {
	Scale   float32
	Frame   int32  `approx:"-"`
	Name    string `approx:"equal"`
	Anchors []Vec  `approx:"iter"`
}

//approx:generate rel=false
type Score struct {
	Points uint64 `approx:"epsilon:5"`
}

//approx:generate
type Node struct {
	Vec
	Weight float64 `approx:"max_relative_map:halveRel"`
}

func halveRel(maxRelative float64) float64 {
	return maxRelative / 2
}
