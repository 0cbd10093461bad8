package bad

//approx:generate
type Celsius float64

//approx:generate
type Window struct {
	Width float64
}

//approx:generate
type Banner struct {
	Area Window `approx:"cast_field"`
}

//approx:generate
type Poster struct {
	Size Window `approx:"cast_value"`
}

//approx:generate
type Ruler struct {
	Length float64 `approx:"epsilon_map:stretch"`
}

func stretch(epsilon float32) float64 {
	return float64(epsilon)
}
