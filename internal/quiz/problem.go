package quiz

import "fmt"

// Problem is a single arithmetic card served by the quiz service.
type Problem struct {
	A        int    `json:"a"`
	B        int    `json:"b"`
	Operator string `json:"operator"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Operator, p.B)
}
