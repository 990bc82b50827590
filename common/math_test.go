package common

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestPointConversions(t *testing.T) {
	cases := []struct {
		name string
		p    Point
	}{
		{"origin", Pt(0, 0)},
		{"positive", Pt(12.5, 300)},
		{"negative", Pt(-4, -0.25)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.p, FromVector(c.p.Vector()))
			assert.Equal(t, cp.Vector{X: c.p.X, Y: c.p.Y}, c.p.Vector())
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, Pt(4, -3), Add(Pt(1, 2), Pt(3, -5)))
}
