package deltae

import (
	"testing"

	"github.com/jkl1337/go-chromath"
	chromathde "github.com/jkl1337/go-chromath/deltae"
	"github.com/stretchr/testify/assert"
)

// Cross-check the CIEDE2000 implementation against go-chromath as an
// independent oracle. Hue-antipodal pairs sit on the 180 degree mean-hue
// branch boundary, where published formulations differ; every pair here
// stays clear of it.
func TestDE2000AgainstChromath(t *testing.T) {
	pairs := [][2]LabValue{
		{{89.73, 1.88, -6.96}, {95.08, -0.17, -10.81}},
		{{50, 20, 30}, {50.1, 19.9, 30.2}},
		{{50, 20, 30}, {55, 25, 35}},
		{{10, -50, 50}, {90, 50, -40}},
		{{50, 2.6772, -79.7751}, {50, 0, -82.7485}},
		{{2.0776, 0.0795, -1.1350}, {0.9033, -0.0636, -0.5514}},
	}
	for _, p := range pairs {
		got := Delta(p[0], p[1], DE2000).Value()
		want := chromathde.CIE2000(
			chromath.Lab{p[0].L, p[0].A, p[0].B},
			chromath.Lab{p[1].L, p[1].A, p[1].B},
			&chromathde.KLChDefault,
		)
		assert.InDelta(t, want, got, 1e-4, "%v vs %v", p[0], p[1])
	}
}
