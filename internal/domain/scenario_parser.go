// Package domain contains the parsing, figure building and inspection logic
// behind the visualize commands.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/visualize/internal/model"
)

const (
	// scenarioHeaderLen counts width, height, four endpoints and the radius.
	scenarioHeaderLen = 11
	obstacleFields    = 4
)

// ParseScenario decodes a whitespace-delimited scenario file:
//
//	W H sx1 sy1 gx1 gy1 sx2 sy2 gx2 gy2 R [x y w h]*
//
// A trailing obstacle group with fewer than four numbers is dropped. Values
// are not range checked.
func ParseScenario(src m.Source) (m.Scenario, error) {
	nums, err := parseFloats(strings.Fields(string(src.Data)))
	if err != nil {
		return m.Scenario{}, &m.FormatError{Unit: "scenario file", Reason: err.Error()}
	}

	if len(nums) < scenarioHeaderLen {
		return m.Scenario{}, &m.FormatError{
			Unit:   "scenario file",
			Reason: fmt.Sprintf("need at least %d numbers, got %d", scenarioHeaderLen, len(nums)),
		}
	}

	scn := m.Scenario{
		Width:  nums[0],
		Height: nums[1],
		Start1: m.Point{X: nums[2], Y: nums[3]},
		Goal1:  m.Point{X: nums[4], Y: nums[5]},
		Start2: m.Point{X: nums[6], Y: nums[7]},
		Goal2:  m.Point{X: nums[8], Y: nums[9]},
		Radius: nums[10],
	}

	obs := nums[scenarioHeaderLen:]
	scn.Obstacles = make([]m.Obstacle, 0, len(obs)/obstacleFields)

	for i := 0; i+obstacleFields <= len(obs); i += obstacleFields {
		scn.Obstacles = append(scn.Obstacles, m.Obstacle{
			Corner: m.Point{X: obs[i], Y: obs[i+1]},
			Width:  obs[i+2],
			Height: obs[i+3],
		})
	}

	return scn, nil
}

func parseFloats(tokens []string) ([]float64, error) {
	nums := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", tok)
		}

		nums = append(nums, v)
	}

	return nums, nil
}
