package route_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	log "github.com/inconshreveable/log15/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/route"
	"github.com/katalvlaran/shortway/scene"
	"github.com/katalvlaran/shortway/waypoint"
)

// collinear is S(0,0) A(1,0) B(2,0) E(3,0).
func collinear() *scene.Scene {
	return &scene.Scene{
		Name: "collinear",
		Waypoints: []scene.WaypointSpec{
			{ID: 0, X: 0, Y: 0, Role: "start"},
			{ID: 1, X: 1, Y: 0},
			{ID: 2, X: 2, Y: 0},
			{ID: 3, X: 3, Y: 0, Role: "end"},
		},
	}
}

// stepping is a chain where only unit steps connect under thresholds (1, 0).
func stepping() *scene.Scene {
	s := collinear()
	s.Name = "stepping"
	s.Thresholds = &scene.Thresholds{X: 1, Y: 0}

	return s
}

type PlannerSuite struct {
	suite.Suite
	bus   *events.Bus
	found []events.PathFound
	logs  bytes.Buffer
	log   log.Logger
}

func (s *PlannerSuite) SetupTest() {
	s.bus = events.NewBus()
	s.found = nil
	s.bus.OnPathFound(func(e events.PathFound) { s.found = append(s.found, e) })
	s.logs.Reset()
	s.log = log.New()
	s.log.SetHandler(log.StreamHandler(&s.logs, log.LogfmtFormat()))
}

func (s *PlannerSuite) TestDirectEdgeWinsTie() {
	p, err := route.NewPlanner(collinear(), route.WithBus(s.bus), route.WithLogger(s.log))
	s.Require().NoError(err)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err)

	s.True(r.Found)
	s.Equal([]waypoint.ID{0, 3}, r.Path)
	s.Equal(3.0, r.Distance)
	s.Equal(1, r.Hops)
	s.Equal(1, r.FewestHops)
	s.Empty(r.Closest)
	s.Equal([]route.Stop{{ID: 0, X: 0, Y: 0}, {ID: 3, X: 3, Y: 0}}, r.Stops)
	s.Equal(0.0, r.Bounds.Min[0])
	s.Equal(3.0, r.Bounds.Max[0])

	s.Require().Len(s.found, 1)
	s.Equal(events.PathFound{Scene: "collinear", Distance: 3, Path: []waypoint.ID{0, 3}}, s.found[0])
	s.Contains(s.logs.String(), "route found")
	s.Contains(s.logs.String(), "module=route")
	s.Contains(s.logs.String(), "module=builder")
}

func (s *PlannerSuite) TestSceneThresholdsApply() {
	p, err := route.NewPlanner(stepping(), route.WithBus(s.bus))
	s.Require().NoError(err)

	x, y := p.Thresholds()
	s.Equal(1.0, x)
	s.Equal(0.0, y)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err)
	s.Equal([]waypoint.ID{0, 1, 2, 3}, r.Path)
	s.Equal(3, r.Hops)
	s.Equal(3, r.FewestHops)
}

func (s *PlannerSuite) TestOptionOverridesScene() {
	p, err := route.NewPlanner(stepping(), route.WithThresholds(3, 3.5))
	s.Require().NoError(err)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err)
	s.Equal([]waypoint.ID{0, 3}, r.Path)
}

func (s *PlannerSuite) TestNoRoute() {
	sc := collinear()
	sc.Waypoints[3].X = 50 // end far away from everything

	p, err := route.NewPlanner(sc, route.WithBus(s.bus), route.WithLogger(s.log))
	s.Require().NoError(err)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err, "a missing route is not an error")
	s.False(r.Found)
	s.NotNil(r.Path)
	s.Empty(r.Path)
	s.Zero(r.Distance)
	s.Equal(3, r.Reachable, "start reaches itself, #1 and #2")
	s.Equal([]waypoint.ID{0, 2}, r.Closest, "#2 is nearest the end and one link away")
	s.Empty(s.found, "nothing published without a route")
	s.Contains(s.logs.String(), "no route")
	s.NotContains(s.logs.String(), "lvl=eror")
}

func (s *PlannerSuite) TestMaxDistance() {
	p, err := route.NewPlanner(stepping(), route.WithMaxDistance(2.5))
	s.Require().NoError(err)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err)
	s.False(r.Found)
	s.Equal(4, r.Reachable)
	s.Equal([]waypoint.ID{0, 1, 2, 3}, r.Closest, "the end is connected, just too far")
}

func (s *PlannerSuite) TestMaxLinkSharedBySearchAndReach() {
	p, err := route.NewPlanner(collinear(), route.WithMaxLink(1.5))
	s.Require().NoError(err)

	r, err := p.Plan(context.Background())
	s.Require().NoError(err)
	s.Equal([]waypoint.ID{0, 1, 2, 3}, r.Path, "only unit links remain")
	s.Equal(3, r.FewestHops)

	p, err = route.NewPlanner(collinear(), route.WithMaxLink(1))
	s.Require().NoError(err)

	r, err = p.Plan(context.Background())
	s.Require().NoError(err)
	s.False(r.Found)
	s.Equal(1, r.Reachable, "a link of exactly the limit is impassable")
	s.Equal([]waypoint.ID{0}, r.Closest)
}

func (s *PlannerSuite) TestCancelledContext() {
	p, err := route.NewPlanner(collinear())
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Plan(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *PlannerSuite) TestTravelerCompletesRoute() {
	var done []events.TraversalComplete
	s.bus.OnTraversalComplete(func(e events.TraversalComplete) { done = append(done, e) })

	p, err := route.NewPlanner(stepping(), route.WithBus(s.bus))
	s.Require().NoError(err)
	r, err := p.Plan(context.Background())
	s.Require().NoError(err)

	tr := p.Traveler(r)
	for _, id := range r.Path {
		s.True(tr.Arrive(id))
	}
	s.True(tr.Done())
	s.Require().Len(done, 1)
	s.Equal("stepping", done[0].Scene)
	s.Equal(r.Path, done[0].Visited)
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

func TestNewPlanner_Errors(t *testing.T) {
	_, err := route.NewPlanner(nil)
	assert.ErrorIs(t, err, route.ErrNilScene)

	bad := collinear()
	bad.Waypoints[3].Role = ""
	_, err = route.NewPlanner(bad)
	assert.ErrorIs(t, err, scene.ErrNoEnd)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { route.WithThresholds(-1, 0) })
	assert.Panics(t, func() { route.WithMaxDistance(-1) })
	assert.Panics(t, func() { route.WithLogger(nil) })
	assert.Panics(t, func() { route.WithMaxLink(0) })
}

func TestRoute_JSON(t *testing.T) {
	p, err := route.NewPlanner(collinear())
	require.NoError(t, err)
	r, err := p.Plan(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "collinear", back["scene"])
	assert.Equal(t, true, back["found"])
	assert.Equal(t, []any{0.0, 3.0}, back["path"])
	assert.Equal(t, 3.0, back["distance"])
	assert.NotContains(t, back, "reachable")
	assert.Equal(t, 1.0, back["fewest_hops"])
}

func TestRoute_JSONWithoutRoute(t *testing.T) {
	sc := collinear()
	sc.Waypoints[3].X = 50
	p, err := route.NewPlanner(sc)
	require.NoError(t, err)
	r, err := p.Plan(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":[]`)
	assert.Contains(t, string(data), `"closest":[0,2]`)
	assert.NotContains(t, string(data), "null")
}
