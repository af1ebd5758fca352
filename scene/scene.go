package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortway/waypoint"
)

// Sentinel errors for scene validation.
var (
	ErrNoWaypoints   = errors.New("scene: no waypoints")
	ErrNoStart       = errors.New("scene: no start waypoint")
	ErrNoEnd         = errors.New("scene: no end waypoint")
	ErrMultipleStart = errors.New("scene: more than one start waypoint")
	ErrMultipleEnd   = errors.New("scene: more than one end waypoint")
	ErrBadThresholds = errors.New("scene: thresholds must be finite and >= 0")
)

// Thresholds are the per-axis proximity limits.
type Thresholds struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WaypointSpec is one waypoint as written in the file.
type WaypointSpec struct {
	ID   int     `yaml:"id"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Role string  `yaml:"role,omitempty"`
}

// Scene is a parsed scene file. Thresholds is nil when the file leaves them
// to the caller's defaults.
type Scene struct {
	Name       string         `yaml:"name"`
	Thresholds *Thresholds    `yaml:"thresholds,omitempty"`
	Waypoints  []WaypointSpec `yaml:"waypoints"`
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Marshal encodes s as YAML.
func Marshal(s *Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Save validates s and writes it to path.
func Save(path string, s *Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: save %s: %w", path, err)
	}

	return nil
}

// Validate checks roles, IDs, coordinates and thresholds.
func (s *Scene) Validate() error {
	if len(s.Waypoints) == 0 {
		return ErrNoWaypoints
	}
	if t := s.Thresholds; t != nil && (!validThreshold(t.X) || !validThreshold(t.Y)) {
		return fmt.Errorf("%w: x=%g y=%g", ErrBadThresholds, t.X, t.Y)
	}
	if _, err := waypoint.NewIndex(s.Points()); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	_, _, err := s.Endpoints()

	return err
}

// Points returns every waypoint in file order.
func (s *Scene) Points() []waypoint.Point {
	pts := make([]waypoint.Point, len(s.Waypoints))
	for i, w := range s.Waypoints {
		pts[i] = waypoint.New(waypoint.ID(w.ID), w.X, w.Y)
	}

	return pts
}

// Endpoints returns the IDs of the single start and the single end waypoint.
func (s *Scene) Endpoints() (start, end waypoint.ID, err error) {
	var starts, ends int
	for _, w := range s.Waypoints {
		role, rerr := waypoint.ParseRole(w.Role)
		if rerr != nil {
			return 0, 0, fmt.Errorf("scene: waypoint %d: %w", w.ID, rerr)
		}
		switch role {
		case waypoint.Start:
			start = waypoint.ID(w.ID)
			starts++
		case waypoint.End:
			end = waypoint.ID(w.ID)
			ends++
		}
	}
	switch {
	case starts == 0:
		return 0, 0, ErrNoStart
	case starts > 1:
		return 0, 0, fmt.Errorf("%w: %d", ErrMultipleStart, starts)
	case ends == 0:
		return 0, 0, ErrNoEnd
	case ends > 1:
		return 0, 0, fmt.Errorf("%w: %d", ErrMultipleEnd, ends)
	}

	return start, end, nil
}

// Lookup returns the waypoint with the given ID.
func (s *Scene) Lookup(id waypoint.ID) (waypoint.Point, bool) {
	for _, w := range s.Waypoints {
		if waypoint.ID(w.ID) == id {
			return waypoint.New(id, w.X, w.Y), true
		}
	}

	return waypoint.Point{}, false
}

func validThreshold(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
