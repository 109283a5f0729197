package anim

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

var curves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// CurveByName looks up a blend curve by its config name. An empty name is
// linear.
func CurveByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (want one of %v)", name, CurveNames())
	}
	return fn, nil
}

// CurveNames lists the accepted curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
