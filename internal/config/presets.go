package config

import (
	"math"
	"sort"

	"github.com/san-kum/forcelab/internal/force"
)

var Presets = map[string]map[string]CurveConfig{
	"float": {
		"sv3": {
			Params: map[string]float64{"mass": 155, "area": 0.19},
		},
		"payload": {
			Params: map[string]float64{"mass": 185, "area": 0.19},
		},
		"near_surface": {
			Domain: &force.Domain{Start: 0, Stop: 2, Samples: 200},
		},
	},
	"umbilical": {
		"survey": {
			Domain: &force.Domain{Start: 0, Stop: 3, Samples: 60},
		},
		"short": {
			Params: map[string]float64{"length": 5, "mass": 25},
		},
	},
	"body_ecomapper": {
		"short": {
			Params: map[string]float64{"length": 1.524},
		},
		"long": {
			Params: map[string]float64{"length": 2.159},
		},
	},
	"cable_drag": {
		"thick": {
			Params: map[string]float64{"radius": 0.015, "mass": 0.08},
		},
	},
	"fin": {
		"radians": {
			Params: map[string]float64{"angle_degrees": 0},
		},
		"degrees": {
			Params: map[string]float64{"angle_degrees": 1},
		},
		"exact_pi": {
			Params: map[string]float64{"pi": math.Pi, "angle_degrees": 1},
		},
	},
}

func GetPreset(curve, preset string) *CurveConfig {
	curvePresets, ok := Presets[curve]
	if !ok {
		return nil
	}
	cfg, ok := curvePresets[preset]
	if !ok {
		return nil
	}
	return &cfg
}

func ListPresets(curve string) []string {
	curvePresets, ok := Presets[curve]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(curvePresets))
	for name := range curvePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
