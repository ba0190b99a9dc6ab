package city

import (
	"strconv"

	"city-ca/internal/core"
)

// Parameters reports the world settings grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("noise_scale", "Noise scale", params.NoiseScale),
				floatParam("resource_threshold", "Resource threshold", params.ResourceThreshold),
			},
		},
		{
			Name: "Update",
			Params: []core.Parameter{
				intParam("radius", "Update radius", params.Radius),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD. Terrain
// settings apply on the next reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Update radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxRadius, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "resource_threshold", Label: "Resource threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting. It reports whether key is known.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		w.cfg.Params.Radius = clampRadius(value)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point setting. It reports whether key
// is known.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "noise_scale":
		if value < 1 {
			value = 1
		}
		w.cfg.Params.NoiseScale = value
		return true
	case "resource_threshold":
		w.cfg.Params.ResourceThreshold = clampUnit(value)
		return true
	}
	return false
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
