package config

var Presets = map[string]map[string]*Config{
	"trig": {
		"unit": {
			Field: "trig", Quantity: "laplacian", Nx: 64, Ny: 64,
			Domain: DomainConfig{X0: 0, X1: 1, Y0: 0, Y1: 1},
		},
		"coarse": {
			Field: "trig", Quantity: "laplacian", Nx: 16, Ny: 16,
			Domain: DomainConfig{X0: 0, X1: 1, Y0: 0, Y1: 1},
		},
	},
	"poly": {
		"unit": {
			Field: "poly", Quantity: "gradient", Nx: 32, Ny: 32,
			Domain: DomainConfig{X0: 0, X1: 1, Y0: 0, Y1: 1},
		},
		"wide": {
			Field: "poly", Quantity: "gradient", Nx: 64, Ny: 64,
			Domain: DomainConfig{X0: -2, X1: 2, Y0: -2, Y1: 2},
		},
	},
	"gaussian": {
		"bump": {
			Field: "gaussian", Quantity: "laplacian", Nx: 48, Ny: 48,
			Domain: DomainConfig{X0: -2, X1: 2, Y0: -2, Y1: 2},
		},
	},
	"radial": {
		"unit": {
			Field: "radial", Quantity: "divergence", Nx: 32, Ny: 32,
			Domain: DomainConfig{X0: -1, X1: 1, Y0: -1, Y1: 1},
		},
	},
	"swirl": {
		"unit": {
			Field: "swirl", Quantity: "divergence", Nx: 32, Ny: 32,
			Domain: DomainConfig{X0: -1, X1: 1, Y0: -1, Y1: 1},
		},
	},
	"trig_flow": {
		"wave": {
			Field: "trig_flow", Quantity: "divergence", Nx: 64, Ny: 64,
			Domain: DomainConfig{X0: 0, X1: 3.14159, Y0: 0, Y1: 3.14159},
		},
	},
}

func GetPreset(fieldName, preset string) *Config {
	fieldPresets, ok := Presets[fieldName]
	if !ok {
		return nil
	}
	cfg, ok := fieldPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(fieldName string) []string {
	fieldPresets, ok := Presets[fieldName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fieldPresets))
	for name := range fieldPresets {
		names = append(names, name)
	}
	return names
}
