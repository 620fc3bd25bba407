package config

var Presets = map[string]*Config{
	"electrons": {
		Population: 10, Width: 0.1, Height: 0.08, Dt: 5e-7,
		Charge: -1.602e-19, Mass: 9.1093837e-31, K: 8.99e9,
		V0: 1e3, MinDist: 1e-12, Substeps: 10, Frames: 300,
	},
	"crowded": {
		Population: 50, Width: 0.1, Height: 0.08, Dt: 5e-7,
		Charge: -1.602e-19, Mass: 9.1093837e-31, K: 8.99e9,
		V0: 1e3, MinDist: 1e-12, Substeps: 10, Frames: 300,
	},
	"cold": {
		Population: 20, Width: 0.1, Height: 0.08, Dt: 5e-7,
		Charge: -1.602e-19, Mass: 9.1093837e-31, K: 8.99e9,
		V0: 0, MinDist: 1e-12, Substeps: 10, Frames: 600,
	},
	"protons": {
		Population: 10, Width: 0.1, Height: 0.08, Dt: 5e-7,
		Charge: 1.602e-19, Mass: 1.67262192e-27, K: 8.99e9,
		V0: 20, MinDist: 1e-12, Substeps: 10, Frames: 300,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
