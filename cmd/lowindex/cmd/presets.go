package cmd

import "github.com/spf13/viper"

// preset is one named group bundle loadable from --config, grounded on
// original_source's benchmark.py example table (K11n34, K15n12345, the
// modular group, S7): rank, relators split into short/long, and the
// degree bound to search up to.
type preset struct {
	Group string   `mapstructure:"group"`
	Rank  int      `mapstructure:"rank"`
	Short []string `mapstructure:"short"`
	Long  []string `mapstructure:"long"`
	Degree int     `mapstructure:"degree"`
}

// loadPreset reads presets[name] from the already-parsed viper config
// (see root.go's PersistentPreRunE, which calls viper.ReadInConfig when
// --config is set).
func loadPreset(name string) (preset, error) {
	var presets map[string]preset
	if err := viper.UnmarshalKey("presets", &presets); err != nil {
		return preset{}, err
	}
	p, ok := presets[name]
	if !ok {
		return preset{}, errPresetNotFound(name)
	}
	return p, nil
}

type errPresetNotFound string

func (e errPresetNotFound) Error() string {
	return "lowindex: no preset named " + string(e)
}
