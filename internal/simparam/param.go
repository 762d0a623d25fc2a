// Package simparam defines the simulation parameter set filled from the
// command line, and the table of options that binds it to a dispatcher.
package simparam

import (
	"errors"
)

// BitmapFormat is the image format of the bitmap snapshots.
type BitmapFormat string

const (
	BitmapPNG BitmapFormat = "PNG"
	BitmapBMP BitmapFormat = "BMP"
)

// Param holds the values the simulation reads from its command line.
// Fields whose option is not given keep their default.
type Param struct {
	ParamFile       string       `yaml:"param_file,omitempty"`
	PreParamFile    string       `yaml:"pre_param_file,omitempty"`
	AdminFile       string       `yaml:"admin_file,omitempty"`
	DensityFile     string       `yaml:"density_file,omitempty"`
	SchoolFile      string       `yaml:"school_file,omitempty"`
	NetworkLoadFile string       `yaml:"network_load_file,omitempty"`
	NetworkSaveFile string       `yaml:"network_save_file,omitempty"`
	OutputFileBase  string       `yaml:"output_file_base,omitempty"`
	NumThreads      int32        `yaml:"num_threads"`
	NumRealisations int32        `yaml:"num_realisations"`
	R0Scaling       float64      `yaml:"r0_scaling"`
	BitmapFormat    BitmapFormat `yaml:"bitmap_format"`
	SetupSeed1      int64        `yaml:"setup_seed1"`
	SetupSeed2      int64        `yaml:"setup_seed2"`
	RunSeed1        int64        `yaml:"run_seed1"`
	RunSeed2        int64        `yaml:"run_seed2"`
}

// Default returns the parameter set used when no option is given.
func Default() Param {
	return Param{
		NumThreads:      1,
		NumRealisations: 1,
		R0Scaling:       1.0,
		BitmapFormat:    BitmapPNG,
	}
}

var errNetworkLoadAndSave = errors.New("invalid parameters: network load (/L) and network save (/S) are mutually exclusive")

// Validate checks constraints between fields that no single option can check.
func (p *Param) Validate() error {
	if p.NetworkLoadFile != "" && p.NetworkSaveFile != "" {
		return errNetworkLoadAndSave
	}
	return nil
}
