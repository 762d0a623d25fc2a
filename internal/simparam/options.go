package simparam

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/apstndb/simargs/internal/parser"
	"github.com/apstndb/simargs/internal/parser/cmdline"
)

// Spec describes one command-line option of the simulation.
type Spec struct {
	Name        string
	Field       string
	Description string

	bind func(d *cmdline.Dispatcher, p *Param, fs afero.Fs) error
}

func typed[T any](name, field, description string, newParser func(fs afero.Fs) parser.Parser[T], dest func(*Param) *T) Spec {
	return Spec{
		Name:        name,
		Field:       field,
		Description: description,
		bind: func(d *cmdline.Dispatcher, p *Param, fs afero.Fs) error {
			return cmdline.AddOption(d, name, newParser(fs), dest(p))
		},
	}
}

func plain[T any](name, field, description string, fn func(string, *T) error, dest func(*Param) *T) Spec {
	return Spec{
		Name:        name,
		Field:       field,
		Description: description,
		bind: func(d *cmdline.Dispatcher, p *Param, _ afero.Fs) error {
			return cmdline.Register(d, name, fn, dest(p))
		},
	}
}

func readableFile(fs afero.Fs) parser.Parser[string] {
	return parser.NewReadableFileParser(fs)
}

func nonEmpty(afero.Fs) parser.Parser[string] {
	return parser.NewStringParser().NonEmpty()
}

func positiveInt32(afero.Fs) parser.Parser[int32] {
	return parser.WithValidation(parser.NewInt32Parser(), parser.Positive[int32])
}

func positiveFloat(afero.Fs) parser.Parser[float64] {
	return parser.WithValidation(parser.Parser[float64](parser.NewFloatParser()), parser.Positive[float64])
}

func bitmapFormat(afero.Fs) parser.Parser[BitmapFormat] {
	return parser.NewEnumParser(map[string]BitmapFormat{
		string(BitmapPNG): BitmapPNG,
		string(BitmapBMP): BitmapBMP,
	})
}

var specs = []Spec{
	typed("P", "ParamFile", "Parameter file", readableFile, func(p *Param) *string { return &p.ParamFile }),
	typed("PP", "PreParamFile", "Pre-parameter file", readableFile, func(p *Param) *string { return &p.PreParamFile }),
	typed("A", "AdminFile", "Administrative division file", readableFile, func(p *Param) *string { return &p.AdminFile }),
	typed("D", "DensityFile", "Population density file", readableFile, func(p *Param) *string { return &p.DensityFile }),
	typed("s", "SchoolFile", "School file", readableFile, func(p *Param) *string { return &p.SchoolFile }),
	typed("L", "NetworkLoadFile", "Load the household network from this file", readableFile, func(p *Param) *string { return &p.NetworkLoadFile }),
	typed("S", "NetworkSaveFile", "Save the household network to this file", nonEmpty, func(p *Param) *string { return &p.NetworkSaveFile }),
	typed("O", "OutputFileBase", "Prefix of all output files", nonEmpty, func(p *Param) *string { return &p.OutputFileBase }),
	typed("c", "NumThreads", "Number of worker threads (>= 1)", positiveInt32, func(p *Param) *int32 { return &p.NumThreads }),
	typed("N", "NumRealisations", "Number of realisations (>= 1)", positiveInt32, func(p *Param) *int32 { return &p.NumRealisations }),
	typed("R", "R0Scaling", "Scaling applied to R0 (> 0)", positiveFloat, func(p *Param) *float64 { return &p.R0Scaling }),
	typed("BM", "BitmapFormat", "Bitmap format: PNG or BMP", bitmapFormat, func(p *Param) *BitmapFormat { return &p.BitmapFormat }),
	plain("SS1", "SetupSeed1", "First seed of the network setup", parser.ParseLong, func(p *Param) *int64 { return &p.SetupSeed1 }),
	plain("SS2", "SetupSeed2", "Second seed of the network setup", parser.ParseLong, func(p *Param) *int64 { return &p.SetupSeed2 }),
	plain("RS1", "RunSeed1", "First seed of the runs", parser.ParseLong, func(p *Param) *int64 { return &p.RunSeed1 }),
	plain("RS2", "RunSeed2", "Second seed of the runs", parser.ParseLong, func(p *Param) *int64 { return &p.RunSeed2 }),
}

// Options returns the option table in display order.
func Options() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Bind registers every option of the table on d with p's fields as destinations.
// File options probe the operating system filesystem.
func Bind(d *cmdline.Dispatcher, p *Param) error {
	return BindFs(d, p, afero.NewOsFs())
}

// BindFs is like Bind but probes fs for file options.
func BindFs(d *cmdline.Dispatcher, p *Param, fs afero.Fs) error {
	for _, s := range specs {
		if err := s.bind(d, p, fs); err != nil {
			return fmt.Errorf("failed to bind option %s: %w", s.Name, err)
		}
	}
	return nil
}
