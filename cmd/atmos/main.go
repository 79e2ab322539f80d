// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/rand"

	m "github.com/skysim/atmos"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load the sim-input file
	simIn, err := loadSimInput(args.cfgFn)
	if err != nil {
		return fmt.Errorf("failed to load sim-input file: %w", err)
	}
	if args.opt >= 0 {
		simIn.Atmosphere.OptMask = args.opt
	}

	site := simIn.siteProfile()
	filters, err := simIn.filterModels(filepath.Dir(args.cfgFn))
	if err != nil {
		return fmt.Errorf("failed to load filter models: %w", err)
	}

	cfg := simIn.atmosConfig(filepath.Dir(args.cfgFn))
	atm, err := m.New(cfg, site, filters, rand.NewSource(args.seed))
	if err != nil {
		return fmt.Errorf("atmosphere init failed: %w", err)
	}

	// Airmass check for one pointing
	if args.mjd > 0 {
		ev := m.NewEvent(args.ra, args.dec)
		ep := &m.Epoch{MJD: args.mjd, Generated: true}
		m.ResolveGeometry(ep, ev, site)
		fmt.Printf("MJD       : %.4f\n", ep.MJD)
		fmt.Printf("altitude  : %8.3f deg\n", ep.Altitude)
		fmt.Printf("zenith    : %8.3f deg\n", ep.ZenithAng)
		fmt.Printf("airmass   : %8.4f\n", ep.Airmass)
	}

	// DCR grid table for one band
	if args.dcrBand >= 0 {
		if err := atm.DCRTable(os.Stdout, args.dcrBand); err != nil {
			return fmt.Errorf("failed to write DCR table: %w", err)
		}
	}

	return nil
}

// Structure to hold command line argument information
type cmdOpt struct {
	cfgFn   string
	opt     int
	seed    uint64
	mjd     float64
	ra, dec float64
	dcrBand int
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] -c sim_input.toml

[Options]
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	var optVar m.OptVar = -1
	flag.StringVar(&a.cfgFn, "c", "", "Sim-input TOML file path.")
	flag.Var(&optVar, "opt", "Override atmosphere effects from the sim-input file. Comma-separated names (coord,psfshape) or integer mask.")
	flag.Uint64Var(&a.seed, "seed", 12345, "Random stream seed.")
	flag.Float64Var(&a.mjd, "mjd", 0, "MJD for an airmass check. Requires -ra and -dec.")
	flag.Float64Var(&a.ra, "ra", 0, "RA [deg] for the airmass check.")
	flag.Float64Var(&a.dec, "dec", 0, "DEC [deg] for the airmass check.")
	flag.IntVar(&a.dcrBand, "dcrtable", -1, "Band index for a DCR-vs-airmass/wavelength table on stdout.")
	flag.IntVar(&m.DBG_, "d", 0, "Debug display level.")
	flag.Parse()

	a.opt = int(optVar)
	if len(a.cfgFn) == 0 {
		return a, fmt.Errorf("sim-input file is required")
	}
	return a, nil
}

//-------------------------------------------------------------------
// Sim-input file
//-------------------------------------------------------------------

type simInput struct {
	Site struct {
		GeoLat      float64 `toml:"geo_lat"`
		GeoLon      float64 `toml:"geo_lon"`
		GeoAlt      float64 `toml:"geo_alt"`
		Pressure    float64 `toml:"pressure"`
		Temperature float64 `toml:"temperature"`
		PWV         float64 `toml:"pwv"`
		PixelScale  float64 `toml:"pixel_scale"`
	} `toml:"site"`

	Atmosphere struct {
		OptMask       int       `toml:"optmask"`
		SigmaTemp     float64   `toml:"sigma_temp"`
		SigmaPressure float64   `toml:"sigma_pressure"`
		SigmaPWV      float64   `toml:"sigma_pwv"`
		ResPoly       []float64 `toml:"res_poly"`
		MagPoly       []float64 `toml:"mag_poly"`
		CalStarFile   string    `toml:"calstar_file"`
	} `toml:"atmosphere"`

	Filters []struct {
		Band int    `toml:"band"`
		Name string `toml:"name"`
		File string `toml:"file"`
	} `toml:"filter"`
}

func loadSimInput(path string) (*simInput, error) {
	var in simInput
	if _, err := toml.DecodeFile(path, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (in *simInput) siteProfile() *m.SiteProfile {
	site := m.NewSiteProfile(in.Site.GeoLat, in.Site.GeoLon, in.Site.GeoAlt)
	site.Pressure = in.Site.Pressure
	site.Temperature = in.Site.Temperature
	site.PWV = in.Site.PWV
	site.PixelScale = in.Site.PixelScale
	return site
}

func (in *simInput) atmosConfig(dir string) m.Config {
	return m.Config{
		OptMask: in.Atmosphere.OptMask,
		SigmaSite: m.SiteSigma{
			Temperature: in.Atmosphere.SigmaTemp,
			Pressure:    in.Atmosphere.SigmaPressure,
			PWV:         in.Atmosphere.SigmaPWV,
		},
		ResPoly:     m.Poly(in.Atmosphere.ResPoly),
		MagPoly:     m.Poly(in.Atmosphere.MagPoly),
		CalStarFile: resolvePath(dir, in.Atmosphere.CalStarFile),
	}
}

// Filter transmission files share the two-column spectrum format.
func (in *simInput) filterModels(dir string) ([]*m.FilterModel, error) {
	filters := make([]*m.FilterModel, 0, len(in.Filters))
	for _, f := range in.Filters {
		sp, err := m.ReadSpectrumFile(resolvePath(dir, f.File))
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", f.Name, err)
		}
		filters = append(filters, m.NewFilterModel(f.Band, f.Name, sp.Lam, sp.Flux))
	}
	return filters, nil
}

func resolvePath(dir, p string) string {
	if len(p) == 0 || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
