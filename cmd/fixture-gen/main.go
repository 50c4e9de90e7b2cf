// fixture-gen emits GNSS HAL fixture records as JSON: the golden
// measurement-correction records, the canned valid location, or a
// synthetic sky view propagated from TLEs.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/signalsfoundry/gnss-conformance/fixture"
	"github.com/signalsfoundry/gnss-conformance/hal"
)

func main() {
	kind := flag.String("kind", "corrections", "fixture to emit: corrections | corrections-ext | location | skyview")
	tlePath := flag.String("tle", "", "TLE file for -kind skyview (3-line groups: name, line 1, line 2)")
	lat := flag.Float64("lat", 37.4219999, "observer latitude for -kind skyview (degrees)")
	lng := flag.Float64("lng", -122.0840575, "observer longitude for -kind skyview (degrees)")
	alt := flag.Float64("alt", 30.0, "observer altitude for -kind skyview (metres)")
	at := flag.String("at", "2021-10-02T12:00:00Z", "instant for -kind skyview (RFC 3339)")
	mask := flag.Float64("mask", 5.0, "elevation mask for -kind skyview (degrees)")
	flag.Parse()

	var out any
	switch *kind {
	case "corrections":
		out = fixture.MeasurementCorrections()
	case "corrections-ext":
		out = fixture.MeasurementCorrectionsExt()
	case "location":
		out = fixture.Location()
	case "skyview":
		view, err := skyView(*tlePath, *lat, *lng, *alt, *at, *mask)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skyview: %v\n", err)
			os.Exit(1)
		}
		out = view
	default:
		fmt.Fprintf(os.Stderr, "unknown -kind %q\n", *kind)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}

func skyView(tlePath string, lat, lng, alt float64, at string, mask float64) ([]hal.SatCorrection, error) {
	if tlePath == "" {
		return nil, fmt.Errorf("-tle is required")
	}
	instant, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("parse -at: %w", err)
	}

	sats, err := loadTLEs(tlePath)
	if err != nil {
		return nil, err
	}

	obs := fixture.Observer{
		LatLng:    hal.LatLng{Latitude: lat, Longitude: lng},
		AltMeters: alt,
	}
	return fixture.SkyView(sats, obs, instant, mask), nil
}

// loadTLEs parses a standard 3-line TLE file. Constellation is guessed
// from the satellite name; SVIDs are assigned in file order.
func loadTLEs(path string) ([]fixture.OrbitingSat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines)%3 != 0 {
		return nil, fmt.Errorf("TLE file %q: expected 3-line groups, got %d lines", path, len(lines))
	}

	var sats []fixture.OrbitingSat
	for i := 0; i+2 < len(lines); i += 3 {
		sats = append(sats, fixture.OrbitingSat{
			Constellation:      constellationFromName(lines[i]),
			SVID:               uint16(i/3 + 1),
			CarrierFrequencyHz: 1.57542e+09, // L1
			TLELine1:           lines[i+1],
			TLELine2:           lines[i+2],
		})
	}
	return sats, nil
}

func constellationFromName(name string) hal.Constellation {
	name = strings.ToUpper(name)
	switch {
	case strings.HasPrefix(name, "GPS"), strings.HasPrefix(name, "NAVSTAR"):
		return hal.ConstellationGPS
	case strings.HasPrefix(name, "GLONASS"), strings.HasPrefix(name, "COSMOS"):
		return hal.ConstellationGLONASS
	case strings.HasPrefix(name, "GALILEO"), strings.HasPrefix(name, "GSAT"):
		return hal.ConstellationGalileo
	case strings.HasPrefix(name, "BEIDOU"):
		return hal.ConstellationBeiDou
	case strings.HasPrefix(name, "QZS"):
		return hal.ConstellationQZSS
	default:
		return hal.ConstellationUnknown
	}
}
