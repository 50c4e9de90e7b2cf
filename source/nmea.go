package source

import (
	"bufio"
	"context"
	"io"
	"math"
	"strings"
	"time"

	nmea "github.com/adrianmo/go-nmea"

	"github.com/signalsfoundry/gnss-conformance/hal"
)

const knotsToMetersPerSec = 0.514444

// typeGST is the pseudorange error statistics sentence. go-nmea ships no
// parser for it, so the source registers its own.
const typeGST = "GST"

type gst struct {
	nmea.BaseSentence
	Time           nmea.Time
	RMSDeviation   float64
	SemiMajorError float64
	SemiMinorError float64
	OrientationDeg float64
	LatitudeError  float64
	LongitudeError float64
	HeightError    float64
}

func parseGST(s nmea.BaseSentence) (nmea.Sentence, error) {
	p := nmea.NewParser(s)
	return gst{
		BaseSentence:   s,
		Time:           p.Time(0, "time"),
		RMSDeviation:   p.Float64(1, "rms deviation"),
		SemiMajorError: p.Float64(2, "semi-major axis error"),
		SemiMinorError: p.Float64(3, "semi-minor axis error"),
		OrientationDeg: p.Float64(4, "orientation"),
		LatitudeError:  p.Float64(5, "latitude error"),
		LongitudeError: p.Float64(6, "longitude error"),
		HeightError:    p.Float64(7, "height error"),
	}, p.Err()
}

// NMEA assembles location records from a raw NMEA-0183 sentence stream.
// RMC marks a fix boundary and carries position, speed, course, and the
// UTC timestamp; the most recent GGA contributes altitude and the most
// recent GST the accuracy estimates. Unparseable or irrelevant lines are
// skipped, as receivers interleave plenty of both.
type NMEA struct {
	scanner *bufio.Scanner
	parser  nmea.SentenceParser

	altitude hal.Optional[float64]
	hAcc     hal.Optional[float64]
	vAcc     hal.Optional[float64]
}

// NewNMEA wraps a reader producing one NMEA sentence per line.
func NewNMEA(r io.Reader) *NMEA {
	return &NMEA{
		scanner: bufio.NewScanner(r),
		parser: nmea.SentenceParser{
			CustomParsers: map[string]nmea.ParserFunc{typeGST: parseGST},
		},
	}
}

// Next implements Source. It returns one record per valid RMC sentence.
func (n *NMEA) Next(ctx context.Context) (Record, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		if !n.scanner.Scan() {
			if err := n.scanner.Err(); err != nil {
				return Record{}, err
			}
			return Record{}, io.EOF
		}

		line := strings.TrimSpace(n.scanner.Text())
		if line == "" || !strings.HasPrefix(line, "$") {
			continue
		}

		sentence, err := n.parser.Parse(line)
		if err != nil {
			continue
		}

		switch sentence.DataType() {
		case nmea.TypeGGA:
			gga := sentence.(nmea.GGA)
			n.altitude = hal.Present(gga.Altitude)

		case typeGST:
			g := sentence.(gst)
			n.hAcc = hal.Present(math.Sqrt(
				g.LatitudeError*g.LatitudeError + g.LongitudeError*g.LongitudeError))
			n.vAcc = hal.Present(g.HeightError)

		case nmea.TypeRMC:
			rmc := sentence.(nmea.RMC)
			if rmc.Validity != nmea.ValidRMC {
				continue
			}
			return Record{Location: n.fixFromRMC(rmc), Raw: line}, nil
		}
	}
}

func (n *NMEA) fixFromRMC(rmc nmea.RMC) hal.Location {
	loc := hal.Location{
		LatLng: hal.Present(hal.LatLng{
			Latitude:  rmc.Latitude,
			Longitude: rmc.Longitude,
		}),
		Altitude:           n.altitude,
		Speed:              hal.Present(rmc.Speed * knotsToMetersPerSec),
		HorizontalAccuracy: n.hAcc,
		VerticalAccuracy:   n.vAcc,
		TimestampMillis:    rmcTimestampMillis(rmc),
	}

	// Course over ground is meaningless while stationary; receivers emit 0
	// either way, so only a moving fix reports a bearing.
	if rmc.Speed > 0 {
		loc.Bearing = hal.Present(rmc.Course)
	}
	return loc
}

func rmcTimestampMillis(rmc nmea.RMC) int64 {
	if !rmc.Date.Valid || !rmc.Time.Valid {
		return 0
	}
	t := time.Date(
		2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
		rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second,
		rmc.Time.Millisecond*int(time.Millisecond),
		time.UTC,
	)
	return t.UnixMilli()
}
