package source

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

const (
	ggaSentence   = "$GPGGA,170834,3724.332,N,12205.043,W,1,05,1.5,30.6,M,-34.0,M,,*44"
	gstSentence   = "$GPGST,170834,5.0,3.1,2.0,100.0,2.5,2.6,5.0*72"
	rmcMoving     = "$GPRMC,170834,A,3724.332,N,12205.043,W,3.0,140.0,021021,,*03"
	rmcStationary = "$GPRMC,170834,A,3724.332,N,12205.043,W,0.0,0.0,021021,,*05"
	rmcVoid       = "$GPRMC,170834,V,3724.332,N,12205.043,W,3.0,140.0,021021,,*14"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNMEA_AssemblesFixFromSentenceStream(t *testing.T) {
	input := strings.Join([]string{
		"garbage that is not nmea",
		ggaSentence,
		gstSentence,
		rmcMoving,
	}, "\r\n")

	src := NewNMEA(strings.NewReader(input))
	rec, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	pos, ok := rec.Location.LatLng.Get()
	if !ok || !almostEqual(pos.Latitude, 37.405533333) || !almostEqual(pos.Longitude, -122.08405) {
		t.Errorf("position = %+v, %v", pos, ok)
	}
	if alt, ok := rec.Location.Altitude.Get(); !ok || alt != 30.6 {
		t.Errorf("altitude = %v, %v (GGA should contribute)", alt, ok)
	}
	if speed, ok := rec.Location.Speed.Get(); !ok || !almostEqual(speed, 3.0*knotsToMetersPerSec) {
		t.Errorf("speed = %v, %v", speed, ok)
	}
	if bearing, ok := rec.Location.Bearing.Get(); !ok || bearing != 140.0 {
		t.Errorf("bearing = %v, %v (moving fix reports course)", bearing, ok)
	}
	if hAcc, ok := rec.Location.HorizontalAccuracy.Get(); !ok || !almostEqual(hAcc, math.Sqrt(2.5*2.5+2.6*2.6)) {
		t.Errorf("horizontal accuracy = %v, %v (GST should contribute)", hAcc, ok)
	}
	if vAcc, ok := rec.Location.VerticalAccuracy.Get(); !ok || vAcc != 5.0 {
		t.Errorf("vertical accuracy = %v, %v", vAcc, ok)
	}
	if rec.Location.TimestampMillis != 1633194514000 {
		t.Errorf("timestamp = %d, want 1633194514000", rec.Location.TimestampMillis)
	}
	if rec.Raw != rmcMoving {
		t.Errorf("raw = %q, want the RMC sentence", rec.Raw)
	}
}

func TestNMEA_StationaryFixOmitsBearing(t *testing.T) {
	src := NewNMEA(strings.NewReader(rmcStationary))
	rec, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	if rec.Location.Bearing.Valid {
		t.Error("stationary fix must not report a bearing")
	}
	if speed, ok := rec.Location.Speed.Get(); !ok || speed != 0 {
		t.Errorf("speed = %v, %v", speed, ok)
	}
	if rec.Location.Altitude.Valid {
		t.Error("no GGA seen, altitude must be absent")
	}
}

func TestNMEA_MalformedGSTIsSkipped(t *testing.T) {
	badGST := "$GPGST,170834,5.0,3.1,2.0,100.0,2.5,2.6,5.0*00"
	input := badGST + "\r\n" + rmcMoving

	src := NewNMEA(strings.NewReader(input))
	rec, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Location.HorizontalAccuracy.Valid || rec.Location.VerticalAccuracy.Valid {
		t.Error("a GST with a bad checksum must not contribute accuracies")
	}
}

func TestNMEA_SkipsVoidFixes(t *testing.T) {
	input := rmcVoid + "\r\n" + rmcMoving

	src := NewNMEA(strings.NewReader(input))
	rec, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Raw != rmcMoving {
		t.Errorf("void fix should be skipped, got %q", rec.Raw)
	}
}

func TestNMEA_EndOfStream(t *testing.T) {
	src := NewNMEA(strings.NewReader(ggaSentence))
	if _, err := src.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
