package fixture

import (
	"reflect"
	"testing"

	"github.com/signalsfoundry/gnss-conformance/conformance"
	"github.com/signalsfoundry/gnss-conformance/hal"
)

func TestMeasurementCorrections_GoldenValues(t *testing.T) {
	got := MeasurementCorrections()

	if got.Latitude != 37.4219999 || got.Longitude != -122.0840575 {
		t.Errorf("reference position = (%v, %v)", got.Latitude, got.Longitude)
	}
	if got.TOAGPSNanosOfWeek != 2935633453 {
		t.Errorf("TOA = %d", got.TOAGPSNanosOfWeek)
	}
	if len(got.SatCorrections) != 2 {
		t.Fatalf("expected 2 satellite corrections, got %d", len(got.SatCorrections))
	}

	sat1 := got.SatCorrections[0]
	if sat1.Constellation != hal.ConstellationGPS || sat1.SVID != 12 {
		t.Errorf("first entry = %s svid %d", sat1.Constellation, sat1.SVID)
	}
	if !sat1.ReflectingPlane.Valid {
		t.Error("first entry must carry a reflecting plane")
	}
	if got.SatCorrections[1].ReflectingPlane.Valid {
		t.Error("second entry must not carry a reflecting plane")
	}
}

func TestMeasurementCorrections_Deterministic(t *testing.T) {
	if !reflect.DeepEqual(MeasurementCorrections(), MeasurementCorrections()) {
		t.Fatal("two invocations must return equal records")
	}
	if !reflect.DeepEqual(MeasurementCorrectionsExt(), MeasurementCorrectionsExt()) {
		t.Fatal("two extended invocations must return equal records")
	}
}

func TestMeasurementCorrections_CallersMayMutateTheirCopy(t *testing.T) {
	first := MeasurementCorrections()
	first.SatCorrections[0].SVID = 99

	if MeasurementCorrections().SatCorrections[0].SVID != 12 {
		t.Fatal("mutating a returned record must not leak into later calls")
	}
}

func TestMeasurementCorrectionsExt_NarrowsEmbeddedBaseConstellations(t *testing.T) {
	got := MeasurementCorrectionsExt()

	if len(got.SatCorrections) != 2 {
		t.Fatalf("expected 2 extended entries, got %d", len(got.SatCorrections))
	}
	for i, ext := range got.SatCorrections {
		if ext.Constellation != hal.ConstellationExtIRNSS {
			t.Errorf("extended entry %d constellation = %s, want IRNSS", i, ext.Constellation)
		}
		// The embedded base record cannot represent IRNSS, so its entries
		// are narrowed to Unknown.
		if got.Base.SatCorrections[i].Constellation != hal.ConstellationUnknown {
			t.Errorf("embedded base entry %d constellation = %s, want UNKNOWN",
				i, got.Base.SatCorrections[i].Constellation)
		}
	}
}

func TestMeasurementCorrectionsExt_PreservesBaseNumericFields(t *testing.T) {
	base := MeasurementCorrections()
	ext := MeasurementCorrectionsExt()

	if ext.Base.Latitude != base.Latitude ||
		ext.Base.Longitude != base.Longitude ||
		ext.Base.Altitude != base.Altitude ||
		ext.Base.HorizontalUncertainty != base.HorizontalUncertainty ||
		ext.Base.VerticalUncertainty != base.VerticalUncertainty ||
		ext.Base.TOAGPSNanosOfWeek != base.TOAGPSNanosOfWeek {
		t.Error("extended record must preserve the base aggregate fields")
	}

	for i := range base.SatCorrections {
		want := base.SatCorrections[i]
		got := ext.SatCorrections[i].Base
		// Everything except the narrowed constellation carries over.
		want.Constellation = got.Constellation
		if !reflect.DeepEqual(want, got) {
			t.Errorf("extended entry %d diverges from base: got %+v, want %+v", i, got, want)
		}
	}

	bearing, ok := ext.EnvironmentBearing.Get()
	if !ok || bearing.Degrees != 45.0 || bearing.UncertaintyDegrees != 4.0 {
		t.Errorf("environment bearing = %+v, %v", bearing, ok)
	}
}

func TestLocation_PassesEveryContractRule(t *testing.T) {
	for _, opts := range []conformance.Options{
		{},
		{CheckSpeed: true},
		{CheckMoreAccuracies: true},
		{CheckSpeed: true, CheckMoreAccuracies: true},
	} {
		if got := conformance.CheckLocation(Location(), opts); len(got) != 0 {
			t.Errorf("opts %+v: canned location must pass, got %v", opts, got)
		}
	}
}
