package hal

import "testing"

func TestMapConstellation_SharedNamesMapOneToOne(t *testing.T) {
	cases := []struct {
		in   ConstellationExt
		want Constellation
	}{
		{ConstellationExtGPS, ConstellationGPS},
		{ConstellationExtSBAS, ConstellationSBAS},
		{ConstellationExtGLONASS, ConstellationGLONASS},
		{ConstellationExtQZSS, ConstellationQZSS},
		{ConstellationExtBeiDou, ConstellationBeiDou},
		{ConstellationExtGalileo, ConstellationGalileo},
	}
	for _, tc := range cases {
		if got := MapConstellation(tc.in); got != tc.want {
			t.Errorf("MapConstellation(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMapConstellation_UnmappedCodesNarrowToUnknown(t *testing.T) {
	if got := MapConstellation(ConstellationExtUnknown); got != ConstellationUnknown {
		t.Errorf("MapConstellation(unknown) = %s, want UNKNOWN", got)
	}
	if got := MapConstellation(ConstellationExtIRNSS); got != ConstellationUnknown {
		t.Errorf("MapConstellation(IRNSS) = %s, want UNKNOWN", got)
	}
}

// The mapping must stay total: any value in the extended domain, including
// codes added after this package was written, yields a defined result.
func TestMapConstellation_TotalOverFullValueSpace(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := ConstellationExt(i)
		got := MapConstellation(c)
		if got > ConstellationGalileo {
			t.Fatalf("MapConstellation(%d) = %d, outside the base domain", i, got)
		}
	}

	// A hypothetical future code degrades rather than failing.
	if got := MapConstellation(ConstellationExtIRNSS + 1); got != ConstellationUnknown {
		t.Errorf("future code mapped to %s, want UNKNOWN", got)
	}
}

func TestConstellationStrings(t *testing.T) {
	if got := ConstellationGPS.String(); got != "GPS" {
		t.Errorf("ConstellationGPS.String() = %q", got)
	}
	if got := ConstellationExtIRNSS.String(); got != "IRNSS" {
		t.Errorf("ConstellationExtIRNSS.String() = %q", got)
	}
	if got := Constellation(200).String(); got != "UNKNOWN" {
		t.Errorf("out-of-range Constellation.String() = %q", got)
	}
}
