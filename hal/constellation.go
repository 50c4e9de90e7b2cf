package hal

// Constellation identifies the satellite system a measurement originates
// from, in the base HAL enumeration.
type Constellation uint8

const (
	ConstellationUnknown Constellation = iota
	ConstellationGPS
	ConstellationSBAS
	ConstellationGLONASS
	ConstellationQZSS
	ConstellationBeiDou
	ConstellationGalileo
)

// ConstellationExt is the extended HAL enumeration. It is a superset of
// Constellation: later HAL versions added IRNSS, which the base
// enumeration cannot represent.
type ConstellationExt uint8

const (
	ConstellationExtUnknown ConstellationExt = iota
	ConstellationExtGPS
	ConstellationExtSBAS
	ConstellationExtGLONASS
	ConstellationExtQZSS
	ConstellationExtBeiDou
	ConstellationExtGalileo
	ConstellationExtIRNSS
)

// MapConstellation narrows an extended constellation code to the base
// enumeration. The six shared names map one-to-one; anything else,
// including values added after this code was written, degrades to
// ConstellationUnknown rather than failing.
func MapConstellation(c ConstellationExt) Constellation {
	switch c {
	case ConstellationExtGPS:
		return ConstellationGPS
	case ConstellationExtSBAS:
		return ConstellationSBAS
	case ConstellationExtGLONASS:
		return ConstellationGLONASS
	case ConstellationExtQZSS:
		return ConstellationQZSS
	case ConstellationExtBeiDou:
		return ConstellationBeiDou
	case ConstellationExtGalileo:
		return ConstellationGalileo
	default:
		return ConstellationUnknown
	}
}

func (c Constellation) String() string {
	switch c {
	case ConstellationGPS:
		return "GPS"
	case ConstellationSBAS:
		return "SBAS"
	case ConstellationGLONASS:
		return "GLONASS"
	case ConstellationQZSS:
		return "QZSS"
	case ConstellationBeiDou:
		return "BEIDOU"
	case ConstellationGalileo:
		return "GALILEO"
	default:
		return "UNKNOWN"
	}
}

func (c ConstellationExt) String() string {
	if c == ConstellationExtIRNSS {
		return "IRNSS"
	}
	return MapConstellation(c).String()
}
