package ascii

// Ramp lists the output characters from brightest to darkest
const Ramp = "$#@%*~,`"

// bucketWidth is the lightness span covered by one ramp character
const bucketWidth = 1.0 / float64(len(Ramp))

// MapLightnessToChar maps an HSL lightness value to a character of Ramp.
// Buckets are closed on their lower bound. Values outside [0, 1] saturate
// to the first or last character.
func MapLightnessToChar(l float64) byte {
	switch {
	case l >= 7*bucketWidth:
		return '$'
	case l >= 6*bucketWidth:
		return '#'
	case l >= 5*bucketWidth:
		return '@'
	case l >= 4*bucketWidth:
		return '%'
	case l >= 3*bucketWidth:
		return '*'
	case l >= 2*bucketWidth:
		return '~'
	case l >= bucketWidth:
		return ','
	default:
		return '`'
	}
}
