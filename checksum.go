package rutkit

// Positional weights for the modulo-11 checksum. Digits are walked from the
// least significant one up; the weight starts at weightInit and wraps back to
// it once it passes weightLimit, so the cycle is 2,3,4,5,6,7,2,3,...
const (
	weightInit  = 2
	weightLimit = 7
)

// CheckDigit computes the check digit (DV) for a RUT number using the
// standard modulo-11 algorithm. The result is a decimal digit rune or 'K'.
// The function is pure and defined for any number, including values outside
// the accepted range; range enforcement is the constructors' job.
func CheckDigit(number uint32) rune {
	residue := 11 - sumProduct(number)%11

	switch residue {
	case 10:
		return 'K'
	case 11:
		return '0'
	default:
		return rune('0' + residue)
	}
}

// sumProduct accumulates digit*weight over the decimal digits of number,
// least significant digit first.
func sumProduct(number uint32) int {
	total := 0
	weight := weightInit

	for n := number; n > 0; n /= 10 {
		total += int(n%10) * weight
		weight = nextWeight(weight)
	}

	return total
}

// nextWeight advances the positional weight, wrapping back to the start of
// the cycle once the limit is passed.
func nextWeight(weight int) int {
	if weight >= weightLimit {
		return weightInit
	}
	return weight + 1
}
