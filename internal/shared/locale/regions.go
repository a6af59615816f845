package locale

import "strings"

var regions = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// NormalizeRegion upper-cases a two letter state code and reports whether it is a Brazilian state.
func NormalizeRegion(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	_, ok := regions[code]
	return code, ok
}
