package classifier

// Dictionary maps a phrase to its positive weight, scoped to one
// (dimension, direction) pair.
type Dictionary map[string]float64

// clone copies a dictionary so option overrides cannot mutate the defaults.
func (d Dictionary) clone() Dictionary {
	out := make(Dictionary, len(d))
	for term, weight := range d {
		out[term] = weight
	}
	return out
}

// Interest-rate policy dictionaries.
var policyHawkishTerms = Dictionary{
	"raise rates":                      1.0,
	"rate hike":                        1.0,
	"rate increase":                    0.9,
	"tighten":                          0.8,
	"tightening":                       0.8,
	"restrictive":                      0.7,
	"sufficiently restrictive":         0.8,
	"more restrictive":                 0.9,
	"higher for longer":                0.9,
	"too high inflation":               0.8,
	"inflation persistent":             0.7,
	"inflation expectations unanchored": 0.9,
	"price stability":                  0.5,
	"overheating":                      0.7,
	"hot economy":                      0.6,
	"strong labor market":              0.4,
	"wage pressures":                   0.6,
	"wage growth":                      0.4,
	"upside risks to inflation":        0.8,
	"not yet done":                     0.6,
	"more work to do":                  0.6,
	"premature":                        0.7,
	"premature to cut":                 0.9,
	"too soon to cut":                  0.9,
	"patient":                          0.4,
	"no rush":                          0.5,
	"no hurry":                         0.5,
	"cautious":                         0.3,
	"vigilant":                         0.5,
	"demand too strong":                0.6,
	"above target":                     0.5,
	"sticky inflation":                 0.7,
	"core inflation elevated":          0.7,
	"inflation not beaten":             0.7,
	"further tightening":               0.9,
	"additional rate increases":        0.9,
	"bumpy road":                       0.4,
	"not convinced":                    0.5,
}

var policyDovishTerms = Dictionary{
	"cut rates":                      1.0,
	"rate cut":                       1.0,
	"rate reduction":                 0.9,
	"lower rates":                    0.8,
	"easing":                         0.8,
	"ease policy":                    0.9,
	"accommodative":                  0.8,
	"more accommodative":             0.9,
	"support growth":                 0.6,
	"support the economy":            0.6,
	"downside risks":                 0.7,
	"recession risk":                 0.8,
	"recession":                      0.6,
	"slowdown":                       0.6,
	"economic weakness":              0.7,
	"job losses":                     0.7,
	"rising unemployment":            0.8,
	"unemployment":                   0.4,
	"labor market softening":         0.7,
	"labor market cooling":           0.6,
	"inflation falling":              0.6,
	"inflation declining":            0.6,
	"disinflation":                   0.7,
	"progress on inflation":          0.5,
	"inflation moving down":          0.6,
	"inflation heading toward target": 0.6,
	"maximum employment":             0.5,
	"full employment":                0.4,
	"below target":                   0.5,
	"not restrictive enough":         0.3,
	"gradual":                        0.3,
	"appropriate to reduce":          0.8,
	"time to cut":                    0.9,
	"ready to cut":                   0.9,
	"case for cutting":               0.8,
	"pause tightening":               0.6,
	"stop raising":                   0.7,
	"overly restrictive":             0.8,
	"too restrictive":                0.8,
	"risks becoming too restrictive": 0.7,
	"balanced risks":                 0.3,
	"soft landing":                   0.5,
	"achieving soft landing":         0.5,
}

// Balance-sheet (QT/QE) dictionaries.
var balanceSheetHawkishTerms = Dictionary{
	"quantitative tightening":     0.9,
	"reduce balance sheet":        0.9,
	"shrink balance sheet":        0.8,
	"reducing balance sheet":      0.7,
	"balance sheet runoff":        0.7,
	"reduce holdings":             0.7,
	"treasury runoff":             0.6,
	"mbs runoff":                  0.6,
	"normalize balance sheet":     0.6,
	"balance sheet normalization": 0.6,
	"too large balance sheet":     0.7,
	"unwind":                      0.5,
	"wind down":                   0.5,
}

var balanceSheetDovishTerms = Dictionary{
	"quantitative easing":       0.9,
	"expand balance sheet":      0.9,
	"asset purchases":           0.8,
	"slow runoff":               0.8,
	"taper runoff":              0.8,
	"pause runoff":              0.9,
	"slow the pace of runoff":   0.8,
	"reinvest":                  0.7,
	"reinvestment":              0.7,
	"maintain balance sheet":    0.4,
	"end qt":                    0.9,
	"stop qt":                   0.9,
	"ample reserves":            0.5,
	"reserve scarcity":          0.6,
	"repo pressures":            0.5,
}

// DefaultPolicyHawkish returns a copy of the built-in hawkish rate dictionary.
func DefaultPolicyHawkish() Dictionary { return policyHawkishTerms.clone() }

// DefaultPolicyDovish returns a copy of the built-in dovish rate dictionary.
func DefaultPolicyDovish() Dictionary { return policyDovishTerms.clone() }

// DefaultBalanceSheetHawkish returns a copy of the built-in hawkish QT dictionary.
func DefaultBalanceSheetHawkish() Dictionary { return balanceSheetHawkishTerms.clone() }

// DefaultBalanceSheetDovish returns a copy of the built-in dovish QE dictionary.
func DefaultBalanceSheetDovish() Dictionary { return balanceSheetDovishTerms.clone() }
