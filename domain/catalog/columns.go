package catalog

// Column names the analysis consumes, fixed by the NSA catalog layout.
// The column inspector prints naming-convention candidates but never
// drives these.
const (
	ColMass    = "SERSIC_MASS"
	ColSize    = "SERSIC_TH50"
	ColFlag    = "SERSIC_OK"
	ColSersicN = "SERSIC_N"
	ColZ       = "Z"
)

// Required enumerates the columns a catalog source must provide
var Required = []string{ColMass, ColSize, ColFlag, ColSersicN, ColZ}
