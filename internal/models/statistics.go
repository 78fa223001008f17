package models

const (
	BandUnpracticed = "unpracticed"
	BandBeginner    = "beginner"
	BandLearning    = "learning"
	BandAdvanced    = "advanced"
	BandGood        = "good"
	BandMaster      = "master"
)

// BandNames lists the score bands in ascending mastery order.
var BandNames = []string{
	BandUnpracticed,
	BandBeginner,
	BandLearning,
	BandAdvanced,
	BandGood,
	BandMaster,
}

type Band struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type Statistics struct {
	Total int             `json:"total"`
	Bands map[string]Band `json:"categories"`
}
