package match

// Weights are the additive scoring weights. The defaults are the documented
// contract; deployments may tune them via config, and any change shifts every
// score consistently because the rule set itself is fixed.
type Weights struct {
	Category     int `yaml:"category"`
	Occasion     int `yaml:"occasion"`
	Style        int `yaml:"style"`
	Color        int `yaml:"color"`
	Complement   int `yaml:"complement"`
	QualityGood  int `yaml:"quality_good"`  // rating >= 4.5
	QualityGreat int `yaml:"quality_great"` // rating >= 4.7, on top of QualityGood
}

// DefaultWeights returns the documented default weights.
func DefaultWeights() Weights {
	return Weights{
		Category:     30,
		Occasion:     25,
		Style:        20,
		Color:        15,
		Complement:   20,
		QualityGood:  5,
		QualityGreat: 3,
	}
}

// qualityGoodRating and qualityGreatRating are the rating thresholds for the
// quality bonuses.
const (
	qualityGoodRating  = 4.5
	qualityGreatRating = 4.7
)
