package extract

import "github.com/styleloom/stylist/internal/domain"

// Occasion tags used across the catalog and keyword tables.
const (
	OccasionWedding  = "wedding"
	OccasionWork     = "work"
	OccasionParty    = "party"
	OccasionCasual   = "casual"
	OccasionDate     = "date"
	OccasionTravel   = "travel"
	OccasionFestival = "festival"
	OccasionGym      = "gym"
)

// Occasion maps free text to the first occasion tag its keywords hit, or ""
// when nothing matches.
func Occasion(text string) string {
	for _, tok := range tokenize(text) {
		if occ, ok := occasionKeywords[tok]; ok {
			return occ
		}
	}
	return ""
}

// FormalOccasion reports whether the occasion calls for the dressier outfit
// treatment (outerwear layered on top).
func FormalOccasion(occasion string) bool {
	switch occasion {
	case OccasionWedding, OccasionWork, OccasionParty:
		return true
	}
	return false
}

// occasionKeywords maps free-text keywords to occasion tags.
var occasionKeywords = map[string]string{
	"wedding":      OccasionWedding,
	"weddings":     OccasionWedding,
	"formal":       OccasionWedding,
	"business":     OccasionWork,
	"office":       OccasionWork,
	"work":         OccasionWork,
	"professional": OccasionWork,
	"party":        OccasionParty,
	"parties":      OccasionParty,
	"evening":      OccasionParty,
	"casual":       OccasionCasual,
	"everyday":     OccasionCasual,
	"date":         OccasionDate,
	"travel":       OccasionTravel,
	"vacation":     OccasionTravel,
	"festival":     OccasionFestival,
	"festive":      OccasionFestival,
	"gym":          OccasionGym,
	"workout":      OccasionGym,
}

// categoryKeywords maps chat tokens to catalog categories.
var categoryKeywords = map[string][]domain.Category{
	"top":       {domain.Tops},
	"tops":      {domain.Tops},
	"shirt":     {domain.Tops},
	"shirts":    {domain.Tops},
	"blouse":    {domain.Tops},
	"blouses":   {domain.Tops},
	"tee":       {domain.Tops},
	"tshirt":    {domain.Tops},
	"bottom":    {domain.Bottoms},
	"bottoms":   {domain.Bottoms},
	"jeans":     {domain.Bottoms},
	"pants":     {domain.Bottoms},
	"trousers":  {domain.Bottoms},
	"skirt":     {domain.Bottoms},
	"skirts":    {domain.Bottoms},
	"dress":     {domain.Dresses},
	"dresses":   {domain.Dresses},
	"gown":      {domain.Dresses},
	"saree":     {domain.Dresses},
	"shoe":      {domain.Footwear},
	"shoes":     {domain.Footwear},
	"footwear":  {domain.Footwear},
	"heels":     {domain.Footwear},
	"sneakers":  {domain.Footwear},
	"boots":     {domain.Footwear},
	"sandals":   {domain.Footwear},
	"jewelry":   {domain.Jewelry},
	"jewellery": {domain.Jewelry},
	"necklace":  {domain.Jewelry},
	"earrings":  {domain.Jewelry},
	"bag":       {domain.Bags},
	"bags":      {domain.Bags},
	"handbag":   {domain.Bags},
	"purse":     {domain.Bags},
	"jacket":    {domain.Outerwear},
	"jackets":   {domain.Outerwear},
	"blazer":    {domain.Outerwear},
	"blazers":   {domain.Outerwear},
	"cardigan":  {domain.Outerwear},
	"coat":      {domain.Outerwear},
	// "accessories" spans two categories
	"accessory":   {domain.Jewelry, domain.Bags},
	"accessories": {domain.Jewelry, domain.Bags},
}

// colorKeywords is the fixed color vocabulary recognized in chat text.
var colorKeywords = []string{
	"red", "blue", "black", "white", "pink", "green", "yellow", "purple",
	"orange", "navy", "gold", "silver", "brown", "gray", "beige", "cream",
	"maroon", "nude", "tan",
}

// styleKeywords maps chat tokens to style tags. Ordered: the first match in
// token order wins, so extraction stays deterministic.
var styleKeywords = map[string]string{
	"professional": "professional",
	"formal":       "professional",
	"casual":       "casual",
	"relaxed":      "casual",
	"trendy":       "trendy",
	"modern":       "trendy",
	"traditional":  "traditional",
	"ethnic":       "traditional",
	"elegant":      "elegant",
	"romantic":     "romantic",
	"sporty":       "sporty",
	"comfortable":  "comfortable",
}
