// internal/domain/fragrance/catalog.go
package fragrance

// Static catalog of the seven launch fragrances, one per deadly sin.
// The backend is the source of truth for this set; /seed and cmd/seed
// both write from here.
var SevenSins = []Fragrance{
	{
		Name:        "Pride",
		Slug:        "pride",
		Sin:         "Pride",
		TopNotes:    []string{"bergamot", "black pepper"},
		HeartNotes:  []string{"orris", "violet"},
		BaseNotes:   []string{"amber", "cashmere wood"},
		Description: "A luminous self-regard, gilded and unbowed.",
		Story:       "In mirrored halls where crowns are invisible, Pride walks perfumed with certainty.",
		Price:       145.0,
		InStock:     true,
	},
	{
		Name:        "Greed",
		Slug:        "greed",
		Sin:         "Greed",
		TopNotes:    []string{"saffron", "aldehydes"},
		HeartNotes:  []string{"ylang", "tobacco"},
		BaseNotes:   []string{"oud", "tonka", "golden resin"},
		Description: "Gleam of coin, velvet vaults, a hunger that glitters.",
		Story:       "Greed hoards the sun, corked in crystal. Every drop a ransom.",
		Price:       165.0,
		InStock:     true,
	},
	{
		Name:        "Lust",
		Slug:        "lust",
		Sin:         "Lust",
		TopNotes:    []string{"black cherry", "pomegranate"},
		HeartNotes:  []string{"damask rose", "jasmine sambac"},
		BaseNotes:   []string{"musk", "patchouli"},
		Description: "Velvet breath and bitten fruit under blackout silk.",
		Story:       "Lust speaks in midnight vowels—skin remembers before the mind consents.",
		Price:       155.0,
		InStock:     true,
	},
	{
		Name:        "Envy",
		Slug:        "envy",
		Sin:         "Envy",
		TopNotes:    []string{"green apple", "galbanum"},
		HeartNotes:  []string{"ivy", "lily of the valley"},
		BaseNotes:   []string{"vetiver", "oakmoss"},
		Description: "A cool gaze through frosted glass.",
		Story:       "Envy prays at other altars and leaves with stained fingers of emerald.",
		Price:       140.0,
		InStock:     true,
	},
	{
		Name:        "Gluttony",
		Slug:        "gluttony",
		Sin:         "Gluttony",
		TopNotes:    []string{"caramel", "toasted sesame"},
		HeartNotes:  []string{"cocoa", "cinnamon"},
		BaseNotes:   []string{"vanilla absolute", "smoked cedar"},
		Description: "Opulent, sticky-sweet decadence, candlelit and unashamed.",
		Story:       "Gluttony licks the spoon clean and calls it worship.",
		Price:       135.0,
		InStock:     true,
	},
	{
		Name:        "Wrath",
		Slug:        "wrath",
		Sin:         "Wrath",
		TopNotes:    []string{"blood orange", "pink pepper"},
		HeartNotes:  []string{"clove", "leather"},
		BaseNotes:   []string{"smoke", "birch tar"},
		Description: "A spark to tinder. Heat, metal, and a vow.",
		Story:       "Wrath burns a clean line through the dark and calls it justice.",
		Price:       150.0,
		InStock:     true,
	},
	{
		Name:        "Sloth",
		Slug:        "sloth",
		Sin:         "Sloth",
		TopNotes:    []string{"lavender", "chamomile"},
		HeartNotes:  []string{"iris", "cashmere"},
		BaseNotes:   []string{"sandalwood", "white musk"},
		Description: "Soft corners, slow clocks. The world on mute.",
		Story:       "Sloth is a lullaby folded into wool.",
		Price:       130.0,
		InStock:     true,
	},
}

// SevenSinSlugs returns the slugs of the launch catalog, in catalog order.
func SevenSinSlugs() []string {
	out := make([]string, 0, len(SevenSins))
	for _, f := range SevenSins {
		out = append(out, f.Slug)
	}
	return out
}
