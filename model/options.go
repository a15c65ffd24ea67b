package model

// Option catalogs for the selection steps. Declaration order is catalog
// order: selections are flattened into stored text in this order.
var (
	NetworkingOptions = []string{
		"Yangi tanishlar",
		"Hamkorlik imkoniyatlari",
		"Tajriba almashish",
		"Ilhom va g‘oyalar",
	}

	LanguageOptions = []string{
		"O‘zbekcha",
		"Ruscha",
		"Inglizcha",
	}

	FormatOptions = []string{
		"Oflayn uchrashuv",
		"Onlayn format",
		"Gibrid",
	}
)
