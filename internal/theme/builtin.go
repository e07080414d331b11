package theme

// Builtin constructs the registry of themes that are available without a
// config file. Each call returns a fresh collection.
func Builtin() *Collection {
	return &Collection{themes: []Theme{
		{Name: "standard", Colors: []uint32{
			0x000000, // black
			0xFFFFFF, // white
			0x708090, // slate gray
			0x0000FF, // blue
			0x40E0D0, // turquoise
			0xFFD700, // gold
			0x800080, // purple
			0x00FF00, // lime green
			0xFA8072, // salmon
			0x90EE90, // light green
			0x87421F, // brown
		}},
		{Name: "autumn", Colors: []uint32{0xF3B805, 0xF0A103, 0xD96801, 0x311B00, 0xBE2802}},
		{Name: "blues", Colors: []uint32{0x20D9DB, 0x23BDD4, 0x1A6FE0, 0x231E60, 0x11342F}},
		{Name: "rainbow", Colors: []uint32{0x1B00AF, 0x1FC3F7, 0xC8ED09, 0xFA1C09, 0xD81014}},
		{Name: "warm", Colors: []uint32{0x1F1C0B, 0x80362F, 0xF08C86, 0xDBD0D2, 0xF58758}},
	}}
}
