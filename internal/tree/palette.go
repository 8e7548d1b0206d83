package tree

const (
	StarGlyph  = '*'
	GenericTag = '*'
	Blank      = '\u00a0'
)

// BlinkIDs lists the blinking star identifiers in declaration order.
// Rotation indices are positions in this slice.
var BlinkIDs = []rune{'1', '2', '3', '4'}

// TrunkTokens are rendered literally with a fixed color.
var TrunkTokens = []rune{'|', '-'}

// Palette maps star identifiers and trunk tokens to display colors.
type Palette struct {
	Name    string
	Stars   map[rune]string
	Generic string
	Trunk   map[rune]string
}

var (
	PaletteClassic = Palette{
		Name: "classic",
		Stars: map[rune]string{
			'1': "#ff69b4", // Hot pink
			'2': "#2ecc71",
			'3': "#f1c40f",
			'4': "#3498db",
		},
		Generic: "#ffffff",
		Trunk:   map[rune]string{'|': "#FF9BFD", '-': "#ffffff"},
	}

	PaletteFrost = Palette{
		Name: "frost",
		Stars: map[rune]string{
			'1': "#a0e9ff",
			'2': "#cdf5fd",
			'3': "#89cff3",
			'4': "#00a9ff",
		},
		Generic: "#e8f6ff",
		Trunk:   map[rune]string{'|': "#8b6b4a", '-': "#e8f6ff"},
	}

	PaletteCandy = Palette{
		Name: "candy",
		Stars: map[rune]string{
			'1': "#ff4757",
			'2': "#ffffff",
			'3': "#ff6b81",
			'4': "#eccc68",
		},
		Generic: "#ffe0e6",
		Trunk:   map[rune]string{'|': "#a0522d", '-': "#ffffff"},
	}

	Palettes = []Palette{PaletteClassic, PaletteFrost, PaletteCandy}
)

// GetPalette returns a palette preset by name.
func GetPalette(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return Palette{}, false
}

// PaletteNames returns list of available palette names
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Clone returns a deep copy so overrides never leak into the presets.
func (p Palette) Clone() Palette {
	out := Palette{
		Name:    p.Name,
		Generic: p.Generic,
		Stars:   make(map[rune]string, len(p.Stars)),
		Trunk:   make(map[rune]string, len(p.Trunk)),
	}
	for k, v := range p.Stars {
		out.Stars[k] = v
	}
	for k, v := range p.Trunk {
		out.Trunk[k] = v
	}
	return out
}

// StarColor looks up a star identifier, falling back to the generic color.
func (p Palette) StarColor(id rune) string {
	if c, ok := p.Stars[id]; ok && c != "" {
		return c
	}
	return p.Generic
}

func (p Palette) TrunkColor(tok rune) string {
	if c, ok := p.Trunk[tok]; ok && c != "" {
		return c
	}
	return p.Generic
}

// IsBlink reports whether id is one of the blinking identifiers.
func IsBlink(id rune) bool {
	for _, b := range BlinkIDs {
		if b == id {
			return true
		}
	}
	return false
}

func IsTrunk(tok rune) bool {
	for _, t := range TrunkTokens {
		if t == tok {
			return true
		}
	}
	return false
}
