package tree

// DefaultTemplate is the stock tree. Digits mark blinking stars, '*' a
// generic star, '|' and '-' the trunk.
var DefaultTemplate = []string{
	"*",
	"*1*",
	"*2*3*",
	"*1*4***",
	"*3*2*1*4*",
	"*1***3*2*1*",
	"*2*1*4*3***1*",
	"4*3*2***4*3*2*1*",
	"      |||      ",
	"      |||      ",
}

type Kind int

const (
	KindBlank Kind = iota
	KindStar
	KindTrunk
)

// Unit is one rendered template character.
type Unit struct {
	Glyph rune
	Tag   rune // star identifier, zero for trunk and blank units
	Color string
	Kind  Kind
}

// Handle addresses a unit on a canvas.
type Handle struct {
	Row, Col int
}

// Star pairs a star unit's handle with its identifier.
type Star struct {
	Handle Handle
	Tag    rune
}

// Target receives rendered markup, replacing whatever it held.
type Target interface {
	Replace(rows [][]Unit)
}

// Classify converts a single template character into its unit.
func Classify(ch rune, p Palette) Unit {
	switch {
	case ch == GenericTag || IsBlink(ch):
		return Unit{Glyph: StarGlyph, Tag: ch, Color: p.StarColor(ch), Kind: KindStar}
	case IsTrunk(ch):
		return Unit{Glyph: ch, Color: p.TrunkColor(ch), Kind: KindTrunk}
	default:
		return Unit{Glyph: Blank, Kind: KindBlank}
	}
}

// Build converts every template line into a row of units.
func Build(template []string, p Palette) [][]Unit {
	rows := make([][]Unit, 0, len(template))
	for _, line := range template {
		runes := []rune(line)
		row := make([]Unit, len(runes))
		for i, ch := range runes {
			row[i] = Classify(ch, p)
		}
		rows = append(rows, row)
	}
	return rows
}

// Render builds the template and replaces the target's contents with it.
func Render(t Target, template []string, p Palette) {
	t.Replace(Build(template, p))
}
