package assets

import (
	"image"
	"image/color"

	"durotar/internal/game"
	"durotar/internal/maps"
	"durotar/internal/render"
	"durotar/internal/tiles"
)

// BaseTileSize is the pixel size of the built-in art before scaling.
const BaseTileSize = 16

// palette keys: g skin, d shaded skin, k eye, t tusk, h hair, a armor,
// b belt, p trousers, s boots.
var palette = map[byte]color.RGBA{
	'g': {86, 150, 64, 255},
	'd': {52, 98, 40, 255},
	'k': {24, 20, 16, 255},
	't': {238, 232, 205, 255},
	'h': {44, 32, 22, 255},
	'a': {128, 84, 44, 255},
	'b': {72, 46, 26, 255},
	'p': {92, 72, 52, 255},
	's': {50, 36, 26, 255},
}

// Body rows 0-12 per facing. Right is the mirror of left.
var (
	bodyDown = []string{
		"......hhhh......",
		".....hhhhhh.....",
		".....gggggg.....",
		".....gkggkg.....",
		".....gggggg.....",
		".....gtggtg.....",
		"......gggg......",
		"...aaaaaaaaaa...",
		"..gaaaaaaaaaag..",
		"..gaaaaaaaaaag..",
		"..g.bbbbbbbb.g..",
		"....pppppppp....",
		"....pppppppp....",
	}
	bodyUp = []string{
		"......hhhh......",
		".....hhhhhh.....",
		".....hhhhhh.....",
		".....hhhhhh.....",
		".....dggggd.....",
		".....gggggg.....",
		"......gggg......",
		"...aaaaaaaaaa...",
		"..gaaaaaaaaaag..",
		"..gaaaaaaaaaag..",
		"..g.bbbbbbbb.g..",
		"....pppppppp....",
		"....pppppppp....",
	}
	bodyLeft = []string{
		"......hhhh......",
		".....hhhhh......",
		"....ggggghh.....",
		"....kgggggh.....",
		"....gggggg......",
		"...tgggggg......",
		"......gggg......",
		"....aaaaaaaa....",
		"....gaaaaaaa....",
		"....gaaaaaaa....",
		"....gbbbbbbb....",
		".....pppppp.....",
		".....pppppp.....",
	}
)

// Leg rows 13-15, indexed by animation frame.
var (
	legsFront = [3][]string{
		{"....pp....pp....", "....pp....pp....", "...sss....sss..."},
		{"....pp....pp....", "...sss....pp....", "..........sss..."},
		{"....pp....pp....", "....pp...sss....", "...sss.........."},
	}
	legsSide = [3][]string{
		{".....pp..pp.....", ".....pp..pp.....", "....sss.sss....."},
		{"....pp....pp....", "...pp......pp...", "..sss......sss.."},
		{".....pp..pp.....", "......pppp......", ".....ssssss....."},
	}
)

// paint renders rows of palette keys into an image. '.' is transparent.
func paint(rows []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseTileSize, BaseTileSize))
	for y, row := range rows {
		for x := 0; x < len(row) && x < BaseTileSize; x++ {
			if c, ok := palette[row[x]]; ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func mirror(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		b := []byte(row)
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		out[i] = string(b)
	}
	return out
}

func orcFrames(body []string, legs [3][]string) render.Frames {
	var f render.Frames
	for frame := range legs {
		rows := append(append([]string{}, body...), legs[frame]...)
		f[frame] = paint(rows)
	}
	return f
}

// tileHash returns a deterministic pseudo-random value for pixel (x, y).
func tileHash(x, y int) uint {
	h := uint(x)*374761393 + uint(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func fieldImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseTileSize, BaseTileSize))
	base := color.RGBA{74, 138, 58, 255}
	light := color.RGBA{98, 166, 76, 255}
	dark := color.RGBA{58, 112, 46, 255}
	for y := 0; y < BaseTileSize; y++ {
		for x := 0; x < BaseTileSize; x++ {
			c := base
			switch tileHash(x, y) % 11 {
			case 0:
				c = light
			case 1:
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func borderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseTileSize, BaseTileSize))
	stone := color.RGBA{122, 112, 100, 255}
	mortar := color.RGBA{78, 70, 62, 255}
	for y := 0; y < BaseTileSize; y++ {
		for x := 0; x < BaseTileSize; x++ {
			c := stone
			course := y / 4
			offset := 0
			if course%2 == 1 {
				offset = 4
			}
			if y%4 == 3 || (x+offset)%8 == 7 {
				c = mortar
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func waterImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseTileSize, BaseTileSize))
	deep := color.RGBA{38, 86, 168, 255}
	crest := color.RGBA{92, 142, 212, 255}
	for y := 0; y < BaseTileSize; y++ {
		for x := 0; x < BaseTileSize; x++ {
			c := deep
			if y%5 == 1 && (x+y)%7 < 3 {
				c = crest
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Builtin returns the procedurally drawn tile set and orc walker. Tile ids
// match maps.DefaultWorld.
func Builtin() (*Bundle, error) {
	reg, err := tiles.New([]tiles.TileType{
		{ID: maps.DefaultGround, Name: "field", Image: fieldImage(), Passable: true},
		{ID: maps.DefaultBorder, Name: "border", Image: borderImage()},
		{ID: maps.DefaultWater, Name: "water", Image: waterImage()},
	})
	if err != nil {
		return nil, err
	}

	sprites, err := render.NewSpriteSet(map[game.Direction]render.Frames{
		game.DirDown:  orcFrames(bodyDown, legsFront),
		game.DirUp:    orcFrames(bodyUp, legsFront),
		game.DirLeft:  orcFrames(bodyLeft, legsSide),
		game.DirRight: orcFrames(mirror(bodyLeft), [3][]string{mirror(legsSide[0]), mirror(legsSide[1]), mirror(legsSide[2])}),
	})
	if err != nil {
		return nil, err
	}
	return &Bundle{Tiles: reg, Sprites: sprites, Source: "builtin"}, nil
}
