package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 贴图资源名
// 靶子贴图名与实体标签一致（见 types.EnemyKind）
const (
	SpriteBlast      = "blast"
	SpriteWaveRight  = "waveRight"
	SpriteWaveLeft   = "waveLeft"
	SpriteShelf      = "shelf"
	SpriteBackground = "background"
)

// ResourceManager is responsible for centralized management of game resources.
// All sprites are drawn procedurally with ebiten/vector on first use and cached,
// so the game ships without image files.
//
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for generated images: name -> Image
	fontFace   text.Face                // HUD font face
	shelfWidth int

	// 背景尺寸，通常等于窗口尺寸
	backgroundWidth, backgroundHeight int
}

// NewResourceManager creates a ResourceManager with empty caches.
//
// Parameters:
//   - width, height: logical screen size; the background matches it and
//     shelves span its full width.
func NewResourceManager(width, height int) *ResourceManager {
	return &ResourceManager{
		imageCache:       make(map[string]*ebiten.Image),
		shelfWidth:       width,
		backgroundWidth:  width,
		backgroundHeight: height,
	}
}

// GetSprite returns the cached sprite for name, generating it on first use.
// Unknown names fall back to the target sprite.
func (rm *ResourceManager) GetSprite(name string) *ebiten.Image {
	if img, exists := rm.imageCache[name]; exists {
		return img
	}

	img := rm.buildSprite(name)
	rm.imageCache[name] = img
	return img
}

// PreloadSprites generates the given sprites up front.
func (rm *ResourceManager) PreloadSprites(names []string) {
	for _, name := range names {
		rm.GetSprite(name)
	}
	log.Printf("[ResourceManager] Preloaded %d sprites", len(names))
}

// FontFace returns the HUD font face (basicfont 7x13 wrapped for text/v2).
func (rm *ResourceManager) FontFace() text.Face {
	if rm.fontFace == nil {
		rm.fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return rm.fontFace
}

func (rm *ResourceManager) buildSprite(name string) *ebiten.Image {
	switch name {
	case "bomb":
		return drawBomb()
	case "duck":
		return drawDuck()
	case "boat":
		return drawBoat()
	case SpriteBlast:
		return drawBlast()
	case SpriteWaveRight:
		return drawWave(false)
	case SpriteWaveLeft:
		return drawWave(true)
	case SpriteShelf:
		return drawShelf(rm.shelfWidth)
	case SpriteBackground:
		return drawBackground(rm.backgroundWidth, rm.backgroundHeight)
	case "target":
		return drawTarget()
	default:
		log.Printf("[ResourceManager] Warning: Unknown sprite %q, using target", name)
		return drawTarget()
	}
}

var (
	colorRed       = color.RGBA{R: 210, G: 30, B: 40, A: 255}
	colorWhite     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorYellow    = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	colorOrange    = color.RGBA{R: 245, G: 130, B: 20, A: 255}
	colorBlack     = color.RGBA{R: 25, G: 25, B: 30, A: 255}
	colorBrown     = color.RGBA{R: 140, G: 85, B: 40, A: 255}
	colorDarkBrown = color.RGBA{R: 95, G: 55, B: 25, A: 255}
	colorGrey      = color.RGBA{R: 150, G: 155, B: 165, A: 255}
	colorWaveBlue  = color.RGBA{R: 40, G: 110, B: 200, A: 255}
	colorFoam      = color.RGBA{R: 190, G: 225, B: 250, A: 255}
	colorTentRed   = color.RGBA{R: 170, G: 35, B: 50, A: 255}
	colorTentCream = color.RGBA{R: 245, G: 230, B: 200, A: 255}
)

func drawTarget() *ebiten.Image {
	img := ebiten.NewImage(100, 100)
	for i, r := range []float32{48, 38, 28, 18, 8} {
		clr := colorRed
		if i%2 == 1 {
			clr = colorWhite
		}
		vector.DrawFilledCircle(img, 50, 50, r, clr, true)
	}
	// 靶杆
	vector.DrawFilledRect(img, 47, 90, 6, 10, colorDarkBrown, true)
	return img
}

func drawDuck() *ebiten.Image {
	img := ebiten.NewImage(110, 100)
	vector.DrawFilledCircle(img, 50, 65, 32, colorYellow, true) // 身体
	vector.DrawFilledCircle(img, 78, 32, 18, colorYellow, true) // 头
	vector.DrawFilledRect(img, 92, 30, 16, 8, colorOrange, true)
	vector.DrawFilledCircle(img, 82, 26, 4, colorBlack, true) // 眼睛
	vector.StrokeLine(img, 30, 65, 55, 72, 3, colorOrange, true)
	return img
}

func drawBoat() *ebiten.Image {
	img := ebiten.NewImage(140, 90)
	vector.DrawFilledRect(img, 10, 60, 120, 24, colorBrown, true) // 船身
	vector.DrawFilledRect(img, 68, 8, 5, 52, colorDarkBrown, true)
	vector.DrawFilledRect(img, 32, 14, 34, 40, colorWhite, true) // 帆
	vector.DrawFilledRect(img, 75, 20, 26, 34, colorRed, true)
	return img
}

func drawBomb() *ebiten.Image {
	img := ebiten.NewImage(90, 90)
	vector.DrawFilledCircle(img, 45, 52, 34, colorBlack, true)
	vector.DrawFilledRect(img, 42, 8, 6, 14, colorGrey, true) // 引信
	vector.DrawFilledCircle(img, 45, 7, 6, colorOrange, true)
	vector.DrawFilledCircle(img, 34, 42, 7, colorGrey, true) // 高光
	return img
}

func drawBlast() *ebiten.Image {
	img := ebiten.NewImage(80, 80)
	vector.DrawFilledRect(img, 8, 34, 64, 12, colorOrange, true)
	vector.DrawFilledRect(img, 34, 8, 12, 64, colorOrange, true)
	vector.DrawFilledCircle(img, 40, 40, 22, colorOrange, true)
	vector.DrawFilledCircle(img, 40, 40, 13, colorYellow, true)
	vector.DrawFilledCircle(img, 40, 40, 5, colorWhite, true)
	return img
}

func drawWave(mirrored bool) *ebiten.Image {
	img := ebiten.NewImage(110, 60)
	vector.DrawFilledRect(img, 0, 30, 110, 30, colorWaveBlue, true)
	crestX := float32(70)
	if mirrored {
		crestX = 40
	}
	vector.DrawFilledCircle(img, crestX, 32, 26, colorWaveBlue, true)
	vector.StrokeCircle(img, crestX, 32, 26, 3, colorFoam, true)
	return img
}

func drawShelf(width int) *ebiten.Image {
	if width <= 0 {
		width = 1
	}
	img := ebiten.NewImage(width, 30)
	img.Fill(colorBrown)
	vector.DrawFilledRect(img, 0, 24, float32(width), 6, colorDarkBrown, false)
	return img
}

// drawBackground 马戏团帐篷条纹背景
func drawBackground(width, height int) *ebiten.Image {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	img := ebiten.NewImage(width, height)
	img.Fill(colorTentCream)

	const stripe = 64
	for x := 0; x < width; x += stripe * 2 {
		vector.DrawFilledRect(img, float32(x), 0, stripe, float32(height), colorTentRed, false)
	}
	return img
}
