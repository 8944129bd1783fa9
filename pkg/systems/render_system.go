package systems

import (
	"sort"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有带贴图的实体
//
// 绘制顺序按 SpriteComponent.Layer 从小到大（背景 → 水波 → 货架 → 靶子 → 掉落物 → 弹孔），
// 同层按实体ID（创建顺序）。贴图以实体位置为中心，支持旋转、缩放和透明度。
// 场地坐标 Y 轴向上，绘制时翻转为屏幕坐标。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	drawList      []ecs.EntityID // 复用的排序缓冲区
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		drawList:      make([]ecs.EntityID, 0, 128),
	}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		s.drawEntity(screen, id)
	}
}

// DrawOrder 返回本帧的绘制顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	s.drawList = append(s.drawList[:0], ids...)

	// 查询结果已按ID排序，稳定排序保证同层按创建顺序
	sort.SliceStable(s.drawList, func(i, j int) bool {
		return s.layerOf(s.drawList[i]) < s.layerOf(s.drawList[j])
	})
	return s.drawList
}

func (s *RenderSystem) layerOf(id ecs.EntityID) int {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	return sprite.Layer
}

// drawEntity 绘制单个实体
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Image == nil {
		return
	}

	alpha := 1.0
	if a, ok := ecs.GetComponent[*components.AlphaComponent](s.entityManager, id); ok {
		alpha = a.Alpha
	}
	if alpha <= 0 {
		return
	}

	bounds := sprite.Image.Bounds()
	op := &ebiten.DrawImageOptions{}

	// 以贴图中心为锚点
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		op.GeoM.Scale(scale.ScaleX, scale.ScaleY)
	}

	// 场地坐标逆时针为正，屏幕 Y 轴向下，需要取反
	if rot, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok && rot.Angle != 0 {
		op.GeoM.Rotate(-rot.Angle)
	}

	op.GeoM.Translate(pos.X, config.FieldToScreenY(pos.Y))
	op.ColorScale.ScaleAlpha(float32(alpha))

	screen.DrawImage(sprite.Image, op)
}
