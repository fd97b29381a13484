package physics

import (
	"log"
	"math"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
)

// restSpeed 受重力刚体反弹后低于此速度（像素/秒）时直接停住，避免在平台上抖动
const restSpeed = 12.0

// World 街机物理服务
//
// 职责：
//   - 创建刚体并提供速度、反弹、重力、世界边界等设置接口
//   - 每帧积分速度与重力，处理世界边界和实体碰撞的位置修正
//   - 按注册的分组对上报 Solid / Overlap / WorldBounds 接触
//   - 支持全局暂停（Pause 后 Step 不再推进，也不产生接触）
//
// 所有刚体都存放在 EntityManager 中，BodyHandle 就是 EntityID。
type World struct {
	em      *ecs.EntityManager
	width   float64
	height  float64
	gravity float64
	paused  bool

	colliders []GroupPair
	overlaps  []GroupPair
}

// NewWorld 创建物理世界
//
// 参数:
//   - em: 实体管理器，刚体组件存放于此
//   - width, height: 世界尺寸（像素）
//   - gravity: 世界重力（像素/秒²）
//
// 返回:
//   - *World: 物理世界实例
func NewWorld(em *ecs.EntityManager, width, height, gravity float64) *World {
	return &World{
		em:      em,
		width:   width,
		height:  height,
		gravity: gravity,
	}
}

// EntityManager 返回刚体所在的实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// AddCollider 注册实体碰撞对（会做位置修正）
func (w *World) AddCollider(a, b components.Group) {
	w.colliders = append(w.colliders, GroupPair{A: a, B: b})
}

// AddOverlap 注册重叠检测对（只上报，不修正）
func (w *World) AddOverlap(a, b components.Group) {
	w.overlaps = append(w.overlaps, GroupPair{A: a, B: b})
}

// CreateBody 创建一个激活的动态刚体
//
// 参数:
//   - group: 实体分组
//   - x, y: 中心点坐标
//   - width, height: 碰撞盒尺寸
//
// 返回:
//   - ecs.EntityID: 刚体句柄
func (w *World) CreateBody(group components.Group, x, y, width, height float64) ecs.EntityID {
	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.em, id, &components.VelocityComponent{})
	ecs.AddComponent(w.em, id, &components.GroupComponent{Group: group})
	ecs.AddComponent(w.em, id, &components.BodyComponent{
		Width:        width,
		Height:       height,
		AllowGravity: true,
		Active:       true,
	})
	return id
}

// CreateStaticBody 创建静态刚体（平台）
func (w *World) CreateStaticBody(group components.Group, x, y, width, height float64) ecs.EntityID {
	id := w.CreateBody(group, x, y, width, height)
	if body, ok := w.body(id); ok {
		body.Static = true
		body.AllowGravity = false
	}
	return id
}

func (w *World) body(id ecs.EntityID) (*components.BodyComponent, bool) {
	return ecs.GetComponent[*components.BodyComponent](w.em, id)
}

// SetVelocity 设置刚体速度
func (w *World) SetVelocity(id ecs.EntityID, vx, vy float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](w.em, id); ok {
		vel.VX = vx
		vel.VY = vy
	}
}

// SetVelocityX 只设置水平速度
func (w *World) SetVelocityX(id ecs.EntityID, vx float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](w.em, id); ok {
		vel.VX = vx
	}
}

// SetVelocityY 只设置垂直速度
func (w *World) SetVelocityY(id ecs.EntityID, vy float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](w.em, id); ok {
		vel.VY = vy
	}
}

// SetBounce 设置反弹系数
func (w *World) SetBounce(id ecs.EntityID, bx, by float64) {
	if body, ok := w.body(id); ok {
		body.BounceX = bx
		body.BounceY = by
	}
}

// SetGravity 设置刚体额外重力
func (w *World) SetGravity(id ecs.EntityID, gravityY float64) {
	if body, ok := w.body(id); ok {
		body.GravityY = gravityY
	}
}

// SetAllowGravity 设置是否受世界重力影响
func (w *World) SetAllowGravity(id ecs.EntityID, allow bool) {
	if body, ok := w.body(id); ok {
		body.AllowGravity = allow
	}
}

// SetCollideWorldBounds 设置是否被世界边界阻挡，report 为 true 时碰到边界会上报接触
func (w *World) SetCollideWorldBounds(id ecs.EntityID, collide, report bool) {
	if body, ok := w.body(id); ok {
		body.CollideWorldBounds = collide
		body.OnWorldBounds = report
	}
}

// EnableBody 在指定位置重新激活刚体，速度清零
func (w *World) EnableBody(id ecs.EntityID, x, y float64) {
	body, ok := w.body(id)
	if !ok {
		return
	}
	body.Active = true
	body.Touching = components.Touching{}
	body.Blocked = components.Touching{}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id); ok {
		pos.X = x
		pos.Y = y
	}
	w.SetVelocity(id, 0, 0)
}

// DisableBody 停用刚体（保留实体），返回刚体此前是否处于激活状态
func (w *World) DisableBody(id ecs.EntityID) bool {
	body, ok := w.body(id)
	if !ok || !body.Active {
		return false
	}
	body.Active = false
	body.Touching = components.Touching{}
	body.Blocked = components.Touching{}
	return true
}

// IsActive 检查刚体是否激活
func (w *World) IsActive(id ecs.EntityID) bool {
	body, ok := w.body(id)
	return ok && body.Active
}

// Pause 全局冻结物理步进
func (w *World) Pause() {
	if !w.paused {
		log.Printf("[PhysicsWorld] Paused")
	}
	w.paused = true
}

// Resume 恢复物理步进
func (w *World) Resume() {
	if w.paused {
		log.Printf("[PhysicsWorld] Resumed")
	}
	w.paused = false
}

// Paused 是否处于冻结状态
func (w *World) Paused() bool {
	return w.paused
}

// Step 推进一帧物理模拟
//
// 参数:
//   - deltaTime: 帧间隔（秒）
//
// 返回:
//   - []Contact: 本帧接触报告，按注册顺序和实体创建顺序排列；暂停时返回 nil
func (w *World) Step(deltaTime float64) []Contact {
	if w.paused {
		return nil
	}

	var contacts []Contact

	bodies := ecs.GetEntitiesWith3[
		*components.BodyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](w.em)

	// 1. 积分与世界边界
	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.BodyComponent](w.em, id)
		if !body.Active {
			continue
		}
		body.Touching = components.Touching{}
		body.Blocked = components.Touching{}
		if body.Static {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)

		gravity := body.GravityY
		if body.AllowGravity {
			gravity += w.gravity
		}
		vel.VY += gravity * deltaTime
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if body.CollideWorldBounds && w.resolveWorldBounds(body, pos, vel) && body.OnWorldBounds {
			contacts = append(contacts, Contact{
				Kind:   ContactWorldBounds,
				A:      id,
				GroupA: w.groupOf(id),
				GroupB: components.GroupWorldBounds,
			})
		}
	}

	// 2. 实体碰撞（位置修正）
	for _, pair := range w.colliders {
		w.eachIntersecting(pair, func(a, b ecs.EntityID) {
			w.separate(a, b)
			contacts = append(contacts, Contact{Kind: ContactSolid, A: a, B: b, GroupA: pair.A, GroupB: pair.B})
		})
	}

	// 3. 重叠检测（只上报）
	for _, pair := range w.overlaps {
		w.eachIntersecting(pair, func(a, b ecs.EntityID) {
			contacts = append(contacts, Contact{Kind: ContactOverlap, A: a, B: b, GroupA: pair.A, GroupB: pair.B})
		})
	}

	return contacts
}

func (w *World) groupOf(id ecs.EntityID) components.Group {
	if g, ok := ecs.GetComponent[*components.GroupComponent](w.em, id); ok {
		return g.Group
	}
	return components.GroupNone
}

// activeMembers 返回分组内所有激活的刚体
func (w *World) activeMembers(group components.Group) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.GroupComponent, *components.BodyComponent](w.em)
	result := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		g, _ := ecs.GetComponent[*components.GroupComponent](w.em, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](w.em, id)
		if g.Group == group && body.Active {
			result = append(result, id)
		}
	}
	return result
}

// eachIntersecting 对分组对中所有相交的激活刚体调用 fn
// 每次比较前重新读取激活状态和位置，前面的修正会影响后面的判定
func (w *World) eachIntersecting(pair GroupPair, fn func(a, b ecs.EntityID)) {
	as := w.activeMembers(pair.A)
	bs := w.activeMembers(pair.B)
	for _, a := range as {
		for _, b := range bs {
			if a == b {
				continue
			}
			ra, okA := w.rectOf(a)
			rb, okB := w.rectOf(b)
			if !okA || !okB {
				continue
			}
			if intersects(ra, rb) {
				fn(a, b)
			}
		}
	}
}

func (w *World) rectOf(id ecs.EntityID) (rect, bool) {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](w.em, id)
	body, ok2 := w.body(id)
	if !ok1 || !ok2 || !body.Active {
		return rect{}, false
	}
	return boundsOf(pos, body), true
}

// resolveWorldBounds 把刚体限制在世界范围内，返回是否碰到了边界
func (w *World) resolveWorldBounds(body *components.BodyComponent, pos *components.PositionComponent, vel *components.VelocityComponent) bool {
	hit := false
	halfW := body.Width / 2
	halfH := body.Height / 2

	if pos.X-halfW < 0 {
		pos.X = halfW
		vel.VX = math.Abs(vel.VX) * body.BounceX
		body.Blocked.Left = true
		hit = true
	} else if pos.X+halfW > w.width {
		pos.X = w.width - halfW
		vel.VX = -math.Abs(vel.VX) * body.BounceX
		body.Blocked.Right = true
		hit = true
	}

	if pos.Y-halfH < 0 {
		pos.Y = halfH
		vel.VY = math.Abs(vel.VY) * body.BounceY
		body.Blocked.Up = true
		hit = true
	} else if pos.Y+halfH > w.height {
		pos.Y = w.height - halfH
		vel.VY = -math.Abs(vel.VY) * body.BounceY
		if body.AllowGravity && math.Abs(vel.VY) < restSpeed {
			vel.VY = 0
		}
		body.Blocked.Down = true
		hit = true
	}

	return hit
}

// separate 沿穿透最浅的轴把两个刚体分开
// 静态刚体不移动；两个动态刚体各承担一半位移
func (w *World) separate(a, b ecs.EntityID) {
	bodyA, _ := w.body(a)
	bodyB, _ := w.body(b)
	if bodyA.Static && bodyB.Static {
		return
	}

	posA, _ := ecs.GetComponent[*components.PositionComponent](w.em, a)
	posB, _ := ecs.GetComponent[*components.PositionComponent](w.em, b)
	velA, _ := ecs.GetComponent[*components.VelocityComponent](w.em, a)
	velB, _ := ecs.GetComponent[*components.VelocityComponent](w.em, b)

	dx, dy := penetration(boundsOf(posA, bodyA), boundsOf(posB, bodyB))

	shareA, shareB := 0.5, 0.5
	if bodyA.Static {
		shareA, shareB = 0, 1
	} else if bodyB.Static {
		shareA, shareB = 1, 0
	}

	if dy <= dx {
		// 垂直分离
		if posA.Y < posB.Y {
			posA.Y -= dy * shareA
			posB.Y += dy * shareB
			bodyA.Touching.Down = true
			bodyB.Touching.Up = true
			bounceY(bodyA, velA, shareA, -1)
			bounceY(bodyB, velB, shareB, 1)
		} else {
			posA.Y += dy * shareA
			posB.Y -= dy * shareB
			bodyA.Touching.Up = true
			bodyB.Touching.Down = true
			bounceY(bodyA, velA, shareA, 1)
			bounceY(bodyB, velB, shareB, -1)
		}
		return
	}

	// 水平分离
	if posA.X < posB.X {
		posA.X -= dx * shareA
		posB.X += dx * shareB
		bodyA.Touching.Right = true
		bodyB.Touching.Left = true
		bounceX(bodyA, velA, shareA, -1)
		bounceX(bodyB, velB, shareB, 1)
	} else {
		posA.X += dx * shareA
		posB.X -= dx * shareB
		bodyA.Touching.Left = true
		bodyB.Touching.Right = true
		bounceX(bodyA, velA, shareA, 1)
		bounceX(bodyB, velB, shareB, -1)
	}
}

// bounceY 让刚体沿 sign 方向弹开（sign=-1 向上）
// 只在刚体正朝对方运动时才反转速度
func bounceY(body *components.BodyComponent, vel *components.VelocityComponent, share, sign float64) {
	if share == 0 {
		return
	}
	if vel.VY*sign < 0 {
		vel.VY = sign * math.Abs(vel.VY) * body.BounceY
		if body.AllowGravity && math.Abs(vel.VY) < restSpeed {
			vel.VY = 0
		}
	}
}

func bounceX(body *components.BodyComponent, vel *components.VelocityComponent, share, sign float64) {
	if share == 0 {
		return
	}
	if vel.VX*sign < 0 {
		vel.VX = sign * math.Abs(vel.VX) * body.BounceX
	}
}
