package systems

import (
	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// EventKind 碰撞产生的领域事件类型
type EventKind int

const (
	// EventProjectileExpired 子弹碰到平台或世界边界
	EventProjectileExpired EventKind = iota
	// EventCollect 玩家收集星星
	EventCollect
	// EventMutualDespawn 子弹击中炸弹，两者同时消失
	EventMutualDespawn
	// EventGameOver 玩家碰到炸弹
	EventGameOver
)

// String 返回事件名称
func (k EventKind) String() string {
	switch k {
	case EventProjectileExpired:
		return "projectile-expired"
	case EventCollect:
		return "collect"
	case EventMutualDespawn:
		return "mutual-despawn"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event 领域事件
//
// 各事件中 Subject / Other 的含义：
//   - ProjectileExpired: Subject=子弹
//   - Collect:           Subject=星星, Other=玩家
//   - MutualDespawn:     Subject=炸弹, Other=子弹
//   - GameOver:          Subject=玩家, Other=炸弹
type Event struct {
	Kind    EventKind
	Subject ecs.EntityID
	Other   ecs.EntityID
}

// consumes 返回事件会停用的实体
func (e Event) consumes() []ecs.EntityID {
	switch e.Kind {
	case EventProjectileExpired, EventCollect:
		return []ecs.EntityID{e.Subject}
	case EventMutualDespawn:
		return []ecs.EntityID{e.Subject, e.Other}
	default:
		return nil
	}
}

// requires 返回事件生效时必须处于激活状态的实体
func (e Event) requires() []ecs.EntityID {
	switch e.Kind {
	case EventGameOver:
		return []ecs.EntityID{e.Subject, e.Other}
	case EventCollect:
		return []ecs.EntityID{e.Subject, e.Other}
	default:
		return e.consumes()
	}
}

// ContactHandler 把一次接触翻译成领域事件的纯函数
// 返回 false 表示该接触没有领域效果（只有物理修正）
type ContactHandler func(c physics.Contact) (Event, bool)

// ActiveChecker 查询刚体是否激活
type ActiveChecker interface {
	IsActive(id ecs.EntityID) bool
}

// noEvent 只做物理修正的接触
func noEvent(physics.Contact) (Event, bool) { return Event{}, false }

func expireProjectile(c physics.Contact) (Event, bool) {
	return Event{Kind: EventProjectileExpired, Subject: c.A}, true
}

func collectStar(c physics.Contact) (Event, bool) {
	return Event{Kind: EventCollect, Subject: c.B, Other: c.A}, true
}

func despawnBoth(c physics.Contact) (Event, bool) {
	return Event{Kind: EventMutualDespawn, Subject: c.A, Other: c.B}, true
}

func hitHazard(c physics.Contact) (Event, bool) {
	return Event{Kind: EventGameOver, Subject: c.A, Other: c.B}, true
}

// DefaultContactTable 返回关卡使用的碰撞查找表，键为 (GroupA, GroupB)
func DefaultContactTable() map[physics.GroupPair]ContactHandler {
	return map[physics.GroupPair]ContactHandler{
		{A: components.GroupPlayer, B: components.GroupPlatform}:        noEvent,
		{A: components.GroupCollectible, B: components.GroupPlatform}:   noEvent,
		{A: components.GroupHazard, B: components.GroupPlatform}:        noEvent,
		{A: components.GroupProjectile, B: components.GroupPlatform}:    expireProjectile,
		{A: components.GroupProjectile, B: components.GroupWorldBounds}: expireProjectile,
		{A: components.GroupPlayer, B: components.GroupCollectible}:     collectStar,
		{A: components.GroupHazard, B: components.GroupProjectile}:      despawnBoth,
		{A: components.GroupPlayer, B: components.GroupHazard}:          hitHazard,
	}
}

// CollisionResolver 把物理接触翻译成领域事件
//
// 同一批接触中：
//   - 涉及已停用实体的接触被忽略
//   - 一个实体最多被一个事件停用（重复上报不会重复计分）
//   - 最多产生一个 GameOver
type CollisionResolver struct {
	table  map[physics.GroupPair]ContactHandler
	active ActiveChecker
}

// NewCollisionResolver 使用默认查找表创建解析器
func NewCollisionResolver(active ActiveChecker) *CollisionResolver {
	return NewCollisionResolverWithTable(active, DefaultContactTable())
}

// NewCollisionResolverWithTable 使用自定义查找表创建解析器
func NewCollisionResolverWithTable(active ActiveChecker, table map[physics.GroupPair]ContactHandler) *CollisionResolver {
	return &CollisionResolver{
		table:  table,
		active: active,
	}
}

// Handler 查找分组对的处理函数
func (r *CollisionResolver) Handler(a, b components.Group) (ContactHandler, bool) {
	h, ok := r.table[physics.GroupPair{A: a, B: b}]
	return h, ok
}

// Resolve 解析一批接触，按接触顺序返回事件
func (r *CollisionResolver) Resolve(contacts []physics.Contact) []Event {
	if len(contacts) == 0 {
		return nil
	}

	var events []Event
	claimed := make(map[ecs.EntityID]bool)
	gameOver := false

	for _, c := range contacts {
		handler, ok := r.Handler(c.GroupA, c.GroupB)
		if !ok || handler == nil {
			continue
		}
		ev, ok := handler(c)
		if !ok {
			continue
		}
		if !r.usable(ev, claimed) {
			continue
		}
		if ev.Kind == EventGameOver {
			if gameOver {
				continue
			}
			gameOver = true
		}
		for _, id := range ev.consumes() {
			claimed[id] = true
		}
		events = append(events, ev)
	}

	return events
}

// usable 事件依赖的实体都激活且未被本批次其他事件占用
func (r *CollisionResolver) usable(ev Event, claimed map[ecs.EntityID]bool) bool {
	for _, id := range ev.requires() {
		if claimed[id] {
			return false
		}
		if r.active != nil && !r.active.IsActive(id) {
			return false
		}
	}
	return true
}
