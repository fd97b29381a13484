package systems

import (
	"reflect"
	"testing"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// fakeActive 测试用激活表，未列出的实体视为激活
type fakeActive map[ecs.EntityID]bool

func (f fakeActive) IsActive(id ecs.EntityID) bool {
	active, ok := f[id]
	return !ok || active
}

func contact(kind physics.ContactKind, a, b ecs.EntityID, ga, gb components.Group) physics.Contact {
	return physics.Contact{Kind: kind, A: a, B: b, GroupA: ga, GroupB: gb}
}

const (
	testPlayer   ecs.EntityID = 1
	testPlatform ecs.EntityID = 2
	testStar     ecs.EntityID = 3
	testStar2    ecs.EntityID = 4
	testBomb     ecs.EntityID = 5
	testBullet   ecs.EntityID = 6
	testBullet2  ecs.EntityID = 7
)

func TestCollisionResolver_Table(t *testing.T) {
	tests := []struct {
		name string
		c    physics.Contact
		want []Event
	}{
		{
			name: "玩家落在平台上",
			c:    contact(physics.ContactSolid, testPlayer, testPlatform, components.GroupPlayer, components.GroupPlatform),
		},
		{
			name: "星星落在平台上",
			c:    contact(physics.ContactSolid, testStar, testPlatform, components.GroupCollectible, components.GroupPlatform),
		},
		{
			name: "炸弹撞到平台",
			c:    contact(physics.ContactSolid, testBomb, testPlatform, components.GroupHazard, components.GroupPlatform),
		},
		{
			name: "子弹撞到平台",
			c:    contact(physics.ContactSolid, testBullet, testPlatform, components.GroupProjectile, components.GroupPlatform),
			want: []Event{{Kind: EventProjectileExpired, Subject: testBullet}},
		},
		{
			name: "子弹飞出世界",
			c:    contact(physics.ContactWorldBounds, testBullet, 0, components.GroupProjectile, components.GroupWorldBounds),
			want: []Event{{Kind: EventProjectileExpired, Subject: testBullet}},
		},
		{
			name: "收集星星",
			c:    contact(physics.ContactOverlap, testPlayer, testStar, components.GroupPlayer, components.GroupCollectible),
			want: []Event{{Kind: EventCollect, Subject: testStar, Other: testPlayer}},
		},
		{
			name: "子弹击中炸弹",
			c:    contact(physics.ContactOverlap, testBomb, testBullet, components.GroupHazard, components.GroupProjectile),
			want: []Event{{Kind: EventMutualDespawn, Subject: testBomb, Other: testBullet}},
		},
		{
			name: "玩家碰到炸弹",
			c:    contact(physics.ContactOverlap, testPlayer, testBomb, components.GroupPlayer, components.GroupHazard),
			want: []Event{{Kind: EventGameOver, Subject: testPlayer, Other: testBomb}},
		},
		{
			name: "未注册的分组对",
			c:    contact(physics.ContactOverlap, testStar, testBomb, components.GroupCollectible, components.GroupHazard),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCollisionResolver(fakeActive{})
			got := r.Resolve([]physics.Contact{tt.c})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollisionResolver_InactiveIgnored(t *testing.T) {
	r := NewCollisionResolver(fakeActive{testStar: false, testBullet: false})

	got := r.Resolve([]physics.Contact{
		contact(physics.ContactOverlap, testPlayer, testStar, components.GroupPlayer, components.GroupCollectible),
		contact(physics.ContactOverlap, testBomb, testBullet, components.GroupHazard, components.GroupProjectile),
		contact(physics.ContactWorldBounds, testBullet, 0, components.GroupProjectile, components.GroupWorldBounds),
	})

	if len(got) != 0 {
		t.Errorf("contacts with inactive entities should be ignored, got %+v", got)
	}
}

func TestCollisionResolver_DuplicateReports(t *testing.T) {
	r := NewCollisionResolver(fakeActive{})
	collect := contact(physics.ContactOverlap, testPlayer, testStar, components.GroupPlayer, components.GroupCollectible)

	got := r.Resolve([]physics.Contact{
		collect,
		collect,
		contact(physics.ContactOverlap, testPlayer, testStar2, components.GroupPlayer, components.GroupCollectible),
	})

	want := []Event{
		{Kind: EventCollect, Subject: testStar, Other: testPlayer},
		{Kind: EventCollect, Subject: testStar2, Other: testPlayer},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestCollisionResolver_MutualDespawnClaimsBoth(t *testing.T) {
	r := NewCollisionResolver(fakeActive{})

	got := r.Resolve([]physics.Contact{
		contact(physics.ContactOverlap, testBomb, testBullet, components.GroupHazard, components.GroupProjectile),
		contact(physics.ContactOverlap, testBomb, testBullet2, components.GroupHazard, components.GroupProjectile),
		contact(physics.ContactWorldBounds, testBullet, 0, components.GroupProjectile, components.GroupWorldBounds),
		contact(physics.ContactOverlap, testPlayer, testBomb, components.GroupPlayer, components.GroupHazard),
	})

	want := []Event{{Kind: EventMutualDespawn, Subject: testBomb, Other: testBullet}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestCollisionResolver_SingleGameOver(t *testing.T) {
	r := NewCollisionResolver(fakeActive{})

	got := r.Resolve([]physics.Contact{
		contact(physics.ContactOverlap, testPlayer, testBomb, components.GroupPlayer, components.GroupHazard),
		contact(physics.ContactOverlap, testPlayer, 8, components.GroupPlayer, components.GroupHazard),
	})

	if len(got) != 1 || got[0].Kind != EventGameOver {
		t.Errorf("Resolve() = %+v, want a single game over", got)
	}
}

func TestCollisionResolver_EmptyBatch(t *testing.T) {
	r := NewCollisionResolver(nil)
	if got := r.Resolve(nil); got != nil {
		t.Errorf("Resolve(nil) = %+v, want nil", got)
	}
}

func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{
		EventProjectileExpired: "projectile-expired",
		EventCollect:           "collect",
		EventMutualDespawn:     "mutual-despawn",
		EventGameOver:          "game-over",
		EventKind(99):          "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
