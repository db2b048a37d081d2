// Package physics implements a small gravity world with collision
// filtering. Entities live in an ECS arena and are addressed by stable
// handles; collision responses are plain data (a reaction kind
// dispatched by the world), so entity state stays cloneable and
// inspectable.
package physics

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hopper/geom"
)

// Transform describes where an entity is in screen space.
type Transform struct {
	Pos  geom.Vec2 // top-left corner
	Size geom.Vec2 // width and height
}

// Box returns the entity's bounding box.
func (t Transform) Box() geom.AABB {
	return geom.Box(t.Pos, t.Size)
}

// Intersects reports whether two transforms overlap.
func (t Transform) Intersects(o Transform) bool {
	return t.Box().Intersects(o.Box())
}

// Body holds the physical properties of an entity.
type Body struct {
	// Speed is applied to the position once per update.
	Speed geom.Vec2

	// DisableGravity excludes the entity from gravity integration.
	DisableGravity bool

	// Group is the collision group bit other entities test against.
	// Group 0 means no entity can collide with this one.
	Group uint32

	// Mask is the OR of group bits this entity reacts to.
	Mask uint32
}

// ReactionKind selects what happens to an entity when it collides with
// something its mask matches.
type ReactionKind uint8

const (
	// ReactNone ignores the collision.
	ReactNone ReactionKind = iota

	// ReactLand stops the entity, disables its gravity and rests it on
	// top of whatever it hit.
	ReactLand
)

// Reaction is the collision-behavior component.
type Reaction struct {
	Kind ReactionKind
}

// World owns a set of entities and steps their physics.
type World struct {
	gravity geom.Vec2

	world  *ecs.World
	mapper *ecs.Map3[Transform, Body, Reaction]
	filter *ecs.Filter3[Transform, Body, Reaction]

	trMap   *ecs.Map1[Transform]
	bodyMap *ecs.Map1[Body]
	reMap   *ecs.Map1[Reaction]

	// Insertion-ordered handles; the pair scan iterates these so update
	// order is deterministic.
	entities []ecs.Entity
}

// NewWorld creates an empty world with the given per-update gravity.
func NewWorld(gravity geom.Vec2) *World {
	w := ecs.NewWorld()
	return &World{
		gravity: gravity,
		world:   w,
		mapper:  ecs.NewMap3[Transform, Body, Reaction](w),
		filter:  ecs.NewFilter3[Transform, Body, Reaction](w),
		trMap:   ecs.NewMap1[Transform](w),
		bodyMap: ecs.NewMap1[Body](w),
		reMap:   ecs.NewMap1[Reaction](w),
	}
}

// Spawn adds an entity and returns its handle.
func (w *World) Spawn(tr Transform, body Body, kind ReactionKind) ecs.Entity {
	re := Reaction{Kind: kind}
	e := w.mapper.NewEntity(&tr, &body, &re)
	w.entities = append(w.entities, e)
	return e
}

// Transform returns a pointer to the entity's transform.
func (w *World) Transform(e ecs.Entity) *Transform {
	return w.trMap.Get(e)
}

// Body returns a pointer to the entity's body.
func (w *World) Body(e ecs.Entity) *Body {
	return w.bodyMap.Get(e)
}

// Entities returns the handles of all entities in spawn order.
func (w *World) Entities() []ecs.Entity {
	return w.entities
}

// SetGravity replaces the world gravity.
func (w *World) SetGravity(g geom.Vec2) {
	w.gravity = g
}

// Update advances all entities by one step. It runs two strict phases:
// first every entity is integrated (position by speed, speed by
// gravity), then every ordered pair is collision-tested. Splitting the
// phases guarantees collision checks observe already-updated positions
// uniformly, regardless of entity order.
func (w *World) Update() {
	query := w.filter.Query()
	for query.Next() {
		tr, body, _ := query.Get()
		tr.Pos = tr.Pos.Add(body.Speed)
		if !body.DisableGravity {
			body.Speed = body.Speed.Add(w.gravity)
		}
	}

	for _, e := range w.entities {
		eTr := w.trMap.Get(e)
		eBody := w.bodyMap.Get(e)
		kind := w.reMap.Get(e).Kind

		for _, other := range w.entities {
			if other == e {
				continue
			}
			oBody := w.bodyMap.Get(other)
			if eBody.Mask&oBody.Group == 0 {
				continue
			}
			oTr := w.trMap.Get(other)
			if !eTr.Intersects(*oTr) {
				continue
			}
			// Only the reacting entity is mutated; the other side is
			// passed by value.
			react(kind, eTr, eBody, *oTr)
		}
	}
}

func react(kind ReactionKind, tr *Transform, body *Body, other Transform) {
	switch kind {
	case ReactLand:
		body.DisableGravity = true
		body.Speed = geom.Vec2{}
		tr.Pos.Y = other.Pos.Y - tr.Size.Y
	}
}
