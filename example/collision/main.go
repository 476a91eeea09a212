package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/Rajdeep2820/quadtree"
)

// This program uses the quadtree to simulate a 2D lingering AoE spell
// causing damage over multiple ticks to a crowd of wandering mobs.

type LingeringAoESpell struct {
	duration time.Duration
	dps      float64
	center   mgl64.Vec2
	radius   float64
}

// Bounds returns the spell's enclosing square. The tree only ever sees
// rectangles; the circle test happens in the narrow phase.
func (l *LingeringAoESpell) Bounds() quadtree.Rect {
	return quadtree.Rect{
		X:      l.center.X() - l.radius,
		Y:      l.center.Y() - l.radius,
		Width:  l.radius * 2,
		Height: l.radius * 2,
	}
}

func (l *LingeringAoESpell) HitTestEx(m *Mob) bool {
	// Maybe factor in dodge, block, accuracy, etc. here

	d := l.center.Sub(m.position)
	rad := l.radius + m.size

	return d.Dot(d) <= rad*rad
}

type Mob struct {
	id       uuid.UUID
	health   float64
	size     float64
	position mgl64.Vec2
	velocity mgl64.Vec2
}

func (m *Mob) Bounds() quadtree.Rect {
	return quadtree.Rect{
		X:      m.position.X() - m.size,
		Y:      m.position.Y() - m.size,
		Width:  m.size * 2,
		Height: m.size * 2,
	}
}

// step advances the mob by dt seconds and bounces it off world edges.
func (m *Mob) step(world quadtree.Rect, dt float64) {
	m.position = m.position.Add(m.velocity.Mul(dt))

	if m.position.X() < world.X || m.position.X() > world.X+world.Width {
		m.velocity[0] = -m.velocity[0]
	}
	if m.position.Y() < world.Y || m.position.Y() > world.Y+world.Height {
		m.velocity[1] = -m.velocity[1]
	}
}

func main() {
	entityCount := flag.Int("mobs", 100_000, "number of mobs to simulate")
	imagePath := flag.String("image", "./spell.bmp", "where to dump the final image of the tree")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := quadtree.Rect{X: 0, Y: 0, Width: 10_000, Height: 10_000}

	fmt.Printf("Allocating %d mobs, this may take a moment...\n", *entityCount)

	mobs := make([]*Mob, *entityCount)
	for n := range mobs {
		mobs[n] = &Mob{
			id:     uuid.New(),
			health: float64(rng.Intn(120)), // 100 damage is dealt over 2 seconds, so only ~20% should survive
			size:   1,
			position: mgl64.Vec2{
				rng.Float64() * world.Width,
				rng.Float64() * world.Height,
			},
			velocity: mgl64.Vec2{
				rng.Float64()*40 - 20,
				rng.Float64()*40 - 20,
			},
		}
	}

	spell := &LingeringAoESpell{
		duration: 2 * time.Second,
		dps:      50,
		center: mgl64.Vec2{
			rng.Float64() * world.Width,
			rng.Float64() * world.Height,
		},
		radius: 1000,
	}

	tickRate := time.Second / 30
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	// Store when the spell was casted so we know when to stop
	casted := time.Now()
	ticks := 0
	deadMobs := 0
	victims := make(map[uuid.UUID]struct{})
	var candidates []float64
	var tree *quadtree.Tree

	fmt.Println("Starting simulation loop!")
	for time.Since(casted) < spell.duration {
		delta := time.Since(<-ticker.C)
		ticks++
		if delta.Milliseconds() > 0 {
			// Holding the tick rate depends entirely on the underlying machine
			fmt.Println("WARN: Tick rate slipped ", delta)
		}

		dt := (tickRate + delta).Seconds()

		// The tree has no removal or update operation: mobs move every
		// tick, so rebuild it from the survivors instead.
		tree = quadtree.New(world, 16)
		for _, m := range mobs {
			if m.health <= 0 {
				continue
			}
			m.step(world, dt)
			tree.Insert(m)
		}

		// Ask the tree for everything whose bounds overlap the spell
		hits := tree.Query(spell.Bounds())
		candidates = append(candidates, float64(len(hits)))

		for _, it := range hits {
			m := it.(*Mob)

			// Do a higher precision hit test now that the field has been
			// narrowed to likely collisions. Ours is arguably simpler than
			// the rectangle test, but normally this is where the expensive
			// work happens that you couldn't afford on every mob.
			if !spell.HitTestEx(m) {
				continue
			}

			victims[m.id] = struct{}{}
			m.health -= (spell.dps / float64(time.Second.Milliseconds())) * float64((tickRate + delta).Milliseconds())
			if m.health <= 0 {
				deadMobs++
			}
		}
	}

	fmt.Printf("Spell ended, %d ticks in %s, %d out of %d mobs killed\n", ticks, time.Since(casted), deadMobs, *entityCount)
	fmt.Printf("Unique mobs hit: %d\n", len(victims))
	fmt.Printf("Broad-phase candidates per tick: mean %.0f, stddev %.0f\n",
		stat.Mean(candidates, nil), stat.StdDev(candidates, nil))

	// Add the spell so its footprint shows up in the dump as well
	tree.Insert(spell)
	fmt.Println("Dumping image of tree at", *imagePath)
	if err := tree.Image(*imagePath); err != nil {
		fmt.Println("WARN: Could not write image:", err)
	}
}
