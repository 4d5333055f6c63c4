// Command ecsdemo exercises the Registry end to end: entity creation and
// recycling, component attach/detach, an owning group, and a view, over a
// small toy scene. Adapted from
// _examples/lzuwei-pecs-go/examples/rpg/main.go's entity roster, with the
// teacher's system scheduler dropped (out of scope) in favor of driving
// the update loop directly.
package main

import (
	"fmt"

	"sparseset-ecs/ecs"
)

type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }
type Health struct{ Current, Max int }
type Name struct{ Value string }

func main() {
	r := ecs.NewRegistry(64)

	// Position+Velocity is an owning group: every moving entity's two
	// pools stay co-packed so the movement pass below never misses a
	// sparse lookup.
	groupBuilder := ecs.Owned[Velocity](ecs.Owned[Position](ecs.NewGroupBuilder(r)))
	moving, err := groupBuilder.Build()
	if err != nil {
		panic(err)
	}
	movingView := ecs.NewGroupView2[Position, Velocity](moving)

	player, err := r.Create()
	must(err)
	must(ecs.Add(r, player, Name{Value: "Hero"}))
	must(ecs.Add(r, player, Position{X: 0, Y: 0}))
	must(ecs.Add(r, player, Velocity{X: 1, Y: 0.5}))
	must(ecs.Add(r, player, Health{Current: 100, Max: 100}))

	var enemies []ecs.Entity
	for i := 0; i < 3; i++ {
		enemy, err := r.Create()
		must(err)
		must(ecs.Add(r, enemy, Name{Value: fmt.Sprintf("Orc%d", i+1)}))
		must(ecs.Add(r, enemy, Position{X: float64(10 + i*5), Y: float64(i * 2)}))
		must(ecs.Add(r, enemy, Velocity{X: -0.5, Y: 0}))
		must(ecs.Add(r, enemy, Health{Current: 50, Max: 50}))
		enemies = append(enemies, enemy)
	}

	fmt.Println("=== sparseset-ecs demo ===")
	fmt.Printf("moving group size: %d\n", movingView.Size())

	for tick, dt := range []float64{1.0, 1.0, 2.0} {
		movingView.ForEach(func(_ ecs.Entity, pos *Position, vel *Velocity) {
			pos.X += vel.X * dt
			pos.Y += vel.Y * dt
		})
		fmt.Printf("tick %d: player at (%.2f, %.2f)\n", tick, mustGet[Position](r, player).X, mustGet[Position](r, player).Y)
	}

	fmt.Println("=== removing velocity from the player ===")
	must(ecs.Remove[Velocity](r, player))
	fmt.Printf("moving group size after removal: %d\n", movingView.Size())

	fmt.Println("=== recycling an enemy ===")
	dead := enemies[0]
	must(r.Free(dead))
	fresh, err := r.Create()
	must(err)
	fmt.Printf("freed %s, recycled as %s (same index, bumped version)\n", dead, fresh)

	fmt.Println("=== view over Name+Health ===")
	ecs.NewView2[Name, Health](r).ForEach(func(e ecs.Entity, name *Name, hp *Health) {
		fmt.Printf("%s %q: %d/%d hp\n", e, name.Value, hp.Current, hp.Max)
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustGet[T any](r *ecs.Registry, e ecs.Entity) *T {
	v, ok := ecs.Get[T](r, e)
	if !ok {
		panic("missing component")
	}
	return v
}
