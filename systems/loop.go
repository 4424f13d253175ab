package systems

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// NewResources registers the game and its action queue as singletons.
func NewResources(game *tetris.Game, queue *input.Queue) *engine.Resources {
	resources := engine.NewResources()
	engine.Provide(resources, game)
	engine.Provide(resources, queue)
	return resources
}

// NewLoop returns a scheduler running input, gravity and render every tick.
// Sources run first and feed the action queue.
func NewLoop(resources *engine.Resources, surface render.Surface, renderer *render.Renderer, sources ...engine.System) *engine.Scheduler {
	scheduler := engine.NewScheduler(resources)
	for _, source := range sources {
		scheduler.Register(source)
	}
	scheduler.Register(&InputSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(NewRenderSystem(surface, renderer))
	return scheduler
}

// NewTickScheduler returns a scheduler running input then gravity, for hosts
// that draw on their own schedule.
func NewTickScheduler(resources *engine.Resources) *engine.Scheduler {
	scheduler := engine.NewScheduler(resources)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&GravitySystem{})
	return scheduler
}

// NewRenderScheduler returns a scheduler that only draws.
func NewRenderScheduler(resources *engine.Resources, surface render.Surface, renderer *render.Renderer) *engine.Scheduler {
	scheduler := engine.NewScheduler(resources)
	scheduler.Register(NewRenderSystem(surface, renderer))
	return scheduler
}
