package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container накапливает мидлвари для очередной группы операций.
type Container struct {
	stack huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

// Add добавляет мидлварь в текущий стек.
func (mc *Container) Add(mw func(ctx huma.Context, next func(huma.Context))) *Container {
	mc.stack = append(mc.stack, mw)
	return mc
}

// GetAllAndClear отдает накопленный стек и начинает новый.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	stack := mc.stack
	mc.stack = nil
	return stack
}
