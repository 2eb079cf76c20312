package dictkit

import (
	"context"
	"fmt"
	"time"
)

// MustResolve panics if lang cannot be served within timeout (nice for service startup)
func MustResolve(ctx context.Context, p Provider, lang string) Dictionary {
	if p == nil {
		panic(fmt.Sprintf("dictionary %s: nil provider", lang))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	d, err := p.Dictionary(ctx, lang)
	if err != nil {
		panic(fmt.Sprintf("dictionary %s: %v", lang, err))
	}
	return d
}
