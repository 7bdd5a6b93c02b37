package drawconfigs

import (
	"github.com/reusee/catdraw/configs"
)

// Rules mirrors one entry of the graph override
type Rules struct {
	Alias   string   `json:"alias,omitempty"`
	Default string   `json:"default,omitempty"`
	Low     []string `json:"low,omitempty"`
	Fair    []string `json:"fair,omitempty"`
	Can     []string `json:"can,omitempty"`
}

// Graph replaces the built-in state graph when non-empty
type Graph map[string]Rules

func (Graph) ConfigExpr() string {
	return "graph"
}

func (Module) Graph(
	loader configs.Loader,
) Graph {
	graph, _ := configs.Lookup[Graph](loader)
	return graph
}
