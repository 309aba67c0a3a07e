package seeder

import (
	"fmt"

	"github.com/Rana718/spotseed/internal/domain"
)

type StageInfo struct {
	Name         Stage
	Table        string
	Dependencies []Stage
}

// stageInfos lists every stage in registration order. Stages with no
// ordering constraint between them run in this order.
var stageInfos = []StageInfo{
	{Name: StageUsers, Table: domain.TableUsers},
	{Name: StagePositions, Table: domain.TablePositions, Dependencies: []Stage{StageUsers}},
	{Name: StageVaults, Table: domain.TableVaults, Dependencies: []Stage{StageUsers}},
	{Name: StageAirdrops, Table: domain.TableAirdrops, Dependencies: []Stage{StageUsers}},
	{Name: StageLinkedAccounts, Table: domain.TableLinkedAccounts, Dependencies: []Stage{StageUsers}},
	{Name: StageTransactions, Table: domain.TableTransactions, Dependencies: []Stage{StagePositions}},
}

type DependencyGraph struct {
	stages map[Stage]*StageInfo
	names  []Stage
	order  []Stage
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		stages: make(map[Stage]*StageInfo),
	}
}

func (g *DependencyGraph) AddStage(stage *StageInfo) {
	if _, exists := g.stages[stage.Name]; !exists {
		g.names = append(g.names, stage.Name)
	}
	g.stages[stage.Name] = stage
}

// BuildInsertionOrder sorts the registered stages so every stage comes after
// the stages it depends on. A dependency on a stage that was never
// registered is an error.
func (g *DependencyGraph) BuildInsertionOrder() ([]Stage, error) {
	visited := make(map[Stage]bool)
	temp := make(map[Stage]bool)
	var order []Stage

	var visit func(Stage) error
	visit = func(name Stage) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		stage := g.stages[name]
		temp[name] = true
		for _, dep := range stage.Dependencies {
			if dep == name {
				continue
			}
			if _, ok := g.stages[dep]; !ok {
				return fmt.Errorf("stage %s depends on %s, which is not enabled", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []Stage {
	return g.order
}

// Tables returns the tables of the last built order.
func (g *DependencyGraph) Tables() []string {
	tables := make([]string, 0, len(g.order))
	for _, name := range g.order {
		tables = append(tables, g.stages[name].Table)
	}
	return tables
}

func buildGraph(include func(Stage) bool) *DependencyGraph {
	g := NewDependencyGraph()
	for i := range stageInfos {
		if include(stageInfos[i].Name) {
			g.AddStage(&stageInfos[i])
		}
	}
	return g
}

// InsertionOrder returns the enabled stages of cfg in dependency order.
func InsertionOrder(cfg SeedConfig) ([]Stage, error) {
	return buildGraph(cfg.Enabled).BuildInsertionOrder()
}

// TruncationOrder returns every seeded table, dependents first.
func TruncationOrder() ([]string, error) {
	g := buildGraph(func(Stage) bool { return true })
	if _, err := g.BuildInsertionOrder(); err != nil {
		return nil, err
	}
	tables := g.Tables()
	for i, j := 0, len(tables)-1; i < j; i, j = i+1, j-1 {
		tables[i], tables[j] = tables[j], tables[i]
	}
	return tables, nil
}
