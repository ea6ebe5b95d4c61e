// Command analyze runs the full analysis pipeline against a change records
// file and prints the result, either as a styled terminal summary or as a
// JSON document for piping into other tools.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	domainconfig "evograph/domain/config"
	"evograph/domain/core/aggregates"
	"evograph/domain/core/validators"
	"evograph/domain/services"
	"evograph/infrastructure/source"
	"evograph/pkg/palette"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

func main() {
	var (
		recordsPath = flag.String("records", "", "path to the change records JSON file")
		width       = flag.Float64("width", 800, "canvas width for the layout")
		height      = flag.Float64("height", 600, "canvas height for the layout")
		jsonOut     = flag.Bool("json", false, "emit the full analysis as JSON")
		similarTo   = flag.String("similar", "", "also list features similar to this title")
	)
	flag.Parse()

	if *recordsPath == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("missing -records flag"))
		flag.Usage()
		os.Exit(2)
	}
	if *width <= 0 || *height <= 0 {
		fatal("width and height must be positive")
	}

	records, err := source.NewFileSource(*recordsPath, zap.NewNop()).Load(context.Background())
	if err != nil {
		fatal(err.Error())
	}
	if len(records) == 0 {
		fmt.Println(labelStyle.Render("no records to analyze"))
		return
	}

	if err := validators.NewRecordValidator().ValidateBatch(records); err != nil {
		fatal(err.Error())
	}

	builder := services.NewGraphBuilder(services.NewCategorizer(), services.NewInferenceEngine())
	graph := builder.Build(records)
	stats := services.NewGraphAnalyzer().Stats(graph)

	cfg := domainconfig.DefaultAnalysisConfig()
	layout := services.NewRingLayout(cfg)
	positioned := layout.Arrange(graph, *width, *height)

	if *jsonOut {
		printJSON(graph, stats, layout, positioned, *width, *height)
		return
	}

	printSummary(graph, stats)

	if *similarTo != "" {
		printSimilar(graph, cfg, *similarTo)
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
	os.Exit(1)
}

// printSummary renders the human-readable analysis report.
func printSummary(graph *aggregates.DependencyGraph, stats services.GraphStats) {
	fmt.Println(titleStyle.Render("Feature Evolution Analysis"))
	fmt.Println()

	printStat("Features", fmt.Sprintf("%d", stats.TotalFeatures))
	printStat("Dependencies", fmt.Sprintf("%d", stats.TotalDependencies))
	printStat("Avg per feature", fmt.Sprintf("%.1f", stats.AvgDependencies))
	if stats.FoundationFeature != "" {
		printStat("Foundation", fmt.Sprintf("%s (%d dependents)",
			featureName(graph, stats.FoundationFeature), stats.MaxDependents))
	}

	fmt.Println()
	fmt.Println(labelStyle.Render("Categories"))
	for _, c := range stats.Categories {
		name := c.Category.String()
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.CategoryColor(name))).
			Render("●")
		fmt.Printf("  %s %-18s %d\n", swatch, name, c.Count)
	}

	deps := graph.Dependencies()
	if len(deps) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(labelStyle.Render("Dependencies"))
	for _, dep := range deps {
		kind := lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.DependencyColor(string(dep.Type)))).
			Render(string(dep.Type))
		fmt.Printf("  %s %s %s (%.2f)\n",
			featureName(graph, dep.From.String()), kind, featureName(graph, dep.To.String()), dep.Strength)
	}
}

func printStat(label, value string) {
	fmt.Printf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", label)),
		lipgloss.NewStyle().Bold(true).Render(value),
	)
}

func printSimilar(graph *aggregates.DependencyGraph, cfg *domainconfig.AnalysisConfig, title string) {
	matches := services.NewSimilarityService(cfg).FindSimilar(graph, title, 0)

	fmt.Println()
	fmt.Println(labelStyle.Render(fmt.Sprintf("Similar to %q", title)))
	if len(matches) == 0 {
		fmt.Println("  none")
		return
	}
	for _, m := range matches {
		fmt.Printf("  %-32s %.2f\n", m.Node.Name(), m.Similarity)
	}
}

// featureName resolves a node id to its display name, falling back to the
// id when the node is unknown.
func featureName(graph *aggregates.DependencyGraph, id string) string {
	for _, node := range graph.Nodes() {
		if node.ID().String() == id {
			return node.Name()
		}
	}
	return id
}

// JSON output

type documentNode struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Day      string  `json:"day"`
	Date     string  `json:"date,omitempty"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type documentEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
	Color    string  `json:"color"`
	Path     string  `json:"path"`
}

type documentCategory struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type documentStats struct {
	TotalFeatures     int                `json:"totalFeatures"`
	TotalDependencies int                `json:"totalDependencies"`
	AvgDependencies   float64            `json:"avgDependencies"`
	FoundationFeature string             `json:"foundationFeature"`
	MaxDependents     int                `json:"maxDependents"`
	Categories        []documentCategory `json:"categories"`
}

type analysisDocument struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Stats  documentStats  `json:"stats"`
	Nodes  []documentNode `json:"nodes"`
	Edges  []documentEdge `json:"edges"`
}

func printJSON(
	graph *aggregates.DependencyGraph,
	stats services.GraphStats,
	layout *services.RingLayout,
	positioned []services.PositionedNode,
	width, height float64,
) {
	doc := analysisDocument{
		Width:  width,
		Height: height,
		Stats: documentStats{
			TotalFeatures:     stats.TotalFeatures,
			TotalDependencies: stats.TotalDependencies,
			AvgDependencies:   stats.AvgDependencies,
			FoundationFeature: stats.FoundationFeature,
			MaxDependents:     stats.MaxDependents,
			Categories:        make([]documentCategory, 0, len(stats.Categories)),
		},
		Nodes: make([]documentNode, 0, len(positioned)),
		Edges: make([]documentEdge, 0, graph.DependencyCount()),
	}

	for _, c := range stats.Categories {
		doc.Stats.Categories = append(doc.Stats.Categories, documentCategory{
			Category: c.Category.String(),
			Count:    c.Count,
		})
	}

	positions := make(map[string]services.PositionedNode, len(positioned))
	for _, pn := range positioned {
		positions[pn.Node.ID().String()] = pn
		doc.Nodes = append(doc.Nodes, documentNode{
			ID:       pn.Node.ID().String(),
			Name:     pn.Node.Name(),
			Day:      pn.Node.Day(),
			Date:     pn.Node.Date(),
			Category: pn.Node.Category().String(),
			Color:    palette.CategoryColor(pn.Node.Category().String()),
			X:        pn.Position.X(),
			Y:        pn.Position.Y(),
		})
	}

	for _, dep := range graph.Dependencies() {
		edge := documentEdge{
			From:     dep.From.String(),
			To:       dep.To.String(),
			Type:     string(dep.Type),
			Strength: dep.Strength,
			Color:    palette.DependencyColor(string(dep.Type)),
		}
		from, okFrom := positions[edge.From]
		to, okTo := positions[edge.To]
		if okFrom && okTo {
			edge.Path = layout.ConnectorPath(from.Position, to.Position)
		}
		doc.Edges = append(doc.Edges, edge)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fatal(err.Error())
	}
}
