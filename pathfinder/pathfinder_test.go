package pathfinder_test

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/search"
)

const corridor = `
S....
####.
.....
.####
....E
`

// PathfinderSuite covers grid building and full runs.
type PathfinderSuite struct {
	suite.Suite
	fs afero.Fs
}

func TestPathfinderSuite(t *testing.T) {
	suite.Run(t, new(PathfinderSuite))
}

func (s *PathfinderSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	require.NoError(s.T(), afero.WriteFile(s.fs, "corridor.txt", []byte(corridor), 0o644))
}

func (s *PathfinderSuite) writeMap(name, layout string) {
	require.NoError(s.T(), afero.WriteFile(s.fs, name, []byte(layout), 0o644))
}

// TestRun_Generated runs every algorithm on a seeded random grid.
func (s *PathfinderSuite) TestRun_Generated() {
	for _, algo := range search.Algorithms() {
		cfg := config.Default()
		cfg.Algorithm = algo
		cfg.Seed = 11

		out, err := pathfinder.Run(context.Background(), cfg)
		require.NoError(s.T(), err, algo)
		require.Equal(s.T(), int64(11), out.Seed)
		require.Equal(s.T(), 1, out.Grid.Count(grid.Start))
		require.Equal(s.T(), 1, out.Grid.Count(grid.End))
		require.Equal(s.T(), out.Grid.Count(grid.Obstacle), out.Obstacles.Total())
		if !out.Result.Found {
			require.Zero(s.T(), out.Grid.Count(grid.Path))
			continue
		}
		require.NoError(s.T(), route.Validate(out.Grid, out.Result.Path))
		require.Equal(s.T(), out.Result.Cost-1, out.Grid.Count(grid.Path), algo)
	}
}

// TestBuild_Deterministic checks one seed always yields the same grid.
func (s *PathfinderSuite) TestBuild_Deterministic() {
	cfg := config.Default()
	cfg.Density = obstacle.High
	cfg.Seed = 1234

	a, err := pathfinder.Build(cfg)
	require.NoError(s.T(), err)
	b, err := pathfinder.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Grid, b.Grid)
	require.Equal(s.T(), a.Obstacles, b.Obstacles)
}

func (s *PathfinderSuite) TestBuild_ClockSeed() {
	out, err := pathfinder.Build(config.Default())
	require.NoError(s.T(), err)
	require.NotZero(s.T(), out.Seed)
}

func (s *PathfinderSuite) TestBuild_NoObstacles() {
	cfg := config.Default()
	cfg.Obstacles = false
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 19, Y: 19}
	cfg.Start, cfg.End = &start, &end

	out, err := pathfinder.Run(context.Background(), cfg)
	require.NoError(s.T(), err)
	require.Zero(s.T(), out.Grid.Count(grid.Obstacle))
	require.True(s.T(), out.Result.Found)
	require.Equal(s.T(), 38, out.Result.Cost)
}

// TestRun_Map solves a layout read through afero.
func (s *PathfinderSuite) TestRun_Map() {
	cfg := config.Default()
	cfg.Map = "corridor.txt"
	cfg.Algorithm = search.BFS

	expanded := 0
	out, err := pathfinder.Run(context.Background(), cfg,
		pathfinder.WithFs(s.fs),
		pathfinder.WithSearchOptions(search.WithOnExpand(func(grid.Coord) { expanded++ })))
	require.NoError(s.T(), err)
	require.True(s.T(), out.Result.Found)
	require.Equal(s.T(), 16, out.Result.Cost)
	require.Equal(s.T(), 15, out.Grid.Count(grid.Path))
	require.Equal(s.T(), out.Result.Expanded, expanded)
	require.Zero(s.T(), out.Obstacles.Total(), "maps never get generated obstacles")
}

// TestRun_MapOverrides moves the map's endpoints from config.
func (s *PathfinderSuite) TestRun_MapOverrides() {
	cfg := config.Default()
	cfg.Map = "corridor.txt"
	start, end := grid.Coord{X: 0, Y: 2}, grid.Coord{X: 4, Y: 0}
	cfg.Start, cfg.End = &start, &end

	out, err := pathfinder.Run(context.Background(), cfg, pathfinder.WithFs(s.fs))
	require.NoError(s.T(), err)
	got, _ := out.Grid.Start()
	require.Equal(s.T(), start, got)
	require.Equal(s.T(), 6, out.Result.Cost)

	blocked := grid.Coord{X: 0, Y: 1}
	cfg.Start = &blocked
	_, err = pathfinder.Run(context.Background(), cfg, pathfinder.WithFs(s.fs))
	require.ErrorIs(s.T(), err, grid.ErrPlacement)
}

func (s *PathfinderSuite) TestRun_NoPath() {
	s.writeMap("walled.txt", "S....\n.....\n#####\n.....\n....E")
	cfg := config.Default()
	cfg.Map = "walled.txt"

	out, err := pathfinder.Run(context.Background(), cfg, pathfinder.WithFs(s.fs))
	require.NoError(s.T(), err)
	require.False(s.T(), out.Result.Found)
	require.Zero(s.T(), out.Grid.Count(grid.Path))
}

// TestRun_MapPathCellsCleared checks that route glyphs drawn in a layout
// file never survive loading: only a successful search paints Path.
func (s *PathfinderSuite) TestRun_MapPathCellsCleared() {
	s.writeMap("drawn.txt", "S****\n....*\n#####\n.....\n....E")
	cfg := config.Default()
	cfg.Map = "drawn.txt"

	out, err := pathfinder.Run(context.Background(), cfg, pathfinder.WithFs(s.fs))
	require.NoError(s.T(), err)
	require.False(s.T(), out.Result.Found)
	require.Zero(s.T(), out.Grid.Count(grid.Path))

	built, err := pathfinder.Build(cfg, pathfinder.WithFs(s.fs))
	require.NoError(s.T(), err)
	require.Zero(s.T(), built.Grid.Count(grid.Path))
	require.Equal(s.T(), 5, built.Grid.Count(grid.Obstacle))
}

func (s *PathfinderSuite) TestErrors() {
	s.writeMap("full.txt", "#####\n#####\n##.##\n#####\n#####")

	cfg := config.Default()
	cfg.Map = "full.txt"
	_, err := pathfinder.Build(cfg, pathfinder.WithFs(s.fs))
	require.ErrorIs(s.T(), err, pathfinder.ErrNoRoom)

	cfg.Map = "missing.txt"
	_, err = pathfinder.Build(cfg, pathfinder.WithFs(s.fs))
	require.ErrorIs(s.T(), err, os.ErrNotExist)

	cfg = config.Default()
	cfg.Width = 3
	_, err = pathfinder.Build(cfg)
	require.ErrorIs(s.T(), err, config.ErrDimensions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pathfinder.Run(ctx, config.Default())
	require.ErrorIs(s.T(), err, context.Canceled)

	require.Panics(s.T(), func() { pathfinder.WithFs(nil) })
}
