// Package seed generates realistic demo scouting data. Output is
// deterministic for a fixed seed and always passes record validation, so
// it doubles as a test-data helper.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/gearbox-works/scout-cli/internal/model"
)

var (
	nameAdjectives = []string{
		"Atomic", "Turbo", "Quantum", "Iron", "Blazing",
		"Cosmic", "Electric", "Rogue", "Solar", "Kinetic",
	}
	nameNouns = []string{
		"Gears", "Titans", "Circuits", "Bolts", "Dynamos",
		"Raptors", "Pistons", "Spartans", "Vipers", "Builders",
	}

	ascentLevels = []model.AscentLevel{
		model.AscentNone, model.AscentLevel1, model.AscentLevel2, model.AscentLevel3,
	}
	startPositions = []model.StartPosition{
		model.StartObservation, model.StartNet, model.StartSpecimen,
	}
	drivetrains = []model.DrivetrainType{
		model.DrivetrainTank, model.DrivetrainMecanum, model.DrivetrainSwerve, model.DrivetrainOther,
	}
	roles = []model.PreferredRole{model.RoleSampler, model.RoleScorer, model.RoleHybrid}
	zones = []model.PreferredZone{model.ZoneObservation, model.ZoneNet, model.ZoneSpecimen, model.ZoneMixed}
)

// Generator produces fake scouting records from a seeded faker.
type Generator struct {
	faker *gofakeit.Faker
	seed  int64
}

// New creates a Generator. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		faker: gofakeit.New(uint64(seed)),
		seed:  seed,
	}
}

// Seed reports the seed in use.
func (g *Generator) Seed() int64 { return g.seed }

// TeamNumbers returns count distinct FTC-style team numbers.
func (g *Generator) TeamNumbers(count int) []int {
	seen := make(map[int]bool, count)
	numbers := make([]int, 0, count)
	for len(numbers) < count {
		n := g.faker.Number(100, 29999)
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// MatchRecord generates one valid match observation for a team.
func (g *Generator) MatchRecord(teamNumber, matchNumber int) model.MatchRecord {
	results := []model.MatchResult{
		model.ResultWin, model.ResultWin, model.ResultTie, model.ResultLoss, model.ResultLoss,
	}

	return model.MatchRecord{
		MatchNumber: matchNumber,
		TeamNumber:  teamNumber,
		Alliance:    []model.AllianceColor{model.AllianceRed, model.AllianceBlue}[g.faker.Number(0, 1)],
		Result:      results[g.faker.Number(0, len(results)-1)],
		AutoStart:   startPositions[g.faker.Number(0, len(startPositions)-1)],
		Auto:        g.phase(2),
		Teleop:      g.phase(5),
		Ascent:      ascentLevels[g.faker.Number(0, len(ascentLevels)-1)],
		Ratings:     g.ratings(),
	}
}

// PitRecord generates one valid pit profile for a team.
func (g *Generator) PitRecord(teamNumber int) model.PitRecord {
	starts := []model.StartPosition{startPositions[g.faker.Number(0, len(startPositions)-1)]}
	if g.faker.Bool() {
		for _, p := range startPositions {
			if p != starts[0] {
				starts = append(starts, p)
				break
			}
		}
	}

	return model.PitRecord{
		TeamNumber: teamNumber,
		TeamName:   g.teamName(),
		Drivetrain: drivetrains[g.faker.Number(0, len(drivetrains)-1)],
		LengthIn:   float64(g.faker.Number(12, 18)),
		WidthIn:    float64(g.faker.Number(12, 18)),
		HeightIn:   float64(g.faker.Number(10, 16)),
		WeightLb:   float64(g.faker.Number(15, 42)),
		Capabilities: model.CapabilitySet{
			CollectSamples: g.faker.Bool(),
			NetZone:        g.faker.Bool(),
			LowBasket:      g.faker.Bool(),
			HighBasket:     g.faker.Bool(),
			LowChamber:     g.faker.Bool(),
			HighChamber:    g.faker.Bool(),
			MaxAscent:      ascentLevels[g.faker.Number(0, len(ascentLevels)-1)],
		},
		AutoStartPositions:   starts,
		AutoSampleCollection: g.faker.Bool(),
		AutoScoring:          g.faker.Bool(),
		AutoAscent:           g.faker.Bool(),
		Ratings:              g.ratings(),
		PreferredRole:        roles[g.faker.Number(0, len(roles)-1)],
		PreferredZone:        zones[g.faker.Number(0, len(zones)-1)],
	}
}

// Dataset generates matches and pit records for a roster. Roughly three of
// four teams get a pit record, so summaries exercise both the pit-backed
// and synthesized-name paths.
func (g *Generator) Dataset(teams, matchesPerTeam int) ([]model.MatchRecord, []model.PitRecord) {
	numbers := g.TeamNumbers(teams)

	var matches []model.MatchRecord
	var pits []model.PitRecord
	for i, n := range numbers {
		for m := 0; m < matchesPerTeam; m++ {
			matches = append(matches, g.MatchRecord(n, g.faker.Number(1, 60)))
		}
		if i%4 != 3 {
			pits = append(pits, g.PitRecord(n))
		}
	}
	return matches, pits
}

func (g *Generator) phase(scale int) model.PhaseActions {
	return model.PhaseActions{
		Parked:           g.faker.Bool(),
		SampleCollection: g.faker.Number(0, scale),
		NetZonePlacement: g.faker.Number(0, scale),
		LowBasket:        g.faker.Number(0, scale),
		HighBasket:       g.faker.Number(0, scale),
		LowChamber:       g.faker.Number(0, scale),
		HighChamber:      g.faker.Number(0, scale),
	}
}

func (g *Generator) ratings() model.Ratings {
	return model.Ratings{
		Speed:           g.faker.Number(1, 5),
		Reliability:     g.faker.Number(1, 5),
		Maneuverability: g.faker.Number(1, 5),
	}
}

func (g *Generator) teamName() string {
	return fmt.Sprintf("%s %s",
		nameAdjectives[g.faker.Number(0, len(nameAdjectives)-1)],
		nameNouns[g.faker.Number(0, len(nameNouns)-1)],
	)
}
