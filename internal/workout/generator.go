package workout

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gymello/gymello/internal/profile"
)

// drawCounts fixes how many exercises each muscle group contributes to a
// session. Stretching draws by category instead of muscle group so the plank
// style core holds qualify for recovery days too.
var drawCounts = []struct {
	group MuscleGroup
	count int
}{
	{MuscleChest, 2},
	{MuscleBack, 2},
	{MuscleLegs, 3},
	{MuscleShoulders, 2},
	{MuscleArms, 2},
	{MuscleFullBody, 4},
}

const stretchingDrawCount = 4

// Generator builds weekly plans from an exercise catalog. Randomness is
// injected so tests can fix the seed. The mutex serialises rng access since
// rand.Rand is not safe for concurrent use.
type Generator struct {
	catalog []Exercise
	mu      sync.Mutex
	rng     *rand.Rand
}

// NewGenerator creates a Generator over the given catalog.
func NewGenerator(catalog []Exercise, rng *rand.Rand) *Generator {
	return &Generator{catalog: catalog, rng: rng}
}

// Plan generates a full weekly plan for the profile. The schedule depends
// only on the number of selected days; sessions land on the selected days in
// order. Every session is tuned to the profile's fitness goal.
func (g *Generator) Plan(p profile.Profile) (Plan, error) {
	templates, err := scheduleFor(len(p.WorkoutDays))
	if err != nil {
		return nil, fmt.Errorf("generate plan for %s: %w", p.Username, err)
	}

	plan := make(Plan, len(templates))
	for i, tmpl := range templates {
		session := g.buildSession(tmpl.title, tmpl.groups, p.WorkoutDays[i])
		tuneForGoal(&session, p.Goal)
		plan[fmt.Sprintf("day%d", i+1)] = session
	}
	return plan, nil
}

// RegenerateSession rebuilds a single session by title, keeping its day.
// Rest days and unknown titles both come back as a rest day so a stale or
// hand-edited plan cannot wedge regeneration.
func (g *Generator) RegenerateSession(title, day string, p profile.Profile) Session {
	if title == RestDayTitle {
		return RestDay(day)
	}
	groups, ok := sessionDefinitions[title]
	if !ok {
		return RestDay(day)
	}
	session := g.buildSession(title, groups, day)
	tuneForGoal(&session, p.Goal)
	return session
}

func (g *Generator) buildSession(title string, groups []MuscleGroup, day string) Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	exercises := []Exercise{}
	for _, draw := range drawCounts {
		if containsGroup(groups, draw.group) {
			exercises = append(exercises, g.drawByGroup(draw.group, draw.count)...)
		}
	}
	if containsGroup(groups, MuscleStretching) {
		exercises = append(exercises, g.drawByCategory(CategoryStretching, stretchingDrawCount)...)
	}

	g.rng.Shuffle(len(exercises), func(i, j int) {
		exercises[i], exercises[j] = exercises[j], exercises[i]
	})

	return Session{Day: day, Title: title, Exercises: exercises}
}

// drawByGroup picks up to count distinct exercises of the muscle group.
func (g *Generator) drawByGroup(group MuscleGroup, count int) []Exercise {
	pool := []Exercise{}
	for _, ex := range g.catalog {
		if ex.MuscleGroup == group {
			pool = append(pool, ex)
		}
	}
	return g.draw(pool, count)
}

// drawByCategory picks up to count distinct exercises of the category.
func (g *Generator) drawByCategory(category Category, count int) []Exercise {
	pool := []Exercise{}
	for _, ex := range g.catalog {
		if ex.Category == category {
			pool = append(pool, ex)
		}
	}
	return g.draw(pool, count)
}

// draw shuffles the pool and takes the first count entries, so a session
// never repeats an exercise. Pools smaller than count are returned whole.
func (g *Generator) draw(pool []Exercise, count int) []Exercise {
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

// tuneForGoal rewrites rep ranges and rest periods to match the fitness
// goal. Fat loss shortens rests down to a 30 second floor; muscle building
// lengthens them up to a 90 second ceiling. Recomposition keeps catalog
// defaults.
func tuneForGoal(session *Session, goal profile.Goal) {
	for i := range session.Exercises {
		ex := &session.Exercises[i]
		switch goal {
		case profile.GoalLoseFat:
			ex.Reps = "12-15"
			ex.RestSeconds = max(30, ex.RestSeconds-15)
		case profile.GoalBuildMuscle:
			ex.Reps = "8-12"
			ex.RestSeconds = min(90, ex.RestSeconds+15)
		}
	}
}

func containsGroup(groups []MuscleGroup, group MuscleGroup) bool {
	for _, g := range groups {
		if g == group {
			return true
		}
	}
	return false
}
